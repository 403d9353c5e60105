package notesdk

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-success response from the notes service. The upstream
// body text is preserved so callers can embed it in their own error reporting.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("notes service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("notes service returned status %d: %s", e.StatusCode, e.Body)
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
