package notesdk

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the notes service's login response. Only access_token is
// consumed; the rest is kept for completeness.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
