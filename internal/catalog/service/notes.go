package service

import (
	"context"
	"encoding/json"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/pkg/notesdk"
)

// NotesResult is the outcome of a delegated notes fetch. Available is false
// when the user has never logged in and so holds no delegated token; in that
// case no remote call is made.
type NotesResult struct {
	Available bool
	Payload   json.RawMessage
}

// NotesService proxies the external notes feed on a user's behalf.
type NotesService struct {
	Notes *notesdk.Client
}

func NewNotesService(notes *notesdk.Client) *NotesService {
	return &NotesService{Notes: notes}
}

// Fetch retrieves the user's notes with their stored delegated token.
func (s *NotesService) Fetch(ctx context.Context, u domain.User) (NotesResult, error) {
	if u.NotesToken == "" {
		return NotesResult{Available: false}, nil
	}

	payload, err := s.Notes.Notes(ctx, u.NotesToken)
	if err != nil {
		return NotesResult{}, &DependencyError{Op: "notes", Err: err}
	}
	return NotesResult{Available: true, Payload: payload}, nil
}
