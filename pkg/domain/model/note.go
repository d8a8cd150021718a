package model

import (
	"strings"

	"github.com/secmon-lab/aikomment/pkg/domain/types"
)

// Note is a comment on a GitLab merge request
type Note struct {
	ID     types.NoteID
	Body   string
	Author string
	System bool
}

// FindNote returns the first non-system note whose body contains marker
func FindNote(notes []*Note, marker string) *Note {
	for _, note := range notes {
		if note == nil || note.System {
			continue
		}
		if strings.Contains(note.Body, marker) {
			return note
		}
	}
	return nil
}
