package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/shennylee/aios/internal/domain"
)

// noteDateLayout renders the short human date prefixed to note lines,
// e.g. "Jan 5, 2025".
const noteDateLayout = "Jan 2, 2006"

// AppendNote produces the new notes blob: newNote prefixed with the
// current short date, concatenated after the existing blob. Prior
// lines are never discarded.
func AppendNote(existing, newNote string, now time.Time) string {
	formatted := fmt.Sprintf("[%s] %s", now.Format(noteDateLayout), newNote)
	if existing == "" {
		return formatted
	}
	return existing + "\n" + formatted
}

// appendedNotes fetches the contact's current notes and appends newNote.
// Fetch failures degrade to just the new formatted note; appending a
// note must never fail the calling tool.
func appendedNotes(ctx context.Context, store domain.ContactStore, id domain.ContactID, newNote string, now time.Time) string {
	existing, err := store.GetNotes(ctx, id)
	if err != nil {
		existing = ""
	}
	return AppendNote(existing, newNote, now)
}
