package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/shennylee/aios/internal/domain"
	"github.com/shennylee/aios/internal/observability"
)

// ContactNotFoundError is returned by set_reminder when no contact
// matches. The message deliberately tells the model to create the
// contact first; the tool never auto-creates.
type ContactNotFoundError struct {
	Name string
}

func (e *ContactNotFoundError) Error() string {
	return fmt.Sprintf("Contact %q not found. Create them first.", e.Name)
}

func (e *ContactNotFoundError) Unwrap() error { return domain.ErrContactNotFound }

// SearchCRMTool matches contacts by display-name substring. The match
// is case-sensitive.
type SearchCRMTool struct {
	Store domain.ContactStore
}

func (t *SearchCRMTool) Name() string { return "search_crm" }

func (t *SearchCRMTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	query := getString(args, "query")

	contacts, err := t.Store.QueryByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search CRM: %w", err)
	}
	if len(contacts) == 0 {
		return map[string]any{
			"found":   false,
			"message": fmt.Sprintf("No contacts found matching %q", query),
		}, nil
	}

	out := make([]map[string]any, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactPayload(c))
	}
	return map[string]any{"found": true, "contacts": out}, nil
}

// CreateContactTool creates a contact. Only name is required; absent
// fields stay empty. last_contact is always stamped with today,
// whatever the caller sent.
type CreateContactTool struct {
	Store domain.ContactStore
	Now   func() time.Time
}

func (t *CreateContactTool) Name() string { return "create_contact" }

func (t *CreateContactTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	name := getString(args, "name")
	if name == "" {
		return nil, fmt.Errorf("create_contact: name is required")
	}

	contact := &domain.Contact{
		Name:        name,
		Company:     getString(args, "company"),
		Type:        domain.ContactType(getString(args, "type")),
		Email:       getString(args, "email"),
		Notes:       getString(args, "notes"),
		LastContact: t.Now().Format(isoDateLayout),
	}

	id, err := t.Store.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return map[string]any{
		"success": true,
		"id":      string(id),
		"message": fmt.Sprintf("Created contact: %s", name),
	}, nil
}

// UpdateContactTool partially updates a contact. Notes are appended
// through the note helper, never overwritten; the date fields overwrite
// directly.
type UpdateContactTool struct {
	Store domain.ContactStore
	Now   func() time.Time
}

func (t *UpdateContactTool) Name() string { return "update_contact" }

func (t *UpdateContactTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	contactID := getString(args, "contact_id")
	if contactID == "" {
		return nil, fmt.Errorf("update_contact: contact_id is required")
	}

	var patch domain.ContactPatch
	if notes := getString(args, "notes"); notes != "" {
		updated := appendedNotes(ctx, t.Store, domain.ContactID(contactID), notes, t.Now())
		patch.Notes = &updated
	}
	if v := getString(args, "last_contact"); v != "" {
		patch.LastContact = &v
	}
	if v := getString(args, "follow_up_date"); v != "" {
		patch.FollowUpDate = &v
	}

	if err := t.Store.Update(ctx, domain.ContactID(contactID), patch); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return map[string]any{"success": true, "message": "Contact updated"}, nil
}

// SetReminderTool resolves a contact by name and sets its follow-up
// date, resolving relative expressions like "in 2 weeks". When several
// contacts match, the first match wins.
type SetReminderTool struct {
	Store domain.ContactStore
	Now   func() time.Time
}

func (t *SetReminderTool) Name() string { return "set_reminder" }

func (t *SetReminderTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	contactName := getString(args, "contact_name")

	matches, err := t.Store.QueryByName(ctx, contactName)
	if err != nil {
		return nil, fmt.Errorf("failed to set reminder: %w", err)
	}
	if len(matches) == 0 {
		return nil, &ContactNotFoundError{Name: contactName}
	}
	if len(matches) > 1 {
		observability.LoggerFromContext(ctx).Debug("ambiguous reminder contact",
			"query", contactName, "matches", len(matches))
	}
	contact := matches[0]

	followUp := ResolveFollowUpDate(getString(args, "follow_up_date"), t.Now())

	patch := domain.ContactPatch{FollowUpDate: &followUp}
	if note := getString(args, "note"); note != "" {
		updated := appendedNotes(ctx, t.Store, contact.ID, note, t.Now())
		patch.Notes = &updated
	}

	if err := t.Store.Update(ctx, contact.ID, patch); err != nil {
		return nil, fmt.Errorf("failed to set reminder: %w", err)
	}

	return map[string]any{
		"success": true,
		"message": fmt.Sprintf("Reminder set for %s on %s", contact.Name, followUp),
	}, nil
}

func contactPayload(c *domain.Contact) map[string]any {
	return map[string]any{
		"id":           string(c.ID),
		"name":         c.Name,
		"type":         string(c.Type),
		"email":        c.Email,
		"lastContact":  c.LastContact,
		"followUpDate": c.FollowUpDate,
		"notes":        c.Notes,
	}
}
