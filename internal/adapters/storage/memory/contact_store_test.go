package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shennylee/aios/internal/domain"
)

func TestCreateAndQuery(t *testing.T) {
	ctx := context.Background()
	s := NewContactStore()

	id, err := s.Create(ctx, &domain.Contact{Name: "Sarah Chen", Type: domain.TypeInvestor})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = s.Create(ctx, &domain.Contact{Name: "Sara Smith", Type: domain.TypeProspect})
	require.NoError(t, err)

	matches, err := s.QueryByName(ctx, "Sara")
	require.NoError(t, err)
	require.Len(t, matches, 2, "substring matches both names")

	matches, err = s.QueryByName(ctx, "Sarah")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, id, matches[0].ID)

	matches, err = s.QueryByName(ctx, "sarah")
	require.NoError(t, err)
	assert.Empty(t, matches, "match is case-sensitive")
}

func TestQueryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewContactStore()

	_, err := s.Create(ctx, &domain.Contact{Name: "Sarah Chen"})
	require.NoError(t, err)

	matches, err := s.QueryByName(ctx, "Sarah")
	require.NoError(t, err)
	matches[0].Name = "mutated"

	again, err := s.QueryByName(ctx, "Sarah")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", again[0].Name)
}

func TestUpdatePatchesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	s := NewContactStore()

	id, err := s.Create(ctx, &domain.Contact{
		Name:        "Sarah Chen",
		Notes:       "original",
		LastContact: "2025-01-01",
	})
	require.NoError(t, err)

	followUp := "2025-02-01"
	require.NoError(t, s.Update(ctx, id, domain.ContactPatch{FollowUpDate: &followUp}))

	matches, err := s.QueryByName(ctx, "Sarah")
	require.NoError(t, err)
	assert.Equal(t, "original", matches[0].Notes)
	assert.Equal(t, "2025-01-01", matches[0].LastContact)
	assert.Equal(t, "2025-02-01", matches[0].FollowUpDate)
}

func TestUpdateUnknownContact(t *testing.T) {
	s := NewContactStore()

	notes := "x"
	err := s.Update(context.Background(), "missing", domain.ContactPatch{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestGetNotes(t *testing.T) {
	ctx := context.Background()
	s := NewContactStore()

	id, err := s.Create(ctx, &domain.Contact{Name: "Sarah Chen", Notes: "met at demo day"})
	require.NoError(t, err)

	notes, err := s.GetNotes(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "met at demo day", notes)

	_, err = s.GetNotes(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}
