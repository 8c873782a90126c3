// Package memory provides an in-memory ContactStore for local dev and
// tests.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shennylee/aios/internal/domain"
)

type ContactStore struct {
	mu       sync.RWMutex
	contacts map[domain.ContactID]*domain.Contact
	order    []domain.ContactID // creation order, keeps query results stable
}

func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[domain.ContactID]*domain.Contact),
	}
}

// QueryByName matches stored display names by case-sensitive substring.
func (s *ContactStore) QueryByName(_ context.Context, query string) ([]*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Contact
	for _, id := range s.order {
		c := s.contacts[id]
		if strings.Contains(c.Name, query) {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *ContactStore) Create(_ context.Context, c *domain.Contact) (domain.ContactID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.ID
	if id == "" {
		id = domain.ContactID(uuid.NewString())
	}
	if _, exists := s.contacts[id]; exists {
		return "", fmt.Errorf("contact %s already exists", id)
	}

	stored := *c
	stored.ID = id
	s.contacts[id] = &stored
	s.order = append(s.order, id)
	return id, nil
}

func (s *ContactStore) Update(_ context.Context, id domain.ContactID, patch domain.ContactPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrContactNotFound, id)
	}

	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.LastContact != nil {
		c.LastContact = *patch.LastContact
	}
	if patch.FollowUpDate != nil {
		c.FollowUpDate = *patch.FollowUpDate
	}
	return nil
}

func (s *ContactStore) GetNotes(_ context.Context, id domain.ContactID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contacts[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrContactNotFound, id)
	}
	return c.Notes, nil
}
