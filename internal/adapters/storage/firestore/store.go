// Package firestore implements the ContactStore on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shennylee/aios/internal/domain"
)

const contactsCollection = "contacts"

type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore-backed contact store for the project.
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) contactsCol() *firestore.CollectionRef {
	return s.client.Collection(contactsCollection)
}

func (s *Store) contactDoc(id domain.ContactID) *firestore.DocumentRef {
	return s.contactsCol().Doc(string(id))
}

type contactDoc struct {
	Name         string `firestore:"name"`
	Company      string `firestore:"company"`
	Type         string `firestore:"type"`
	Email        string `firestore:"email"`
	Notes        string `firestore:"notes"`
	LastContact  string `firestore:"last_contact"`
	FollowUpDate string `firestore:"follow_up_date"`
}

// QueryByName iterates the collection and filters client side:
// Firestore has no substring operator, and a single-user CRM is small
// enough to scan. The match is case-sensitive.
func (s *Store) QueryByName(ctx context.Context, query string) ([]*domain.Contact, error) {
	iter := s.contactsCol().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*domain.Contact
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore QueryByName: %w", err)
		}

		var doc contactDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode contactDoc: %w", err)
		}

		if !strings.Contains(doc.Name, query) {
			continue
		}
		out = append(out, toContact(domain.ContactID(snap.Ref.ID), doc))
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, c *domain.Contact) (domain.ContactID, error) {
	doc := contactDoc{
		Name:         c.Name,
		Company:      c.Company,
		Type:         string(c.Type),
		Email:        c.Email,
		Notes:        c.Notes,
		LastContact:  c.LastContact,
		FollowUpDate: c.FollowUpDate,
	}

	ref, _, err := s.contactsCol().Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("firestore Create: %w", err)
	}
	return domain.ContactID(ref.ID), nil
}

func (s *Store) Update(ctx context.Context, id domain.ContactID, patch domain.ContactPatch) error {
	fields := map[string]interface{}{}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}
	if patch.LastContact != nil {
		fields["last_contact"] = *patch.LastContact
	}
	if patch.FollowUpDate != nil {
		fields["follow_up_date"] = *patch.FollowUpDate
	}
	if len(fields) == 0 {
		return nil
	}

	_, err := s.contactDoc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", domain.ErrContactNotFound, id)
		}
		return fmt.Errorf("firestore Update: %w", err)
	}
	return nil
}

func (s *Store) GetNotes(ctx context.Context, id domain.ContactID) (string, error) {
	snap, err := s.contactDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("%w: %s", domain.ErrContactNotFound, id)
		}
		return "", fmt.Errorf("firestore GetNotes: %w", err)
	}

	var doc contactDoc
	if err := snap.DataTo(&doc); err != nil {
		return "", fmt.Errorf("firestore GetNotes decode: %w", err)
	}
	return doc.Notes, nil
}

func toContact(id domain.ContactID, doc contactDoc) *domain.Contact {
	return &domain.Contact{
		ID:           id,
		Name:         doc.Name,
		Company:      doc.Company,
		Type:         domain.ContactType(doc.Type),
		Email:        doc.Email,
		Notes:        doc.Notes,
		LastContact:  doc.LastContact,
		FollowUpDate: doc.FollowUpDate,
	}
}
