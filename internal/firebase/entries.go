package firebase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/henripigeon/grade-tracker/internal/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrEntryNotFound is returned when an update or delete targets a document
// that does not exist.
var ErrEntryNotFound = errors.New("course entry not found")

const entriesCollection = "entries"

/*
Structure:

  - entries/{id}

Course entries live in a single flat collection. Document IDs are generated
client-side (uuid) so the ID can be written into the document body and
echoed back to the caller without a second round trip.
*/
func (c *Firestore) CreateEntry(ctx context.Context, entry types.CourseEntry) (string, error) {
	id := uuid.NewString()
	entry.ID = id

	if _, err := c.Collection(entriesCollection).Doc(id).Set(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to create entry: %w", err)
	}

	return id, nil
}

// UpdateEntry replaces every field of an existing entry.
func (c *Firestore) UpdateEntry(ctx context.Context, id string, entry types.CourseEntry) error {
	ref := c.Collection(entriesCollection).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to look up entry %s: %w", id, err)
	}

	entry.ID = id
	if _, err := ref.Set(ctx, entry); err != nil {
		return fmt.Errorf("failed to update entry %s: %w", id, err)
	}

	return nil
}

func (c *Firestore) DeleteEntry(ctx context.Context, id string) error {
	ref := c.Collection(entriesCollection).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to look up entry %s: %w", id, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, err)
	}

	return nil
}

// ListEntries returns every course entry in store order. Firestore does not
// guarantee a stable order here; callers treat the slice order as
// encounter order.
func (c *Firestore) ListEntries(ctx context.Context) ([]types.CourseEntry, error) {
	iter := c.Collection(entriesCollection).Documents(ctx)
	defer iter.Stop()

	var entries []types.CourseEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get next entry: %w", err)
		}

		var entry types.CourseEntry
		if err := doc.DataTo(&entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ImportEntries bulk-writes a batch of entries, generating IDs for any that
// lack one. Used by the seed command.
func (c *Firestore) ImportEntries(ctx context.Context, entries []types.CourseEntry) int {
	writer := c.BulkWriter(ctx)
	defer writer.End()

	imported := 0
	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		writer.Set(c.Collection(entriesCollection).Doc(entry.ID), entry)
		imported++
	}

	return imported
}
