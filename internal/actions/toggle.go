package actions

import (
	"context"
	"errors"

	"github.com/snapgram/snapgram/internal/db"
	"github.com/snapgram/snapgram/internal/models"
)

// ToggleOutcome reports the net effect of a relation toggle
type ToggleOutcome int

const (
	// ToggleAdded means the relation row now exists
	ToggleAdded ToggleOutcome = iota
	// ToggleRemoved means the relation row was deleted
	ToggleRemoved
)

// toggleRelation flips the existence of the relation row for a pair key.
// Like, bookmark and follow all run through here; the relation kind selects
// the table and pair-key shape. Uniqueness under concurrent toggles is the
// store's composite key: when two toggles race and both observe "absent",
// the losing insert comes back as db.ErrDuplicate and the row is simply
// already added.
func toggleRelation(ctx context.Context, store RelationStore, kind models.RelationKind, key models.PairKey) (ToggleOutcome, error) {
	exists, err := store.FindRelation(ctx, kind, key)
	if err != nil {
		return 0, err
	}

	if exists {
		if err := store.DeleteRelation(ctx, kind, key); err != nil {
			return 0, err
		}
		return ToggleRemoved, nil
	}

	if err := store.CreateRelation(ctx, kind, key); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ToggleAdded, nil
		}
		return 0, err
	}
	return ToggleAdded, nil
}
