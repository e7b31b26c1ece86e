package actions

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/snapgram/snapgram/internal/db"
	"github.com/snapgram/snapgram/internal/models"
)

func TestToggleRelationSequence(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	key := models.PairKey{SubjectID: "post-1", ActorID: "user-1"}

	kinds := []models.RelationKind{models.RelationLike, models.RelationSave, models.RelationFollow}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			expected := []ToggleOutcome{ToggleAdded, ToggleRemoved, ToggleAdded}
			for i, want := range expected {
				got, err := toggleRelation(ctx, store, kind, key)
				if err != nil {
					t.Fatalf("toggle %d failed: %v", i, err)
				}
				if got != want {
					t.Errorf("toggle %d = %v, want %v", i, got, want)
				}
			}
			if !store.hasRelation(kind, key) {
				t.Error("relation should exist after odd number of toggles")
			}
			// reset for the next kind
			if err := store.DeleteRelation(ctx, kind, key); err != nil {
				t.Fatalf("cleanup failed: %v", err)
			}
		})
	}
}

func TestToggleRelationDuplicateInsertIsAdded(t *testing.T) {
	// A concurrent toggle that won the insert race surfaces as ErrDuplicate;
	// the engine reports the relation as added rather than failing.
	store := &racyRelationStore{rows: make(map[string]bool)}
	key := models.PairKey{SubjectID: "post-1", ActorID: "user-1"}

	if _, err := toggleRelation(context.Background(), store, models.RelationLike, key); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	outcome, err := toggleRelation(context.Background(), store, models.RelationLike, key)
	if err != nil {
		t.Fatalf("duplicate insert should not be an error: %v", err)
	}
	if outcome != ToggleAdded {
		t.Errorf("duplicate insert outcome = %v, want ToggleAdded", outcome)
	}
}

func TestToggleRelationStoreErrors(t *testing.T) {
	ctx := context.Background()
	key := models.PairKey{SubjectID: "post-1", ActorID: "user-1"}
	storeErr := errors.New("boom")

	tests := []struct {
		name string
		op   string
		prep func(*memStore)
	}{
		{name: "find fails", op: "relations.find"},
		{name: "create fails", op: "relations.create"},
		{
			name: "delete fails",
			op:   "relations.delete",
			prep: func(m *memStore) {
				m.relations[relKey(models.RelationLike, key)] = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			if tt.prep != nil {
				tt.prep(store)
			}
			store.fail[tt.op] = storeErr

			if _, err := toggleRelation(ctx, store, models.RelationLike, key); !errors.Is(err, storeErr) {
				t.Errorf("expected store error to propagate, got: %v", err)
			}
		})
	}
}

// racyRelationStore simulates the worst-case race: every toggle observes the
// relation as absent, so all of them race to insert. The insert itself is
// atomic, like the composite primary key in the real store.
type racyRelationStore struct {
	mu   sync.Mutex
	rows map[string]bool
}

func (s *racyRelationStore) FindRelation(context.Context, models.RelationKind, models.PairKey) (bool, error) {
	return false, nil
}

func (s *racyRelationStore) CreateRelation(_ context.Context, kind models.RelationKind, key models.PairKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := relKey(kind, key)
	if s.rows[k] {
		return db.ErrDuplicate
	}
	s.rows[k] = true
	return nil
}

func (s *racyRelationStore) DeleteRelation(_ context.Context, kind models.RelationKind, key models.PairKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, relKey(kind, key))
	return nil
}

func TestToggleRelationConcurrentAdds(t *testing.T) {
	// N toggles race on a never-liked pair, all observing "absent". Exactly
	// one row must exist afterward and every call must settle on "added".
	store := &racyRelationStore{rows: make(map[string]bool)}
	key := models.PairKey{SubjectID: "post-1", ActorID: "user-1"}

	const n = 32
	outcomes := make([]ToggleOutcome, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = toggleRelation(context.Background(), store, models.RelationLike, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("toggle %d failed: %v", i, errs[i])
		}
		if outcomes[i] != ToggleAdded {
			t.Errorf("toggle %d outcome = %v, want ToggleAdded", i, outcomes[i])
		}
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.rows) != 1 {
		t.Errorf("expected exactly 1 relation row, got %d", len(store.rows))
	}
}
