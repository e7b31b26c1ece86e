package models

import (
	"testing"
	"time"
)

func TestRelationKindRecord(t *testing.T) {
	key := PairKey{SubjectID: "subject-1", ActorID: "actor-1"}
	at := time.Now().UTC()

	t.Run("like", func(t *testing.T) {
		like, ok := RelationLike.Record(key, at).(*Like)
		if !ok {
			t.Fatal("expected *Like")
		}
		if like.PostID != "subject-1" || like.UserID != "actor-1" {
			t.Errorf("like wired wrong: %+v", like)
		}
	})

	t.Run("save", func(t *testing.T) {
		saved, ok := RelationSave.Record(key, at).(*SavedPost)
		if !ok {
			t.Fatal("expected *SavedPost")
		}
		if saved.PostID != "subject-1" || saved.UserID != "actor-1" {
			t.Errorf("saved post wired wrong: %+v", saved)
		}
	})

	t.Run("follow maps actor to follower", func(t *testing.T) {
		follow, ok := RelationFollow.Record(key, at).(*Follow)
		if !ok {
			t.Fatal("expected *Follow")
		}
		if follow.FollowerID != "actor-1" || follow.FollowingID != "subject-1" {
			t.Errorf("follow wired wrong: %+v", follow)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if rec := RelationKind("nope").Record(key, at); rec != nil {
			t.Errorf("expected nil record, got: %+v", rec)
		}
	})
}
