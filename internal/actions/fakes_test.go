package actions

import (
	"context"
	"strings"
	"sync"

	"github.com/snapgram/snapgram/internal/db"
	"github.com/snapgram/snapgram/internal/models"
)

// memStore is an in-memory persistence gateway used by the action tests. It
// implements UserStore, PostStore, CommentStore and RelationStore. Relation
// uniqueness is enforced under the mutex the way the real store enforces it
// with a composite primary key.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*models.User
	posts     map[string]*models.Post
	comments  map[string]*models.Comment
	relations map[string]bool

	// fail injects an error for the named operation
	fail map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[string]*models.User),
		posts:     make(map[string]*models.Post),
		comments:  make(map[string]*models.Comment),
		relations: make(map[string]bool),
		fail:      make(map[string]error),
	}
}

func relKey(kind models.RelationKind, key models.PairKey) string {
	return string(kind) + "|" + key.SubjectID + "|" + key.ActorID
}

func (m *memStore) FindUser(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["users.find"]; err != nil {
		return nil, err
	}
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) UpdateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["users.update"]; err != nil {
		return err
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) FindPost(_ context.Context, id string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["posts.find"]; err != nil {
		return nil, err
	}
	if p, ok := m.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) CreatePost(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["posts.create"]; err != nil {
		return err
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *memStore) UpdatePost(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["posts.update"]; err != nil {
		return err
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *memStore) DeletePost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["posts.delete"]; err != nil {
		return err
	}
	delete(m.posts, id)
	// Cascade likes, bookmarks and comments like the transactional delete
	likePrefix := string(models.RelationLike) + "|" + id + "|"
	savePrefix := string(models.RelationSave) + "|" + id + "|"
	for k := range m.relations {
		if strings.HasPrefix(k, likePrefix) || strings.HasPrefix(k, savePrefix) {
			delete(m.relations, k)
		}
	}
	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	return nil
}

func (m *memStore) FindComment(_ context.Context, id string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["comments.find"]; err != nil {
		return nil, err
	}
	if c, ok := m.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) CreateComment(_ context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["comments.create"]; err != nil {
		return err
	}
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *memStore) DeleteComment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["comments.delete"]; err != nil {
		return err
	}
	delete(m.comments, id)
	return nil
}

func (m *memStore) FindRelation(_ context.Context, kind models.RelationKind, key models.PairKey) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["relations.find"]; err != nil {
		return false, err
	}
	return m.relations[relKey(kind, key)], nil
}

func (m *memStore) CreateRelation(_ context.Context, kind models.RelationKind, key models.PairKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["relations.create"]; err != nil {
		return err
	}
	k := relKey(kind, key)
	if m.relations[k] {
		return db.ErrDuplicate
	}
	m.relations[k] = true
	return nil
}

func (m *memStore) DeleteRelation(_ context.Context, kind models.RelationKind, key models.PairKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["relations.delete"]; err != nil {
		return err
	}
	delete(m.relations, relKey(kind, key))
	return nil
}

func (m *memStore) relationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.relations)
}

func (m *memStore) hasRelation(kind models.RelationKind, key models.PairKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.relations[relKey(kind, key)]
}

// fakeViews records invalidated scopes
type fakeViews struct {
	mu     sync.Mutex
	scopes []string
}

func (f *fakeViews) Invalidate(_ context.Context, scopes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scopes = append(f.scopes, scopes...)
}

func (f *fakeViews) invalidated(scope string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.scopes {
		if s == scope {
			return true
		}
	}
	return false
}
