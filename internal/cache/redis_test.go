package cache

import (
	"context"
	"testing"
)

func TestScopeKey(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		expected string
	}{
		{
			name:     "feed scope",
			scope:    "feed",
			expected: "snapgram:view:feed",
		},
		{
			name:     "entity scope",
			scope:    "post:abc123",
			expected: "snapgram:view:post:abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScopeKey(tt.scope); got != tt.expected {
				t.Errorf("ScopeKey(%q) = %q, want %q", tt.scope, got, tt.expected)
			}
		})
	}
}

func TestNamespaceKey(t *testing.T) {
	if got := NamespaceKey("test"); got != "snapgram:test" {
		t.Errorf("NamespaceKey(test) = %q, want snapgram:test", got)
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	// Invalidate must be a no-op, not a panic
	c.Invalidate(ctx, "feed")

	if _, err := c.Get(ctx, "key"); err != ErrCacheDisabled {
		t.Errorf("Get on nil cache should return ErrCacheDisabled, got: %v", err)
	}
	if err := c.Health(ctx); err != ErrCacheDisabled {
		t.Errorf("Health on nil cache should return ErrCacheDisabled, got: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil cache should return nil, got: %v", err)
	}
}
