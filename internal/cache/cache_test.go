package cache

import (
	"context"
	"testing"
	"time"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key([]byte("resume bytes"))
	b := Key([]byte("resume bytes"))
	if a != b {
		t.Errorf("identical content produced different keys: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
	if Key([]byte("other bytes")) == a {
		t.Error("different content produced the same key")
	}
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	if err := c.SetResult(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Errorf("SetResult() error = %v", err)
	}

	// noop never stores, so reads always miss
	got, err := c.GetResult(ctx, "k")
	if err != nil {
		t.Errorf("GetResult() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetResult() = %v, want nil", got)
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
