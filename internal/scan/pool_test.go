package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPoolRunsSubmittedTasks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 5)
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan Result, 4)
	pool := NewPool(ctx, 2, out)

	if !pool.TrySubmit(Task{Path: root, IsOpenDefault: true}) {
		t.Fatalf("expected TrySubmit to accept task on a fresh pool")
	}
	if !pool.TrySubmit(Task{Path: sub}) {
		t.Fatalf("expected TrySubmit to accept second task")
	}

	seen := make(map[string]Result)
	timeout := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case res := <-out:
			seen[res.Path] = res
		case <-timeout:
			t.Fatalf("timed out waiting for results, got %d of 2", len(seen))
		}
	}

	if len(seen[root].Entries) != 2 {
		t.Errorf("expected 2 entries at root, got %d", len(seen[root].Entries))
	}
	if len(seen[sub].Entries) != 0 {
		t.Errorf("expected 0 entries at empty sub, got %d", len(seen[sub].Entries))
	}
}

func TestPoolStopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Result, 1)
	pool := NewPool(ctx, 1, out)
	cancel()
	pool.Wait()
}

func TestDefaultPoolSizeUsedWhenNonPositive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := make(chan Result, 1)
	pool := NewPool(ctx, 0, out)
	if cap(pool.tasks) != DefaultPoolSize*256 {
		t.Errorf("expected queue capacity sized for DefaultPoolSize, got %d", cap(pool.tasks))
	}
}
