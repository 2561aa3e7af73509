package catalogwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcher_FiresOnceAfterBurstOfWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datos.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) }, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(`{"tamanos":[]}`), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	deadline := time.Now().Add(3 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one reload, got %d", calls.Load())
	}
	if stats := w.Stats(); stats.Events == 0 || stats.Reloads != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datos.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	time.Sleep(150 * time.Millisecond)
	w.Stop()

	if calls.Load() != 0 {
		t.Fatalf("expected no reloads, got %d", calls.Load())
	}
}

func TestWatcher_StopAfterContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	w, err := New(path, func() {})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	cancel()
	w.Stop()
	w.Stop()
}

func TestNew_RequiresArguments(t *testing.T) {
	if _, err := New("", func() {}); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := New("datos.json", nil); err == nil {
		t.Fatal("expected error for nil callback")
	}
}
