package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardian.yaml")
	if err := os.WriteFile(path, []byte("budget:\n  hard_cap_usd: 1.0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	w, err := NewWatcher(path, WithDebounceInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(cfg *Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("budget:\n  hard_cap_usd: 2.5\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Budget.HardCapUSD == nil || *cfg.Budget.HardCapUSD != 2.5 {
			t.Errorf("Expected reloaded hard cap 2.5, got %v", cfg.Budget.HardCapUSD)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for watcher shutdown")
	}
}

func TestWatcher_InvalidReloadKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardian.yaml")
	if err := os.WriteFile(path, []byte("budget:\n  hard_cap_usd: 1.0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	w, err := NewWatcher(path, WithDebounceInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 2)
	go func() {
		_ = w.Watch(ctx, func(cfg *Config) { reloaded <- cfg })
	}()

	time.Sleep(50 * time.Millisecond)

	// An invalid config must not reach the callback.
	if err := os.WriteFile(path, []byte("budget:\n  hard_cap_usd: -1\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	select {
	case cfg := <-reloaded:
		t.Fatalf("Invalid config must be dropped, got %+v", cfg)
	default:
	}

	// A subsequent valid config still triggers a reload.
	if err := os.WriteFile(path, []byte("budget:\n  hard_cap_usd: 3.0\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Budget.HardCapUSD == nil || *cfg.Budget.HardCapUSD != 3.0 {
			t.Errorf("Expected hard cap 3.0, got %v", cfg.Budget.HardCapUSD)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload after recovery")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardian.yaml")
	if err := os.WriteFile(path, []byte("budget: {}\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	w, err := NewWatcher(path, WithDebounceInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 1)
	go func() {
		_ = w.Watch(ctx, func(cfg *Config) { reloaded <- cfg })
	}()

	time.Sleep(50 * time.Millisecond)

	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(other, []byte("unrelated: true\n"), 0o644); err != nil {
		t.Fatalf("Failed to write other file: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	select {
	case <-reloaded:
		t.Fatal("Changes to unrelated files must not trigger a reload")
	default:
	}
}
