package main

import (
	"context"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ik5/murmur/config"
	"github.com/ik5/murmur/session"
)

func TestOpenBackend(t *testing.T) {
	t.Parallel()

	lg := zaptest.NewLogger(t)

	b, err := openBackend(&config.Config{Store: config.StoreMemory}, lg)
	if err != nil {
		t.Fatalf("openBackend(memory) error = %v", err)
	}
	_ = b.Close()

	b, err = openBackend(&config.Config{Store: config.StoreBadger, DataDir: t.TempDir()}, lg)
	if err != nil {
		t.Fatalf("openBackend(badger) error = %v", err)
	}
	_ = b.Close()

	if _, err := openBackend(&config.Config{Store: "redis"}, lg); err == nil {
		t.Error("openBackend(redis) succeeded")
	}
}

func TestNewEnv(t *testing.T) {
	t.Parallel()

	e, err := newEnv(&config.Config{
		AssetsDir:  t.TempDir(),
		Catalog:    "sounds.json",
		Store:      config.StoreMemory,
		SampleRate: 8000,
		LogLevel:   "error",
	})
	if err != nil {
		t.Fatalf("newEnv() error = %v", err)
	}

	// no catalog file: the built-in library, without its audio files
	tracks, err := e.app.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	var ids []int
	for _, tr := range tracks {
		ids = append(ids, tr.ID)
	}
	if !slices.Equal(ids, []int{1, 2, 3}) {
		t.Errorf("free track ids = %v, want [1 2 3]", ids)
	}
	if out, _ := e.app.Toggle(context.Background(), 1); out != session.AssetMissing {
		t.Errorf("Toggle(1) = %v, want asset-missing", out)
	}

	if err := e.close(); err != nil {
		t.Errorf("close() error = %v", err)
	}
}
