// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/murmur"
	"github.com/ik5/murmur/analytics"
	"github.com/ik5/murmur/catalog"
	"github.com/ik5/murmur/config"
	"github.com/ik5/murmur/engine"
	"github.com/ik5/murmur/logger"
	"github.com/ik5/murmur/store"
)

// env is everything a command works with, built once per invocation.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	bus    *engine.Bus
	app    *murmur.App
	tracks []catalog.Track // what the tier may browse

	// sleep is closed when the sleep timer fires.
	sleep chan struct{}
}

func openBackend(cfg *config.Config, lg *zap.Logger) (store.Backend, error) {
	switch cfg.Store {
	case config.StoreBadger:
		return store.NewBadger(store.BadgerOptions{Dir: cfg.DataDir, Logger: lg})
	case config.StoreGData:
		return store.NewGData(cfg.AppName)
	case config.StoreMemory:
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store %q, want %s, %s or %s",
		cfg.Store, config.StoreBadger, config.StoreGData, config.StoreMemory)
}

func newEnv(cfg *config.Config) (*env, error) {
	lg, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	backend, err := openBackend(cfg, lg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	assets := os.DirFS(cfg.AssetsDir)
	cat := catalog.LoadOrDefault(assets, cfg.Catalog, lg)
	bus := engine.NewBus(cfg.SampleRate)

	e := &env{
		cfg:    cfg,
		logger: lg,
		store:  store.New(backend),
		bus:    bus,
		sleep:  make(chan struct{}),
	}
	e.app = murmur.New(murmur.Deps{
		Catalog:  cat,
		Store:    e.store,
		Provider: murmur.VoiceProvider(engine.NewProvider(assets, bus, engine.WithLogger(lg.Named("engine")))),
		Tracker:  analytics.NewLogTracker(lg),
		Logger:   lg,
		OnSleep:  sync.OnceFunc(func() { close(e.sleep) }),
	})
	return e, nil
}

func (e *env) close() error {
	e.app.Close()
	err := errors.Join(e.bus.Close(), e.store.Close())
	_ = e.logger.Sync()
	return err
}
