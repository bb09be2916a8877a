package root

import (
	"context"

	"go.uber.org/zap"

	"eratracker/internal/engine"
	"eratracker/internal/random"
	"eratracker/internal/storage"
)

func openKV(ctx context.Context) (storage.KV, func(), error) {
	kv, err := storage.OpenKV(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := kv.Close(); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
	}
	return kv, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	rng, err := random.New()
	if err != nil {
		return nil, nil, err
	}
	kv, cleanup, err := openKV(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(ctx, kv,
		engine.WithLogger(logger),
		engine.WithLocation(loc),
		engine.WithRand(rng),
		engine.WithGemTarget(cfg.Tracker.GemTarget),
		engine.WithStateKey(cfg.Storage.Key),
	)
	return svc, cleanup, nil
}

// withService opens the service for the duration of fn.
func withService(ctx context.Context, fn func(svc *engine.Service) error) error {
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(svc)
}
