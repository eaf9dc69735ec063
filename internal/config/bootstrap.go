package config

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fieldcore/internal/kv"
)

// OpenStore loads a .env file when one is present, then opens the adapter
// selected by the environment. A missing .env is not an error; deployments
// setting real environment variables never ship one.
func OpenStore(ctx context.Context, logger *zap.Logger) (kv.Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}
	store, err := kv.Open(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("storage adapter ready", zap.String("driver", string(store.Driver())))
	return store, nil
}
