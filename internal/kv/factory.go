package kv

import (
	"context"
	"fmt"
	"os"

	"fieldcore/internal/infra/kv/fs"
	"fieldcore/internal/infra/kv/memory"
	"fieldcore/internal/infra/kv/postgres"
	"fieldcore/internal/infra/kv/redis"
	"fieldcore/internal/infra/kv/s3"
	"fieldcore/internal/infra/kv/sqlite"
)

// Open selects a kv.Store implementation using environment variables.
//
//	FIELDCORE_KV_DRIVER: memory|fs|sqlite|postgres|redis|s3 (default fs)
//	FIELDCORE_KV_FS_ROOT: directory root when driver=fs (default ./fieldcore-data)
//	FIELDCORE_KV_SQLITE_PATH: sqlite file when driver=sqlite (default ./fieldcore.db)
//	FIELDCORE_KV_POSTGRES_DSN: postgres DSN when driver=postgres
//	FIELDCORE_KV_REDIS_ADDR / _PASSWORD / _DB: redis connection when driver=redis
//	(S3 specific variables documented in the s3 package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("FIELDCORE_KV_DRIVER")
	if driver == "" {
		driver = string(DriverFS)
	}
	switch Driver(driver) {
	case DriverMemory:
		return memory.New(), nil
	case DriverFS:
		return fs.New(os.Getenv("FIELDCORE_KV_FS_ROOT"))
	case DriverSQLite:
		return sqlite.New(os.Getenv("FIELDCORE_KV_SQLITE_PATH"))
	case DriverPostgres:
		return postgres.New(ctx, os.Getenv("FIELDCORE_KV_POSTGRES_DSN"))
	case DriverRedis:
		return redis.OpenFromEnv()
	case DriverS3:
		return s3.OpenFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown kv driver %s", driver)
	}
}
