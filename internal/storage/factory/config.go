package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/es"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/pg"
	"github.com/DjordjeVuckovic/article-feed/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	// PgAutoMigrate applies the embedded schema migrations before the pool is opened
	PgAutoMigrate bool
	Es            *es.ClientConfig
	// SeedPath is a YAML seed loaded into the in-memory store on startup
	SeedPath string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if storageType != storage.ES && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem})
	}

	var esCfg *es.ClientConfig
	if storageType == storage.ES {
		esCfg = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	}

	var pgCfg *pg.PoolConfig
	autoMigrate := false
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if maxConns := os.Getenv("PG_MAX_CONNS"); maxConns != "" {
			n, err := strconv.ParseInt(maxConns, 10, 32)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", maxConns)
			}
			pgCfg.MaxConns = int32(n)
		}
		if v := os.Getenv("PG_AUTO_MIGRATE"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_AUTO_MIGRATE value: %s", v)
			}
			autoMigrate = b
		}
	}

	return &StorageConfig{
		Type:          storageType,
		Pg:            pgCfg,
		PgAutoMigrate: autoMigrate,
		Es:            esCfg,
		SeedPath:      os.Getenv("SEED_PATH"),
	}, nil
}
