package mirrorfs

import (
	"context"
	"strings"

	"github.com/mwantia/mirrorfs/backend"
	"github.com/mwantia/mirrorfs/backend/consul"
	"github.com/mwantia/mirrorfs/backend/local"
	"github.com/mwantia/mirrorfs/backend/memory"
	"github.com/mwantia/mirrorfs/backend/s3"
	sqlitebackend "github.com/mwantia/mirrorfs/backend/sqlite"
	"github.com/mwantia/mirrorfs/data/errors"
	"github.com/mwantia/mirrorfs/journal"
	"github.com/mwantia/mirrorfs/journal/postgres"
	"github.com/mwantia/mirrorfs/journal/sqlite"
)

// NewBackend builds the object store client addressed by a connection string.
// The returned backend has not been opened yet.
func NewBackend(connectionString string) (backend.ObjectStorageBackend, error) {
	cs, err := backend.ParseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}

	switch cs.Provider {
	case backend.ProviderMemory:
		return memory.NewMemoryBackend(), nil

	case backend.ProviderS3:
		sb, err := s3.NewS3Backend(&s3.S3BackendConfig{
			Endpoint:  cs.Endpoint,
			AccessKey: cs.AccessKey,
			SecretKey: cs.SecretKey,
			Region:    cs.Region,
			Secure:    cs.Secure,
		})
		if err != nil {
			return nil, err
		}
		return sb, nil

	case backend.ProviderConsul:
		cb, err := consul.NewConsulBackend(&consul.ConsulBackendConfig{
			Address:    cs.Endpoint,
			Token:      cs.Token,
			Datacenter: cs.Datacenter,
			Namespace:  cs.Namespace,
			Prefix:     cs.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return cb, nil

	case backend.ProviderLocal:
		lb, err := local.NewLocalBackend(cs.Path)
		if err != nil {
			return nil, err
		}
		return lb, nil

	case backend.ProviderSQLite:
		sb, err := sqlitebackend.NewSQLiteBackend(cs.Path)
		if err != nil {
			return nil, err
		}
		return sb, nil
	}

	return nil, errors.UnknownProvider(string(cs.Provider))
}

// OpenJournal opens a failure journal from one of:
//
//	sqlite://<path>          (sqlite://:memory: for a transient journal)
//	postgres://...           (any pgx connection string)
func OpenJournal(ctx context.Context, address string) (journal.Journal, error) {
	scheme, rest, found := strings.Cut(strings.TrimSpace(address), "://")
	if !found {
		return nil, errors.MalformedConnectionString(nil, "journal address requires a '<provider>://' scheme")
	}

	switch strings.ToLower(scheme) {
	case "sqlite":
		if rest == "" {
			return nil, errors.MalformedConnectionString(nil, "sqlite journal requires a path")
		}
		j, err := sqlite.NewSQLiteJournal(rest)
		if err != nil {
			return nil, err
		}
		return j, nil

	case "postgres", "postgresql":
		j, err := postgres.NewPostgresJournal(ctx, address)
		if err != nil {
			return nil, err
		}
		return j, nil
	}

	return nil, errors.UnknownProvider(scheme)
}
