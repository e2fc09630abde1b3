package s3

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mwantia/mirrorfs/backend"
)

// S3Backend stores objects in any S3-compatible service. Containers map to
// buckets, keys map to object names.
type S3Backend struct {
	client *minio.Client
	config *S3BackendConfig
}

// S3BackendConfig contains configuration options for the S3 backend
type S3BackendConfig struct {
	// Endpoint is host:port of the service (e.g. "s3.amazonaws.com" or "localhost:9000")
	Endpoint string

	AccessKey string
	SecretKey string

	// Region used when buckets are created implicitly (optional)
	Region string

	// Secure enables TLS
	Secure bool
}

func NewS3Backend(config *S3BackendConfig) (*S3Backend, error) {
	if config == nil || config.Endpoint == "" {
		return nil, fmt.Errorf("s3: endpoint must be defined")
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.Secure,
		Region: config.Region,
	})
	if err != nil {
		return nil, err
	}

	return &S3Backend{
		client: client,
		config: config,
	}, nil
}

// Returns the identifier name defined for this backend
func (*S3Backend) Name() string {
	return "s3"
}

// Open is part of the lifecycle behaviour and gets called when opening this backend.
// Buckets are created on demand, so there is nothing to verify upfront.
func (sb *S3Backend) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (sb *S3Backend) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (sb *S3Backend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityObjectStorage,
			backend.CapabilityImplicitContainers,
			backend.CapabilityBatchDelete,
			backend.CapabilityContentType,
		},
		// S3 single object limit
		MaxObjectSize: 5 << 40,
	}
}
