package consul

import (
	"context"
	"strings"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/mirrorfs/backend"
)

const (
	objectsTree      = "objects"
	contentTypesTree = "content-types"
)

// ConsulBackend stores objects in the HashiCorp Consul KV store.
//
// Layout below the configured prefix:
// - objects/<container>/<key> holds the raw payload
// - content-types/<container>/<key> holds the content type, if any
//
// Limitations:
// - Consul KV has a 512KB limit per value
// - Best suited for configuration files, small assets and metadata
type ConsulBackend struct {
	client *api.Client
	kv     *api.KV

	config *ConsulBackendConfig
}

// ConsulBackendConfig contains configuration options for the Consul backend
type ConsulBackendConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Datacenter to use (optional)
	Datacenter string

	// Namespace for Consul Enterprise (optional)
	Namespace string

	// Prefix for all keys in Consul KV (optional)
	Prefix string
}

// NewConsulBackend creates a new Consul-backed object storage backend
func NewConsulBackend(config *ConsulBackendConfig) (*ConsulBackend, error) {
	if config == nil {
		config = &ConsulBackendConfig{}
	}

	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}
	config.Prefix = strings.Trim(config.Prefix, "/")

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}
	if config.Datacenter != "" {
		clientConfig.Datacenter = config.Datacenter
	}
	if config.Namespace != "" {
		clientConfig.Namespace = config.Namespace
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulBackend{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

// Name returns the identifier name defined for this backend
func (*ConsulBackend) Name() string {
	return "consul"
}

// Open is part of the lifecycle behaviour and gets called when opening this backend
func (cb *ConsulBackend) Open(ctx context.Context) error {
	// Nothing to initialize - Consul handles connections
	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this backend
func (cb *ConsulBackend) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend
func (cb *ConsulBackend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityObjectStorage,
			backend.CapabilityImplicitContainers,
			backend.CapabilityBatchDelete,
			backend.CapabilityContentType,
		},
		// Consul KV has a default limit of 512KB per value
		MaxObjectSize: 512 * 1024,
	}
}

// objectKey constructs the full Consul KV key of an object payload.
func (cb *ConsulBackend) objectKey(container, key string) string {
	return cb.buildKey(objectsTree, container, key)
}

// contentTypeKey constructs the full Consul KV key holding an object's content type.
func (cb *ConsulBackend) contentTypeKey(container, key string) string {
	return cb.buildKey(contentTypesTree, container, key)
}

func (cb *ConsulBackend) buildKey(tree, container, key string) string {
	parts := make([]string, 0, 4)
	if cb.config.Prefix != "" {
		parts = append(parts, cb.config.Prefix)
	}
	parts = append(parts, tree, container, strings.TrimPrefix(key, "/"))

	return strings.Join(parts, "/")
}
