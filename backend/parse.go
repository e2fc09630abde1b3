package backend

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mwantia/mirrorfs/data/errors"
)

type Provider string

const (
	ProviderMemory Provider = "memory"
	ProviderS3     Provider = "s3"
	ProviderConsul Provider = "consul"
	ProviderLocal  Provider = "file"
	ProviderSQLite Provider = "sqlite"
)

const (
	defaultConsulAddress = "127.0.0.1:8500"
	memoryAddress        = ":memory:"
)

// ConnectionString is the parsed form of a remote connection credential.
type ConnectionString struct {
	Provider Provider

	// Endpoint is host:port of the remote service.
	Endpoint string

	// Path of the local directory or SQLite database
	Path string

	// S3 credentials and transport
	AccessKey string
	SecretKey string
	Secure    bool
	Region    string

	// Consul ACL token, datacenter, namespace and key prefix
	Token      string
	Datacenter string
	Namespace  string
	Prefix     string
}

// ParseConnectionString parses one of the supported address forms:
//
//	:memory:
//	s3://<access_key>:<secret_key>@<host>:<port>?ssl=<bool>&region=<region>
//	minio://... (alias of s3://)
//	consul://<host>:<port>?token=<token>&datacenter=<dc>&namespace=<ns>&prefix=<prefix>
//	file://<directory>
//	sqlite://<database>   (sqlite://:memory: for a transient store)
//
// Credentials containing reserved characters must be percent-encoded.
func ParseConnectionString(address string) (*ConnectionString, error) {
	address = strings.TrimSpace(address)
	if address == memoryAddress {
		return &ConnectionString{Provider: ProviderMemory}, nil
	}

	scheme, rest, found := strings.Cut(address, "://")
	if !found || scheme == "" {
		return nil, errors.MalformedConnectionString(nil, "missing '<provider>://' scheme")
	}

	// Paths are taken verbatim; ":memory:" is not a valid URL host
	switch strings.ToLower(scheme) {
	case "file":
		return parsePathAddress(ProviderLocal, rest)
	case "sqlite":
		return parsePathAddress(ProviderSQLite, rest)
	}

	u, err := url.Parse(address)
	if err != nil {
		return nil, errors.MalformedConnectionString(err, "unable to parse address")
	}

	switch strings.ToLower(scheme) {
	case "s3", "minio":
		return parseS3Address(u)
	case "consul":
		return parseConsulAddress(u)
	}

	return nil, errors.UnknownProvider(scheme)
}

func parseS3Address(u *url.URL) (*ConnectionString, error) {
	if u.Host == "" {
		return nil, errors.MalformedConnectionString(nil, "s3 address requires a host")
	}
	if u.User == nil || u.User.Username() == "" {
		return nil, errors.MalformedConnectionString(nil, "s3 address requires an access key")
	}

	secret, _ := u.User.Password()
	query := u.Query()

	secure := true
	if value := query.Get("ssl"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.MalformedConnectionString(err, "invalid 'ssl' value")
		}
		secure = parsed
	}

	return &ConnectionString{
		Provider:  ProviderS3,
		Endpoint:  u.Host,
		AccessKey: u.User.Username(),
		SecretKey: secret,
		Secure:    secure,
		Region:    query.Get("region"),
	}, nil
}

func parsePathAddress(provider Provider, path string) (*ConnectionString, error) {
	if path == "" {
		return nil, errors.MalformedConnectionString(nil, string(provider)+" address requires a path")
	}

	return &ConnectionString{
		Provider: provider,
		Path:     path,
	}, nil
}

func parseConsulAddress(u *url.URL) (*ConnectionString, error) {
	endpoint := u.Host
	if endpoint == "" {
		endpoint = defaultConsulAddress
	}

	query := u.Query()
	return &ConnectionString{
		Provider:   ProviderConsul,
		Endpoint:   endpoint,
		Token:      query.Get("token"),
		Datacenter: query.Get("datacenter"),
		Namespace:  query.Get("namespace"),
		Prefix:     strings.Trim(query.Get("prefix"), "/"),
	}, nil
}

// String renders the connection string with secrets removed, for logging.
func (cs *ConnectionString) String() string {
	switch cs.Provider {
	case ProviderMemory:
		return memoryAddress
	case ProviderS3:
		return "s3://" + cs.AccessKey + ":***@" + cs.Endpoint
	case ProviderConsul:
		return "consul://" + cs.Endpoint
	case ProviderLocal, ProviderSQLite:
		return string(cs.Provider) + "://" + cs.Path
	default:
		return string(cs.Provider)
	}
}
