package data

// ObjectKey addresses a single object (or, for directories, a key prefix) in
// the remote store.
type ObjectKey struct {
	Container string
	Key       string
}

func (k ObjectKey) String() string {
	if k.Key == "" {
		return k.Container
	}

	return k.Container + "/" + k.Key
}

// IsZero reports whether no container could be derived.
func (k ObjectKey) IsZero() bool {
	return k.Container == ""
}
