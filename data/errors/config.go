package errors

import "github.com/mwantia/mirrorfs/data"

func InvalidConfig(err error, field, reason string) error {
	return wrap(data.ErrInvalidConfig, err, "%s %s", field, reason)
}

func MalformedConnectionString(err error, reason string) error {
	return wrap(data.ErrMalformedConnectionString, err, "%s", reason)
}

func UnknownProvider(provider string) error {
	return wrap(data.ErrUnknownProvider, nil, "'%s'", provider)
}
