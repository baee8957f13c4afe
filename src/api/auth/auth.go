package auth

import (
	"errors"
	"strings"
)

var ErrUnknownKey = errors.New("unknown api key")

// Resolver maps an opaque API key to a tenant id.
type Resolver interface {
	Resolve(key string) (string, error)
}

// StaticResolver is the in-memory key table. Real credential storage
// can be swapped in behind the Resolver interface without touching
// the handlers.
type StaticResolver map[string]string

func (r StaticResolver) Resolve(key string) (string, error) {
	tenant, ok := r[key]
	if !ok {
		return "", ErrUnknownKey
	}
	return tenant, nil
}

// ParseKeys builds a resolver from "key:tenant,key:tenant" as carried
// in the API_KEYS env var. Malformed pairs are skipped.
func ParseKeys(s string) StaticResolver {
	r := StaticResolver{}
	for _, pair := range strings.Split(s, ",") {
		key, tenant, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || key == "" || tenant == "" {
			continue
		}
		r[key] = tenant
	}
	return r
}
