package common

import (
	"errors"
	"fmt"
	"sort"

	"monzo-webhooks-go/pkg/monzo"
)

var ErrUnknownKind = errors.New("unknown payload kind")

type codec struct {
	decode func(data []byte) (any, error)
	encode func(v any) ([]byte, error)
}

func entityCodec[T monzo.Entity]() codec {
	return codec{
		decode: func(data []byte) (any, error) {
			v, err := monzo.Decode[T](data)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		encode: func(v any) ([]byte, error) {
			typed, ok := v.(T)
			if !ok {
				var want T
				return nil, fmt.Errorf("expected %T, got %T", want, v)
			}
			return monzo.Encode(typed)
		},
	}
}

// kinds maps the names used on the command line and in fixture manifests to entity codecs.
var kinds = map[string]codec{
	"whoami":      entityCodec[monzo.WhoAmI](),
	"webhook":     entityCodec[monzo.Webhook](),
	"webhooks":    entityCodec[monzo.Webhooks](),
	"event":       entityCodec[monzo.WebhookEvent](),
	"transaction": entityCodec[monzo.TransactionCreated](),
	"merchant":    entityCodec[monzo.Merchant](),
	"address":     entityCodec[monzo.Address](),
}

// Kinds returns the supported payload kinds, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeKind decodes data as the entity registered under kind.
func DecodeKind(kind string, data []byte) (any, error) {
	c, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c.decode(data)
}

// EncodeKind encodes a value previously returned by DecodeKind for the same kind.
func EncodeKind(kind string, v any) ([]byte, error) {
	c, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c.encode(v)
}
