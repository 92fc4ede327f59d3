// Package outputstore keeps merged PDFs between the merge call and the
// download, keyed by session ID.
package outputstore

import (
	"context"
	"fmt"
	"time"
)

type Entry struct {
	Data      []byte
	PageCount int
	Filename  string
	CreatedAt time.Time
}

type Store interface {
	Put(ctx context.Context, key string, e Entry) error
	Get(ctx context.Context, key string) (Entry, bool, error) // entry, found, err
	Delete(ctx context.Context, key string) error
	Close() error
}

type Conf struct {
	Type     string        // "memory" or "redis"
	TTL      time.Duration // 0 keeps entries until deleted
	Addr     string        // redis host:port
	Password string
	DB       int
	Prefix   string
}

func New(conf Conf) (Store, error) {
	switch conf.Type {
	case "", "memory":
		return NewMemory(conf.TTL), nil
	case "redis":
		return NewRedis(conf)
	}
	return nil, fmt.Errorf("outputstore: unknown store type %q", conf.Type)
}
