package outputstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	lowimpl "github.com/redis/go-redis/v9"
)

// Redis stores each entry as a hash with an expiry.
type Redis struct {
	conf     Conf
	internal *lowimpl.Client
}

var _ Store = (*Redis)(nil)

const (
	fieldData     = "pdf"
	fieldPages    = "pages"
	fieldFilename = "filename"
	fieldCreated  = "created"
)

func NewRedis(conf Conf) (*Redis, error) {
	if conf.Addr == "" {
		return nil, errors.New("outputstore: redis address is required")
	}
	if conf.Prefix == "" {
		conf.Prefix = "nupmerge:output:"
	}
	return &Redis{
		conf: conf,
		internal: lowimpl.NewClient(&lowimpl.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
			DB:       conf.DB,
		}),
	}, nil
}

func (r *Redis) key(k string) string { return r.conf.Prefix + k }

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.internal.Ping(ctx).Err()
}

func (r *Redis) Put(ctx context.Context, key string, e Entry) error {
	k := r.key(key)
	_, err := r.internal.TxPipelined(ctx, func(pipe lowimpl.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k, map[string]any{
			fieldData:     e.Data,
			fieldPages:    e.PageCount,
			fieldFilename: e.Filename,
			fieldCreated:  e.CreatedAt.Unix(),
		})
		if r.conf.TTL > 0 {
			pipe.Expire(ctx, k, r.conf.TTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("outputstore: redis put %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	fields, err := r.internal.HGetAll(ctx, r.key(key)).Result()
	if errors.Is(err, lowimpl.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("outputstore: redis get %s: %w", key, err)
	}
	data, ok := fields[fieldData]
	if !ok {
		return Entry{}, false, nil // HGETALL on a missing key is an empty map
	}

	e := Entry{Data: []byte(data), Filename: fields[fieldFilename]}
	if e.PageCount, err = strconv.Atoi(fields[fieldPages]); err != nil {
		return Entry{}, false, fmt.Errorf("outputstore: redis entry %s: bad page count: %w", key, err)
	}
	if created, err := strconv.ParseInt(fields[fieldCreated], 10, 64); err == nil {
		e.CreatedAt = time.Unix(created, 0)
	}
	return e, true, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.internal.Del(ctx, r.key(key)).Err()
}

func (r *Redis) Close() error {
	if r.internal == nil {
		return nil
	}
	return r.internal.Close()
}
