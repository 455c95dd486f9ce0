package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
)

// Adapter loads resources stored as one hash per language and section.
// The hash at "{prefix}:{lang}:{section}" maps resource keys to values.
type Adapter struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
}

// NewAdapter creates a resource adapter over client using the key layout from cfg.
func NewAdapter(client redis.UniversalClient, cfg Config) *Adapter {
	a := &Adapter{
		db:            client,
		prefix:        cfg.KeyPrefix,
		scanBatchSize: int64(cfg.ScanBatchSize),
	}
	if a.prefix == "" {
		a.prefix = "resx"
	}
	if a.scanBatchSize <= 0 {
		a.scanBatchSize = 1000
	}
	return a
}

// HashKey returns the hash holding lang/section.
func (a *Adapter) HashKey(lang, section string) string {
	return a.prefix + ":" + lang + ":" + section
}

// parseKey splits a hash key back into language and section.
func (a *Adapter) parseKey(key string) (lang, section string, ok bool) {
	rest, found := strings.CutPrefix(key, a.prefix+":")
	if !found {
		return "", "", false
	}
	lang, section, ok = strings.Cut(rest, ":")
	if !ok || lang == "" || section == "" {
		return "", "", false
	}
	return lang, section, true
}

// Load implements i18n.TranslationAdapter.
// Keys are enumerated with SCAN so large keyspaces never block the server.
func (a *Adapter) Load(ctx context.Context) (i18n.Resources, error) {
	keys, err := a.keys(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadResources, err)
	}

	res := make(i18n.Resources)
	if len(keys) == 0 {
		return res, nil
	}

	pipe := a.db.Pipeline()
	cmds := make(map[string]*redis.MapStringStringCmd, len(keys))
	for _, key := range keys {
		cmds[key] = pipe.HGetAll(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Join(ErrFailedToLoadResources, err)
	}

	for key, cmd := range cmds {
		lang, section, _ := a.parseKey(key)
		for k, v := range cmd.Val() {
			res.Set(lang, section, k, v)
		}
	}
	return res, nil
}

func (a *Adapter) keys(ctx context.Context) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := a.db.Scan(ctx, cursor, a.prefix+":*", a.scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range batch {
			if _, _, ok := a.parseKey(key); ok {
				keys = append(keys, key)
			}
		}
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

// Store writes res into Redis, replacing each affected hash in a single transaction.
// Hashes for sections absent from res are left untouched.
func (a *Adapter) Store(ctx context.Context, res i18n.Resources) error {
	_, err := a.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for lang, sections := range res {
			for section, values := range sections {
				key := a.HashKey(lang, section)
				pipe.Del(ctx, key)
				if len(values) == 0 {
					continue
				}
				fields := make(map[string]any, len(values))
				for k, v := range values {
					fields[k] = v
				}
				pipe.HSet(ctx, key, fields)
			}
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrFailedToStoreResources, err)
	}
	return nil
}
