package resolution

import (
	"context"
	"log/slog"
	"strings"
)

// remoteLookup is the remote stage contract. Nil disables remote resolution;
// codes then fall straight through to the fallback record.
type remoteLookup interface {
	Resolve(ctx context.Context, code, codeContext string) (ProductRecord, bool)
}

// Resolver runs the per-code resolution cascade: catalog, context keywords,
// code pattern, cached remote lookup, generic fallback. Every stage is a
// fallback for the one before it and the final stage cannot miss.
type Resolver struct {
	catalog  *Catalog
	patterns *PatternClassifier
	cache    *Cache
	remote   remoteLookup
	logger   *slog.Logger
}

func NewResolver(catalog *Catalog, cache *Cache, remote remoteLookup, logger *slog.Logger) *Resolver {
	return &Resolver{
		catalog:  catalog,
		patterns: NewPatternClassifier(catalog),
		cache:    cache,
		remote:   remote,
		logger:   logger,
	}
}

// Catalog returns the resolver's curated catalog.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Cache returns the resolver's remote-result cache.
func (r *Resolver) Cache() *Cache { return r.cache }

// Resolve classifies a single code. It never fails: when every lookup stage
// misses it synthesizes the generic fallback record. The catalog
// short-circuits all other stages regardless of context.
func (r *Resolver) Resolve(ctx context.Context, code, codeContext string) ProductRecord {
	code = strings.ToUpper(strings.TrimSpace(code))

	if record, ok := r.catalog.Lookup(code); ok {
		r.logger.Debug("catalog hit", slog.String("code", code))
		return record
	}
	if record, ok := ClassifyContext(codeContext); ok {
		r.logger.Debug("context keyword hit", slog.String("code", code), slog.String("context", codeContext))
		return record
	}
	if record, ok := r.patterns.Classify(code, codeContext); ok {
		r.logger.Debug("code pattern hit", slog.String("code", code))
		return record
	}
	if record, ok := r.cache.Get(code, codeContext); ok {
		r.logger.Debug("cache hit", slog.String("code", code))
		return record
	}
	if r.remote != nil && ctx.Err() == nil {
		if record, ok := r.remote.Resolve(ctx, code, codeContext); ok {
			r.cache.Put(code, codeContext, record)
			return record
		}
	}

	fallback := FallbackRecord(code)
	r.cache.Put(code, codeContext, fallback)
	r.logger.Debug("fallback record", slog.String("code", code))
	return fallback
}
