package tenant

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Resolver selects exactly one client record for a request. The database
// (through the cache) is consulted first; the environment source is the
// fallback when the database yields nothing usable.
type Resolver struct {
	cache  *Cache // nil when no database is configured
	lookup func(string) string
	logger *slog.Logger
}

// NewResolver wires a resolver. cache may be nil (env-only deployments);
// lookup defaults to os.Getenv.
func NewResolver(cache *Cache, lookup func(string) string, logger *slog.Logger) *Resolver {
	if lookup == nil {
		lookup = os.Getenv
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{cache: cache, lookup: lookup, logger: logger}
}

// Resolve picks one client for the given identifier. An empty identifier
// selects the first database client (name order) or the default env client.
// A non-empty identifier is matched against, in order: database ID,
// case-insensitive database name, database site domain; then env client ID,
// then env site domain (fuzzily). When nothing matches, the returned
// *NotFoundError enumerates every known client.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*Record, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		// ACTIVE_CLIENT pins the default selection for deployments that
		// serve one primary site out of many configured ones.
		identifier = strings.TrimSpace(r.lookup("ACTIVE_CLIENT"))
	}

	dbRecords := r.databaseRecords(ctx)
	if len(dbRecords) > 0 {
		if identifier == "" {
			rec := dbRecords[0]
			return &rec, nil
		}
		if rec := matchDatabase(dbRecords, identifier); rec != nil {
			r.logger.Debug("client resolved from database",
				slog.String("identifier", identifier),
				slog.String("client", rec.Label()))
			return rec, nil
		}
		// Not in the database; the env source may still know it.
	}

	envRecords := EnvTenants(r.lookup)
	if identifier == "" || strings.EqualFold(identifier, DefaultClientID) {
		if rec := defaultEnvRecord(envRecords); rec != nil {
			return rec, nil
		}
	} else {
		if rec, rule := matchEnv(envRecords, identifier); rec != nil {
			r.logger.Debug("client resolved from environment",
				slog.String("identifier", identifier),
				slog.String("client", rec.ID),
				slog.String("rule", rule))
			return rec, nil
		}
	}

	// Both sources were live candidates in this resolution, so the error
	// enumerates both.
	known := append(append([]Record(nil), dbRecords...), envRecords...)
	return nil, &NotFoundError{Identifier: identifier, Known: known}
}

// Known lists all currently visible clients: the database list when it
// resolves, the environment list otherwise.
func (r *Resolver) Known(ctx context.Context) []Record {
	if records := r.databaseRecords(ctx); len(records) > 0 {
		return records
	}
	return EnvTenants(r.lookup)
}

// DetectByURL returns the ID of the first known client whose normalized
// domain is a substring of, or contains, the target's domain. Multi-match
// ambiguity resolves by list order; this is a documented precision limit.
func (r *Resolver) DetectByURL(ctx context.Context, urlLike string) string {
	target := NormalizeDomain(urlLike)
	if target == "" {
		return ""
	}
	for _, rec := range r.Known(ctx) {
		d := rec.Domain()
		if d == "" {
			continue
		}
		if strings.Contains(d, target) || strings.Contains(target, d) {
			return rec.ID
		}
	}
	return ""
}

// Invalidate drops the cached database list. No-op without a database.
func (r *Resolver) Invalidate() {
	if r.cache != nil {
		r.cache.Invalidate()
	}
}

func (r *Resolver) databaseRecords(ctx context.Context) []Record {
	if r.cache == nil {
		return nil
	}
	records, err := r.cache.Get(ctx)
	if err != nil {
		r.logger.Warn("client list refresh failed, falling back to environment",
			slog.String("error", err.Error()))
		return nil
	}
	return records
}

func matchDatabase(records []Record, identifier string) *Record {
	idDomain := NormalizeDomain(identifier)
	for i := range records {
		rec := &records[i]
		if identifier == rec.ID {
			return rec
		}
		if strings.EqualFold(identifier, rec.Name) {
			return rec
		}
		if idDomain != "" && idDomain == rec.Domain() {
			return rec
		}
	}
	return nil
}

func defaultEnvRecord(records []Record) *Record {
	for i := range records {
		if records[i].ID == DefaultClientID {
			return &records[i]
		}
	}
	if len(records) > 0 {
		return &records[0]
	}
	return nil
}

// matchEnv tries an exact numbered-ID match ("client5") before the fuzzy
// domain rules. It also reports which rule fired, for observability.
func matchEnv(records []Record, identifier string) (*Record, string) {
	for i := range records {
		if strings.EqualFold(identifier, records[i].ID) {
			return &records[i], "exact-id"
		}
	}
	candidate := NormalizeDomain(identifier)
	for i := range records {
		if domainsRelated(candidate, records[i].Domain()) {
			return &records[i], "fuzzy-domain"
		}
	}
	return nil, ""
}
