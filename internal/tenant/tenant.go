// Package tenant resolves which WordPress site a request should act on.
//
// Tenant records come from two sources: a Postgres clients table (cached with
// a TTL) and numbered environment-variable groups. The resolver tries the
// database first and falls back to the environment; see Resolver.Resolve for
// the precedence rules.
package tenant

import (
	"fmt"
	"strings"
)

// Source tags where a record came from. Diagnostic only.
const (
	SourceDatabase = "database"
	SourceEnv      = "env"
)

// Record is one managed WordPress site plus its credentials.
type Record struct {
	ID          string
	Name        string
	BaseURL     string
	Username    string
	AppPassword string
	WCKey       string
	WCSecret    string
	Status      string
	Source      string
}

// Validate reports whether the record carries everything needed to issue an
// authenticated WordPress call. A record failing validation must never be
// used to build requests.
func (r *Record) Validate() error {
	var missing []string
	if r.BaseURL == "" {
		missing = append(missing, "base URL")
	}
	if r.Username == "" {
		missing = append(missing, "username")
	}
	if r.AppPassword == "" {
		missing = append(missing, "application password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("client %q is missing %s", r.Label(), strings.Join(missing, ", "))
	}
	return nil
}

// HasWooCommerce reports whether WooCommerce consumer credentials are present.
func (r *Record) HasWooCommerce() bool {
	return r.WCKey != "" && r.WCSecret != ""
}

// Label returns the best human identifier available for logs and errors.
func (r *Record) Label() string {
	if r.ID != "" {
		return r.ID
	}
	if r.Name != "" {
		return r.Name
	}
	return r.BaseURL
}

// Domain returns the normalized domain of the record's base URL.
func (r *Record) Domain() string {
	return NormalizeDomain(r.BaseURL)
}

// NotFoundError is returned when an explicit identifier matches no known
// tenant. The message enumerates every known alternative so a wrong
// identifier never silently falls back to another site.
type NotFoundError struct {
	Identifier string
	Known      []Record
}

func (e *NotFoundError) Error() string {
	var known []string
	for _, r := range e.Known {
		known = append(known, fmt.Sprintf("%s (%s)", r.Label(), r.Domain()))
	}
	if len(known) == 0 {
		return fmt.Sprintf("client %q not found: no clients are configured", e.Identifier)
	}
	return fmt.Sprintf(
		"client %q not found. Known clients: %s. Pass a client ID, name, or site domain.",
		e.Identifier, strings.Join(known, ", "),
	)
}
