// Package scan implements the permission scan engine: operation discovery,
// bounded concurrent probing across regions, outcome classification, and
// per-operation aggregation.
package scan

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Outcome is the classification of a single probe.
type Outcome int

const (
	// Succeeded means the call passed the authorization check, whether or not
	// it completed (a post-auth business error still proves the permission).
	Succeeded Outcome = iota
	// Failed means the provider denied the call at the authorization layer.
	Failed
	// Errored means the call never reached the authorization check, typically
	// because required arguments were missing.
	Errored
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// Marker returns the report marker for the outcome.
func (o Outcome) Marker() string {
	switch o {
	case Succeeded:
		return "+"
	case Failed:
		return "-"
	default:
		return "!"
	}
}

// Args carries the injected arguments for one operation invocation.
type Args struct {
	Positional []any
	Keyword    map[string]any

	// next is the index of the first unconsumed positional value.
	next int
}

// String resolves a required keyword argument, falling back to the next
// unconsumed positional value. Each positional fallback is consumed, so an
// operation with several required arguments draws a distinct value per key.
// A missing or mistyped argument yields a *MissingArgsError so the probe
// classifies as Errored rather than crashing.
func (a *Args) String(key string) (string, error) {
	if v, ok := a.Keyword[key]; ok {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", &MissingArgsError{Key: key, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	if a.next < len(a.Positional) {
		if s, ok := a.Positional[a.next].(string); ok {
			a.next++
			return s, nil
		}
	}
	return "", &MissingArgsError{Key: key, Reason: "no injected value"}
}

// StringOr resolves an optional keyword argument. It never consumes
// positional values.
func (a *Args) StringOr(key, def string) string {
	if v, ok := a.Keyword[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// ProbeResult is the immutable record of one (operation, region) invocation.
type ProbeResult struct {
	Operation string
	Region    string
	Outcome   Outcome
	// Response holds the raw provider response on a clean success.
	Response any
	// Err holds the raw provider error, kept as context even when the
	// outcome is Succeeded (post-auth failure).
	Err error
	// ErrorCode is the structured provider error code, when one was present.
	ErrorCode string
}

// MissingArgsError reports that an operation was invoked without an argument
// it requires. It is an Errored signal, never a run failure.
type MissingArgsError struct {
	Key    string
	Reason string
}

func (e *MissingArgsError) Error() string {
	return fmt.Sprintf("missing required argument %q: %s", e.Key, e.Reason)
}

// InvalidRegionError reports that a region filter excluded every region the
// service is available in. Fatal to that service's scan only.
type InvalidRegionError struct {
	Service string
	Filters []string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("invalid region filter for %s service: [%s]",
		e.Service, strings.Join(e.Filters, ", "))
}

// Session is the provider session collaborator. Implementations bind a
// validated credential and hand out regional clients.
type Session interface {
	// AvailableServices lists the provider services the session can construct
	// clients for.
	AvailableServices() []string
	// AvailableRegions lists the regions a service is deployed in, in the
	// provider's canonical order. Empty for zone-independent services.
	AvailableRegions(service string) []string
	// NewClient binds a client to one service in one region. Connection
	// timeout and retry budget are session-level configuration.
	NewClient(ctx context.Context, service, region string) (RegionalClient, error)
}

// RegionalClient is one service binding in one region. A client is owned by
// the Service that created it and is only invoked from that scan's probes.
type RegionalClient interface {
	// Region returns the bound region identifier.
	Region() string
	// Operations lists every operation name the binding exposes, in
	// snake_case naming convention.
	Operations() []string
	// APIName maps an operation name to the provider's canonical API name.
	APIName(operation string) string
	// Invoke calls the named operation with injected arguments.
	Invoke(ctx context.Context, operation string, args Args) (any, error)
}

// RegionSet is an unordered set of region names.
type RegionSet map[string]struct{}

// Add inserts a region.
func (rs RegionSet) Add(region string) { rs[region] = struct{}{} }

// Has reports membership.
func (rs RegionSet) Has(region string) bool {
	_, ok := rs[region]
	return ok
}

// Equal reports whether both sets hold the same regions.
func (rs RegionSet) Equal(other RegionSet) bool {
	if len(rs) != len(other) {
		return false
	}
	for r := range rs {
		if !other.Has(r) {
			return false
		}
	}
	return true
}

// Sorted returns the regions in lexical order.
func (rs RegionSet) Sorted() []string {
	out := make([]string, 0, len(rs))
	for r := range rs {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
