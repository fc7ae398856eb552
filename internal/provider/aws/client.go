package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/privsweep/privsweep/internal/scan"
)

// Operation is one invokable read-only call: the provider's canonical API
// name plus a closure that builds the typed request from injected arguments.
// The closure returns *scan.MissingArgsError when a required argument has no
// override, so the probe classifies as Errored instead of guessing at input.
type Operation struct {
	APIName string
	Invoke  func(ctx context.Context, args scan.Args) (any, error)
}

func op(apiName string, invoke func(ctx context.Context, args scan.Args) (any, error)) Operation {
	return Operation{APIName: apiName, Invoke: invoke}
}

// opSet maps snake_case operation names to their dispatch entries.
type opSet map[string]Operation

// Client binds one service's operation set to one region. It is exclusively
// owned by the scan that created it and immutable for its lifetime.
type Client struct {
	service string
	region  string
	ops     opSet
}

// Region returns the bound region identifier, which may be the global
// pseudo-region.
func (c *Client) Region() string { return c.region }

// Operations lists the binding's operation names in lexical order.
func (c *Client) Operations() []string {
	names := make([]string, 0, len(c.ops))
	for name := range c.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// APIName maps an operation name to the canonical AWS API name, or "" when
// the operation is unknown.
func (c *Client) APIName(operation string) string {
	return c.ops[operation].APIName
}

// Invoke dispatches the named operation with the injected arguments.
func (c *Client) Invoke(ctx context.Context, operation string, args scan.Args) (any, error) {
	entry, ok := c.ops[operation]
	if !ok {
		return nil, fmt.Errorf("%s has no operation %q", c.service, operation)
	}
	return entry.Invoke(ctx, args)
}
