package scan

import (
	"context"
	"reflect"
	"testing"
)

// staticClient is a minimal RegionalClient for discovery tests.
type staticClient struct {
	region string
	ops    []string
}

func (c *staticClient) Region() string { return c.region }

func (c *staticClient) Operations() []string { return c.ops }

func (c *staticClient) APIName(op string) string { return op }

func (c *staticClient) Invoke(ctx context.Context, op string, args Args) (any, error) {
	return nil, nil
}

func TestDiscoverOperations(t *testing.T) {
	client := &staticClient{ops: []string{
		"create_thing",
		"delete_thing",
		"describe_things",
		"get_thing_policy",
		"list_things",
		"update_thing",
	}}

	tests := []struct {
		name     string
		prefixes []string
		want     []string
	}{
		{
			name:     "defaults used when empty",
			prefixes: nil,
			want:     []string{"describe_things", "get_thing_policy", "list_things"},
		},
		{
			name:     "explicit prefixes",
			prefixes: []string{"list_"},
			want:     []string{"list_things"},
		},
		{
			name:     "no mutating names pass",
			prefixes: DefaultSafePrefixes,
			want:     []string{"describe_things", "get_thing_policy", "list_things"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscoverOperations(client, tt.prefixes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DiscoverOperations() = %v, want %v", got, tt.want)
			}
		})
	}
}
