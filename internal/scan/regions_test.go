package scan

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveRegions(t *testing.T) {
	available := []string{"us-east-1", "us-west-2", "eu-west-1", GlobalRegion}

	tests := []struct {
		name      string
		available []string
		filters   []string
		want      []string
	}{
		{
			name:      "no available collapses to global",
			available: nil,
			filters:   []string{"us-east"},
			want:      []string{GlobalRegion},
		},
		{
			name:      "no filters keeps everything",
			available: available,
			filters:   nil,
			want:      available,
		},
		{
			name:      "substring filter",
			available: available,
			filters:   []string{"us-"},
			want:      []string{"us-east-1", "us-west-2", GlobalRegion},
		},
		{
			name:      "multiple filters union",
			available: available,
			filters:   []string{"us-east", "eu-"},
			want:      []string{"us-east-1", "eu-west-1", GlobalRegion},
		},
		{
			name:      "global survives any filter",
			available: []string{GlobalRegion},
			filters:   []string{"ap-southeast"},
			want:      []string{GlobalRegion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRegions("ec2", tt.available, tt.filters)
			if err != nil {
				t.Fatalf("ResolveRegions() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveRegions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveRegionsNoMatch(t *testing.T) {
	_, err := ResolveRegions("rds", []string{"us-east-1", "us-west-2"}, []string{"mars-"})
	if err == nil {
		t.Fatal("expected error for filters excluding every region")
	}

	var invalid *InvalidRegionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidRegionError, got %T", err)
	}
	if invalid.Service != "rds" {
		t.Errorf("Service = %q, want %q", invalid.Service, "rds")
	}
}
