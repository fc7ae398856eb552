package aws

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/privsweep/privsweep/internal/scan"
)

func TestSupportedServices(t *testing.T) {
	services := SupportedServices()
	if len(services) == 0 {
		t.Fatal("catalog is empty")
	}
	if !sort.StringsAreSorted(services) {
		t.Errorf("services not sorted: %v", services)
	}
	for _, want := range []string{"s3", "iam", "ec2", "sts"} {
		found := false
		for _, name := range services {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("catalog missing %s", want)
		}
	}
}

func TestIsGlobal(t *testing.T) {
	tests := []struct {
		service string
		want    bool
	}{
		{"iam", true},
		{"sts", true},
		{"route53", true},
		{"ce", true},
		{"pricing", true},
		{"ec2", false},
		{"s3", false},
		{"dynamodb", false},
	}
	for _, tt := range tests {
		if got := IsGlobal(tt.service); got != tt.want {
			t.Errorf("IsGlobal(%q) = %v, want %v", tt.service, got, tt.want)
		}
	}
}

func TestPartitionRegionsCopy(t *testing.T) {
	a := PartitionRegions()
	b := PartitionRegions()
	a[0] = "mutated"
	if b[0] == "mutated" {
		t.Error("PartitionRegions must return a copy")
	}
}

// Every registry entry must build an operation set whose names pass the
// safe-prefix filter and carry a canonical API name.
func TestRegistryOperationTables(t *testing.T) {
	cfg := awssdk.Config{Region: "us-east-1"}

	for name, def := range serviceRegistry {
		ops := def.build(cfg)
		if len(ops) == 0 {
			t.Errorf("%s has no operations", name)
		}
		for opName, entry := range ops {
			safe := false
			for _, prefix := range []string{"get_", "list_", "describe_"} {
				if strings.HasPrefix(opName, prefix) {
					safe = true
					break
				}
			}
			if !safe {
				t.Errorf("%s.%s does not match a read-only prefix", name, opName)
			}
			if entry.APIName == "" {
				t.Errorf("%s.%s has no canonical API name", name, opName)
			}
			if entry.Invoke == nil {
				t.Errorf("%s.%s has no dispatch closure", name, opName)
			}
		}
	}
}

func TestClientOperationsSorted(t *testing.T) {
	cfg := awssdk.Config{Region: "us-east-1"}
	client := &Client{service: "s3", region: "us-east-1", ops: serviceRegistry["s3"].build(cfg)}

	ops := client.Operations()
	if !sort.StringsAreSorted(ops) {
		t.Errorf("Operations() not sorted: %v", ops)
	}
	if got := client.APIName("list_buckets"); got != "ListBuckets" {
		t.Errorf("APIName(list_buckets) = %q, want ListBuckets", got)
	}
	if got := client.APIName("no_such_op"); got != "" {
		t.Errorf("APIName for unknown operation = %q, want empty", got)
	}
}

func TestClientInvokeUnknownOperation(t *testing.T) {
	client := &Client{service: "s3", region: "us-east-1", ops: opSet{}}
	_, err := client.Invoke(context.Background(), "get_thing", scan.Args{})
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

// Operations with required arguments must classify as Errored, not panic or
// hit the network, when no override supplies the value.
func TestRequiredArgumentsMissing(t *testing.T) {
	cfg := awssdk.Config{Region: "us-east-1"}

	tests := []struct {
		service   string
		operation string
	}{
		{"s3", "get_bucket_acl"},
		{"lambda", "get_function"},
		{"dynamodb", "describe_table"},
		{"eks", "describe_cluster"},
		{"wafv2", "list_web_acls"},
	}

	for _, tt := range tests {
		t.Run(tt.service+"/"+tt.operation, func(t *testing.T) {
			ops := serviceRegistry[tt.service].build(cfg)
			entry, ok := ops[tt.operation]
			if !ok {
				t.Fatalf("%s has no operation %s", tt.service, tt.operation)
			}
			_, err := entry.Invoke(context.Background(), scan.Args{})
			var missing *scan.MissingArgsError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *scan.MissingArgsError, got %v", err)
			}
		})
	}
}
