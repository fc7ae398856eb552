package scan

import (
	"reflect"
	"testing"
)

func foldAll(r Report, results []ProbeResult) {
	for _, res := range results {
		r.fold(res)
	}
}

func TestReportFoldInvariant(t *testing.T) {
	r := Report{}
	foldAll(r, []ProbeResult{
		{Operation: "list_things", Region: "us-east-1", Outcome: Succeeded},
		{Operation: "list_things", Region: "us-west-2", Outcome: Failed},
		{Operation: "list_things", Region: "eu-west-1", Outcome: Errored},
	})

	agg := r["list_things"]
	if agg == nil {
		t.Fatal("missing aggregate for list_things")
	}

	union := RegionSet{}
	for region := range agg.Succeeded {
		union.Add(region)
	}
	for region := range agg.Failed {
		union.Add(region)
	}
	for region := range agg.Errored {
		union.Add(region)
	}
	if !agg.Tested.Equal(union) {
		t.Errorf("Tested %v != union of outcomes %v", agg.Tested.Sorted(), union.Sorted())
	}

	// Pairwise disjoint: each region appears in exactly one outcome set.
	for region := range agg.Tested {
		n := 0
		if agg.Succeeded.Has(region) {
			n++
		}
		if agg.Failed.Has(region) {
			n++
		}
		if agg.Errored.Has(region) {
			n++
		}
		if n != 1 {
			t.Errorf("region %s appears in %d outcome sets, want 1", region, n)
		}
	}
}

func TestReportFoldIdempotent(t *testing.T) {
	r := Report{}
	result := ProbeResult{Operation: "get_thing", Region: "us-east-1", Outcome: Succeeded}
	r.fold(result)
	r.fold(result)

	agg := r["get_thing"]
	if len(agg.Tested) != 1 || len(agg.Succeeded) != 1 {
		t.Errorf("repeated fold of the same probe must not grow the sets: %+v", agg)
	}
}

func TestReportFormat(t *testing.T) {
	r := Report{}
	foldAll(r, []ProbeResult{
		{Operation: "list_things", Region: "us-east-1", Outcome: Succeeded},
		{Operation: "list_things", Region: "us-west-2", Outcome: Succeeded},
		{Operation: "get_thing", Region: "us-east-1", Outcome: Succeeded},
		{Operation: "get_thing", Region: "us-west-2", Outcome: Failed},
		{Operation: "describe_things", Region: "us-east-1", Outcome: Errored},
		{Operation: "describe_things", Region: "us-west-2", Outcome: Errored},
	})

	got := r.Format(true)
	want := []string{
		"[+] get_thing - us-east-1",
		"[+] list_things - All Regions",
		"[-] get_thing - us-west-2",
		"[!] describe_things - All Regions",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Format(true) = %v, want %v", got, want)
	}

	got = r.Format(false)
	want = []string{
		"[+] get_thing - us-east-1",
		"[+] list_things - All Regions",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Format(false) = %v, want %v", got, want)
	}
}

// Formatting is a pure read: two calls with the same flag over the same
// report must render identical lines.
func TestReportFormatRepeatable(t *testing.T) {
	r := Report{}
	foldAll(r, []ProbeResult{
		{Operation: "list_things", Region: "us-east-1", Outcome: Succeeded},
		{Operation: "get_thing", Region: "us-east-1", Outcome: Failed},
		{Operation: "describe_things", Region: "us-west-2", Outcome: Errored},
	})

	for _, verbose := range []bool{true, false} {
		first := r.Format(verbose)
		second := r.Format(verbose)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Format(%v) differs between calls: %v vs %v", verbose, first, second)
		}
	}
}

func TestReportFormatEmpty(t *testing.T) {
	r := Report{}
	if lines := r.Format(true); len(lines) != 0 {
		t.Errorf("empty report must format to no lines, got %v", lines)
	}
}
