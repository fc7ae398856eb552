package scan

import (
	"fmt"
	"sort"
	"strings"
)

// OperationAggregate folds all of one operation's probes across a service's
// regions. Invariant: Tested is the union of the three outcome sets, and the
// outcome sets are pairwise disjoint (each (operation, region) probe lands
// in exactly one).
type OperationAggregate struct {
	Name      string
	Tested    RegionSet
	Succeeded RegionSet
	Failed    RegionSet
	Errored   RegionSet
}

func newOperationAggregate(name string) *OperationAggregate {
	return &OperationAggregate{
		Name:      name,
		Tested:    RegionSet{},
		Succeeded: RegionSet{},
		Failed:    RegionSet{},
		Errored:   RegionSet{},
	}
}

// Report maps operation name to its aggregate for one service scan. It lives
// only for the run; nothing is persisted.
type Report map[string]*OperationAggregate

func (r Report) fold(result ProbeResult) {
	agg, ok := r[result.Operation]
	if !ok {
		agg = newOperationAggregate(result.Operation)
		r[result.Operation] = agg
	}
	agg.Tested.Add(result.Region)
	switch result.Outcome {
	case Succeeded:
		agg.Succeeded.Add(result.Region)
	case Failed:
		agg.Failed.Add(result.Region)
	case Errored:
		agg.Errored.Add(result.Region)
	}
}

// Format renders the report as one line per non-empty (operation, outcome)
// pair. Success lines always; failed and errored lines only when
// includeNonSuccesses is set. Lines are sorted lexically within each marker
// group, and a set covering every tested region folds to "All Regions".
func (r Report) Format(includeNonSuccesses bool) []string {
	var successes, fails, errs []string

	for _, agg := range r {
		if line, ok := formatLine(Succeeded.Marker(), agg.Name, agg.Succeeded, agg.Tested); ok {
			successes = append(successes, line)
		}
		if !includeNonSuccesses {
			continue
		}
		if line, ok := formatLine(Failed.Marker(), agg.Name, agg.Failed, agg.Tested); ok {
			fails = append(fails, line)
		}
		if line, ok := formatLine(Errored.Marker(), agg.Name, agg.Errored, agg.Tested); ok {
			errs = append(errs, line)
		}
	}

	sort.Strings(successes)
	sort.Strings(fails)
	sort.Strings(errs)

	out := make([]string, 0, len(successes)+len(fails)+len(errs))
	out = append(out, successes...)
	out = append(out, fails...)
	out = append(out, errs...)
	return out
}

func formatLine(marker, operation string, regions, tested RegionSet) (string, bool) {
	if len(regions) == 0 {
		return "", false
	}
	if regions.Equal(tested) {
		return fmt.Sprintf("[%s] %s - All Regions", marker, operation), true
	}
	return fmt.Sprintf("[%s] %s - %s", marker, operation, strings.Join(regions.Sorted(), ",")), true
}
