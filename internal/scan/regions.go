package scan

import "strings"

// GlobalRegion is the pseudo-region used for zone-independent services.
const GlobalRegion = "aws-global"

// ResolveRegions computes the set of regions to test for a service.
//
// An empty available set collapses to the global pseudo-region. Filters are
// plain substring tests against the region name; the global pseudo-region is
// always kept in scope so zone-independent endpoints are never filtered away.
// A non-empty filter list that excludes every region is an
// *InvalidRegionError, which aborts that service's scan only.
func ResolveRegions(service string, available, filters []string) ([]string, error) {
	if len(available) == 0 {
		return []string{GlobalRegion}, nil
	}
	if len(filters) == 0 {
		return available, nil
	}

	var matched []string
	for _, region := range available {
		if region == GlobalRegion {
			matched = append(matched, region)
			continue
		}
		for _, f := range filters {
			if strings.Contains(region, f) {
				matched = append(matched, region)
				break
			}
		}
	}

	if len(matched) == 0 {
		return nil, &InvalidRegionError{Service: service, Filters: filters}
	}
	return matched, nil
}
