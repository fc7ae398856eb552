package scan

import "strings"

// DefaultSafePrefixes are the operation name prefixes assumed to be free of
// side effects. This is a naming-convention filter, not a semantic guarantee:
// an operation matching a prefix is trusted to be read-only.
var DefaultSafePrefixes = []string{"get_", "list_", "describe_"}

// DiscoverOperations lists the client's operations and keeps those matching
// one of the safe prefixes. Discovery runs once per service scan; all of a
// service's regional clients expose the same operation set.
func DiscoverOperations(client RegionalClient, safePrefixes []string) []string {
	if len(safePrefixes) == 0 {
		safePrefixes = DefaultSafePrefixes
	}
	var safe []string
	for _, op := range client.Operations() {
		for _, prefix := range safePrefixes {
			if strings.HasPrefix(op, prefix) {
				safe = append(safe, op)
				break
			}
		}
	}
	return safe
}
