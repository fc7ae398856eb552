package scan

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var defaultOverridesDoc []byte

// OverrideRule supplies the minimum arguments an operation needs to reach the
// authorization check. Pattern is matched as a substring of the operation
// name; rules are tried in declaration order and the first match wins.
type OverrideRule struct {
	Pattern string
	Args    []any
	Kwargs  map[string]any
}

// ruleBody is the YAML payload under the pattern key.
type ruleBody struct {
	Args   []any          `yaml:"args"`
	Kwargs map[string]any `yaml:"kwargs"`
}

// UnmarshalYAML decodes the single-key mapping form:
//
//	- describe_specific:
//	    args: [x]
//	    kwargs: {Key: value}
func (r *OverrideRule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("override rule must be a single-key mapping (line %d)", node.Line)
	}
	r.Pattern = node.Content[0].Value

	var body ruleBody
	if err := node.Content[1].Decode(&body); err != nil {
		return fmt.Errorf("override rule %q: %w", r.Pattern, err)
	}
	r.Args = body.Args
	r.Kwargs = body.Kwargs
	return nil
}

// Overrides maps a service name to its ordered rule list.
type Overrides struct {
	rules map[string][]OverrideRule
}

// ParseOverrides decodes an override document.
func ParseOverrides(doc []byte) (*Overrides, error) {
	rules := map[string][]OverrideRule{}
	if err := yaml.Unmarshal(doc, &rules); err != nil {
		return nil, fmt.Errorf("parsing override document: %w", err)
	}
	return &Overrides{rules: rules}, nil
}

// DefaultOverrides returns the override rules shipped with the binary.
func DefaultOverrides() (*Overrides, error) {
	return ParseOverrides(defaultOverridesDoc)
}

// Merge applies a user-supplied document on top of this one. Precedence is
// per service key: a service present in the user document replaces the whole
// rule list for that service.
func (o *Overrides) Merge(user *Overrides) {
	if user == nil {
		return
	}
	for service, rules := range user.rules {
		o.rules[service] = rules
	}
}

// Lookup returns the injected arguments for an operation. The service's
// rules are scanned in order and the first rule whose pattern is a substring
// of the operation name supplies both its args and kwargs; later rules are
// not consulted and never merged. An empty pattern matches every operation,
// so it acts as a catch-all for the rules below it. No match yields empty
// args.
func (o *Overrides) Lookup(service, operation string) Args {
	if o == nil {
		return Args{}
	}
	for _, rule := range o.rules[service] {
		if !strings.Contains(operation, rule.Pattern) {
			continue
		}
		args := Args{Keyword: map[string]any{}}
		args.Positional = append(args.Positional, rule.Args...)
		for k, v := range rule.Kwargs {
			args.Keyword[k] = v
		}
		return args
	}
	return Args{}
}
