package hnfeed

// FilterRule tells the content extraction engine which DOM nodes constitute
// the article body for a given host, bypassing generic extraction.
// Exactly one of the two forms is set: Selectors selects matching elements
// directly; ChildrenOf selects the children of the matched element.
type FilterRule struct {
	Selectors  []string
	ChildrenOf string
}

// FilterRegistry is a read-only mapping from site host to its extraction
// rule. It is loaded once at process start and shared by all extraction
// calls, so it requires no synchronization.
type FilterRegistry struct {
	rules map[string]FilterRule
}

// NewFilterRegistry creates a registry from a host-to-rule mapping.
// The mapping is copied; later mutation of rules has no effect.
func NewFilterRegistry(rules map[string]FilterRule) *FilterRegistry {
	copied := make(map[string]FilterRule, len(rules))
	for host, rule := range rules {
		copied[host] = rule
	}
	return &FilterRegistry{rules: copied}
}

// Lookup returns the rule for a host and whether one is configured.
func (r *FilterRegistry) Lookup(host string) (FilterRule, bool) {
	rule, ok := r.rules[host]
	return rule, ok
}

// Hosts returns all hosts with a configured rule.
func (r *FilterRegistry) Hosts() []string {
	hosts := make([]string, 0, len(r.rules))
	for host := range r.rules {
		hosts = append(hosts, host)
	}
	return hosts
}
