// Package yaml loads the site filter configuration: a mapping from article
// host to the extraction rule the content engine applies for that host.
package yaml

import (
	"os"

	"github.com/user/hnfeed"
	"gopkg.in/yaml.v3"
)

// objectRule is the object form of a filter rule, selecting the children
// of the matched element.
type objectRule struct {
	Selector string `yaml:"selector"`
}

// LoadFilters reads the filter configuration file and returns the
// registry. The file maps each host to either an ordered list of selector
// strings or an object form {selector: <string>}:
//
//	example.com:
//	  - "article .lead"
//	  - "article .body"
//	blog.example.org:
//	  selector: "#content"
func LoadFilters(path string) (*hnfeed.FilterRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hnfeed.Errorf(hnfeed.ENOTFOUND, "read filter config %q: %v", path, err)
	}
	return ParseFilters(data)
}

// ParseFilters parses filter configuration bytes into a registry.
func ParseFilters(data []byte) (*hnfeed.FilterRegistry, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, hnfeed.Errorf(hnfeed.EINVALID, "invalid filter config: %v", err)
	}

	rules := make(map[string]hnfeed.FilterRule, len(raw))
	for host, node := range raw {
		rule, err := decodeRule(host, node)
		if err != nil {
			return nil, err
		}
		rules[host] = rule
	}

	return hnfeed.NewFilterRegistry(rules), nil
}

// decodeRule decodes the union rule form for one host.
func decodeRule(host string, node yaml.Node) (hnfeed.FilterRule, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var selectors []string
		if err := node.Decode(&selectors); err != nil {
			return hnfeed.FilterRule{}, hnfeed.Errorf(hnfeed.EINVALID, "host %q: selector list: %v", host, err)
		}
		if len(selectors) == 0 {
			return hnfeed.FilterRule{}, hnfeed.Errorf(hnfeed.EINVALID, "host %q: selector list is empty", host)
		}
		return hnfeed.FilterRule{Selectors: selectors}, nil

	case yaml.MappingNode:
		var obj objectRule
		if err := node.Decode(&obj); err != nil {
			return hnfeed.FilterRule{}, hnfeed.Errorf(hnfeed.EINVALID, "host %q: selector object: %v", host, err)
		}
		if obj.Selector == "" {
			return hnfeed.FilterRule{}, hnfeed.Errorf(hnfeed.EINVALID, "host %q: selector object requires a selector", host)
		}
		return hnfeed.FilterRule{ChildrenOf: obj.Selector}, nil

	default:
		return hnfeed.FilterRule{}, hnfeed.Errorf(hnfeed.EINVALID, "host %q: rule must be a selector list or {selector: ...}", host)
	}
}
