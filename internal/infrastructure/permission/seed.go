package permission

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed policies.yaml
var defaultPolicies []byte

type policyFile struct {
	Roles map[string][]struct {
		Resource string   `yaml:"resource"`
		Actions  []string `yaml:"actions"`
	} `yaml:"roles"`
}

// ParsePolicies flattens a policies document into (role, resource, action) rows.
func ParsePolicies(data []byte) ([][]string, error) {
	var doc policyFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse policies: %w", err)
	}

	var rows [][]string
	for role, grants := range doc.Roles {
		for _, g := range grants {
			for _, action := range g.Actions {
				rows = append(rows, []string{role, g.Resource, action})
			}
		}
	}
	return rows, nil
}

// DefaultPolicies returns the embedded role seed.
func DefaultPolicies() ([][]string, error) {
	return ParsePolicies(defaultPolicies)
}
