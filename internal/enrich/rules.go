// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// rulesFile is the on-disk representation of a tag-rule override file.
type rulesFile struct {
	Tags []TagRule `yaml:"tags"`
}

// LoadTagRules reads a YAML tag-rule file. Each entry needs a tag name
// and at least one keyword. The returned rules replace the built-in
// table wholesale; rule order in the file is the match-priority order.
func LoadTagRules(path string) ([]TagRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if len(rf.Tags) == 0 {
		return nil, fmt.Errorf("rules file %s defines no tags", path)
	}

	for i, rule := range rf.Tags {
		if rule.Tag == "" {
			return nil, fmt.Errorf("rules file %s: entry %d has no tag name", path, i+1)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: tag %q has no keywords", path, rule.Tag)
		}
	}

	return rf.Tags, nil
}
