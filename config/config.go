// Package config loads the optional YAML cost table that parameterizes
// the built-in cost model (spec's "descr" input, replaced in this
// rendition with a declarative YAML file instead of an embedded
// scripting language — see the engine design notes on why no
// scripting-language details belong in the engine). An empty path means
// defaults, following ehrlich-b-wingthing's internal/config; a path that
// cannot be read is an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nescoring/nescore/costmodel"
)

// CostTable is the on-disk shape of a cost description file.
type CostTable struct {
	MissCost           float64            `yaml:"miss_cost"`
	MissCostByTag      map[string]float64 `yaml:"miss_cost_by_tag"`
	SameTagSubstCost   float64            `yaml:"same_tag_subst_cost"`
	DiffTagSubstCost   float64            `yaml:"diff_tag_subst_cost"`
	SubstCostByTagPair map[string]float64 `yaml:"subst_cost_by_tag_pair"`
}

// Load reads a CostTable from path. An empty path returns a zero-value
// table (the caller falls back to costmodel.NewDefault's built-in
// constants); a non-existent path is an error, since the CLI only calls
// Load when the user passed a non-empty descr argument.
func Load(path string) (CostTable, error) {
	var t CostTable
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("config: read cost table: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("config: parse cost table: %w", err)
	}
	return t, nil
}

// BuildModel constructs a costmodel.Default for tags, applying any
// non-zero overrides in t over the built-in defaults.
func BuildModel(tags []string, t CostTable) *costmodel.Default {
	d := costmodel.NewDefault(tags)
	if t.MissCost != 0 {
		d.MissCostBase = t.MissCost
	}
	if t.SameTagSubstCost != 0 {
		d.SameTagSubstCost = t.SameTagSubstCost
	}
	if t.DiffTagSubstCost != 0 {
		d.DiffTagSubstCost = t.DiffTagSubstCost
	}
	if len(t.MissCostByTag) > 0 {
		d.MissCostByTag = t.MissCostByTag
	}
	if len(t.SubstCostByTagPair) > 0 {
		d.SubstCostByTagPair = t.SubstCostByTagPair
	}
	return d
}
