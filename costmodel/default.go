package costmodel

// Default is the in-process cost model the design notes call for in
// place of an embedded scripting evaluator: tag-kind equality and exact
// text equality drive miss/substitution cost, parameterized by a table
// an operator can override (typically loaded from YAML by the config
// package). It needs no external interpreter and is itself a valid,
// deterministic Model.
type Default struct {
	// Tags is the closed set of recognized tag kinds.
	Tags []string

	// MissCostBase is charged per unmapped entity, independent of tag,
	// unless overridden in MissCostByTag.
	MissCostBase float64

	// MissCostByTag overrides MissCostBase for specific tag kinds.
	MissCostByTag map[string]float64

	// SameTagSubstCost is charged when ref and hyp share a tag but the
	// text differs.
	SameTagSubstCost float64

	// DiffTagSubstCost is charged when ref and hyp tags differ, unless
	// the pair has an entry in SubstCostByTagPair.
	DiffTagSubstCost float64

	// SubstCostByTagPair overrides DiffTagSubstCost for specific
	// (ref tag, hyp tag) pairs, keyed "refTag|hypTag".
	SubstCostByTagPair map[string]float64
}

// NewDefault returns a Default model with the classic miss=1,
// same-tag-substitution=1, different-tag-substitution=1.5 weights used
// throughout spec §8's worked examples.
func NewDefault(tags []string) *Default {
	return &Default{
		Tags:             tags,
		MissCostBase:     1.0,
		SameTagSubstCost: 1.0,
		DiffTagSubstCost: 1.5,
	}
}

// AllTags implements Model.
func (d *Default) AllTags() []string { return d.Tags }

// MissCost implements Model.
func (d *Default) MissCost(v EntityView) (float64, []string, error) {
	if cost, ok := d.MissCostByTag[v.Tag]; ok {
		return cost, []string{"missing"}, nil
	}
	return d.MissCostBase, []string{"missing"}, nil
}

// SubstitutionCost implements Model.
func (d *Default) SubstitutionCost(ref, hyp EntityView) (float64, []string, error) {
	if ref.Tag != hyp.Tag {
		if cost, ok := d.SubstCostByTagPair[ref.Tag+"|"+hyp.Tag]; ok {
			return cost, []string{"tag-mismatch"}, nil
		}
		return d.DiffTagSubstCost, []string{"tag-mismatch"}, nil
	}
	if ref.Value != hyp.Value {
		return d.SameTagSubstCost, []string{"text-mismatch"}, nil
	}
	return 0, nil, nil
}
