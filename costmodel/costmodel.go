// Package costmodel defines the pluggable cost-model contract from spec
// §4.2 and §6, plus a built-in default implementation. The engine treats
// a Model as an external collaborator: a pure, deterministic function of
// an EntityView (or a pair of them) that must be side-effect-free with
// respect to the align package and is called at most once per cell
// (PopulateMissCosts and PopulateSubstitutionCosts cache the result on
// the entity, per spec §5).
package costmodel

import "errors"

// ErrBadCost indicates a Model returned a negative cost or otherwise
// malformed result; this maps to a fatal, exit-1 error at the CLI layer.
var ErrBadCost = errors.New("costmodel: cost model returned an invalid cost")

// EntityView exposes exactly what a cost model is allowed to see about
// an entity under one chosen boundary, mirroring the lua_pushentity
// fields (type, hyp, spos, epos, attr, value) from the original
// implementation's Lua binding.
type EntityView struct {
	Tag   string
	Hyp   bool
	Start int
	End   int
	Attr  []KV
	Value string // literal text slice, control characters escaped
}

// KV mirrors entity.KV without importing the entity package, so that
// costmodel stays a leaf dependency callers can implement against
// without pulling in the rest of the engine.
type KV struct {
	Key, Value string
}

// Model is the pluggable cost-model contract.
type Model interface {
	// AllTags returns the closed set of tag kinds this model recognizes.
	AllTags() []string

	// MissCost returns the cost of leaving v unmapped (a deletion for a
	// reference entity, an insertion for a hypothesis entity) and the
	// set of error-type labels describing why (empty means "correct",
	// which only makes sense for a substitution, never a miss).
	MissCost(v EntityView) (cost float64, errorTypes []string, err error)

	// SubstitutionCost returns the cost of pairing ref with hyp under
	// ref's chosen boundary. An empty error-type set denotes a correct
	// pairing.
	SubstitutionCost(ref, hyp EntityView) (cost float64, errorTypes []string, err error)
}
