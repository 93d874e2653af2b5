package entity

// Store owns every reference and hypothesis entity for one scoring run.
type Store struct {
	entities []Entity
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns a pointer into the Store's backing slice for id. The
// pointer is valid only until the next call that grows the Store
// (BuildFromEvents or BuildFromAref); callers that need a stable handle across
// construction should keep the ID, not the pointer.
func (s *Store) Get(id ID) *Entity {
	return &s.entities[id]
}

// Len returns the number of entities in the Store.
func (s *Store) Len() int {
	return len(s.entities)
}

// All returns every entity ID in the Store, in construction order.
func (s *Store) All() []ID {
	out := make([]ID, len(s.entities))
	for i := range s.entities {
		out[i] = ID(i)
	}
	return out
}

// BySide returns every entity ID of the given side, in construction order.
func (s *Store) BySide(side Side) []ID {
	var out []ID
	for i := range s.entities {
		if s.entities[i].Side == side {
			out = append(out, ID(i))
		}
	}
	return out
}

// OpenTag is one opening or closing tag event from the embedded-XML
// tokenizer, in document order.
type OpenTag struct {
	TagID   int
	Closing bool
	Pos     int
	Line    int
	Col     int
	Attrs   []KV
}

// BuildFromEvents constructs entities for one side from a stream of
// embedded-XML tag events, matching opening/closing tags with an
// explicit stack (grounded on build_entities_from_tags for the
// simple_tag variant in the original implementation).
func (s *Store) BuildFromEvents(events []OpenTag, side Side) error {
	var stack []ID

	for _, ev := range events {
		if ev.Closing {
			if len(stack) == 0 {
				return ErrUnmatchedClosing
			}
			topID := stack[len(stack)-1]
			top := &s.entities[topID]
			if top.Tag != ev.TagID {
				return ErrTagMismatch
			}
			top.Ends = append(top.Ends, ev.Pos)
			stack = stack[:len(stack)-1]
			continue
		}

		id := ID(len(s.entities))
		s.entities = append(s.entities, Entity{
			ID:             id,
			Tag:            ev.TagID,
			Side:           side,
			Depth:          len(stack),
			Line:           ev.Line,
			Col:            ev.Col,
			Attrs:          ev.Attrs,
			Parent:         NoID,
			LeftConstraint: NoID,
		})
		if len(stack) > 0 {
			s.entities[id].Parent = stack[len(stack)-1]
		}
		s.entities[id].Starts = append(s.entities[id].Starts, ev.Pos)
		stack = append(stack, id)
	}

	if len(stack) != 0 {
		return ErrUnmatchedOpening
	}

	// left_constraint: the previous sibling under the same parent,
	// tracked per depth the way build_entities_from_tags does for aref;
	// for the embedded format this is derived after the fact since
	// siblings close before being known at push time.
	s.assignLeftConstraints(side)

	return nil
}

// assignLeftConstraints fills LeftConstraint for every entity of side by
// scanning in ID order and remembering, per (parent, depth), the most
// recently completed sibling.
func (s *Store) assignLeftConstraints(side Side) {
	lastSiblingAtDepth := map[ID]ID{} // parent -> last child ID seen so far, keyed per parent (NoID included)
	for i := range s.entities {
		e := &s.entities[i]
		if e.Side != side {
			continue
		}
		if prev, ok := lastSiblingAtDepth[e.Parent]; ok {
			e.LeftConstraint = prev
		}
		lastSiblingAtDepth[e.Parent] = e.ID
	}
}

// ArefMarker is one self-closing <annotation .../> marker.
type ArefMarker struct {
	EntityID int // groups markers belonging to the same entity
	TagID    int
	Pos      int
	Opening  bool // ftype contributes a start
	Closing  bool // ftype contributes an end
	Depth    int
	Parent   int // -1 means no parent
	Line     int
	Col      int
	Attrs    []KV
}

// BuildFromAref constructs entities for one side from aref markers,
// grouping by marker.EntityID (grounded on the aref_tag variant of
// build_entities_from_tags). Repeated opening or closing markers for the
// same entity id are appended as alternative boundaries rather than
// rejected — this is how aref encodes multiple candidate start/end
// offsets for one entity. A duplicate ftype attribute within a single
// marker is a separate, malformed-input concern handled by the
// tokenizer before markers ever reach here.
func (s *Store) BuildFromAref(markers []ArefMarker, side Side) error {
	maxID := -1
	for _, m := range markers {
		if m.EntityID > maxID {
			maxID = m.EntityID
		}
	}
	if maxID < 0 {
		return nil
	}

	base := ID(len(s.entities))
	s.entities = append(s.entities, make([]Entity, maxID+1)...)
	initialized := make([]bool, maxID+1)

	entityPerDepth := map[int]int{} // depth -> local entity id (within this call), for left_constraint
	entityParentPerDepth := map[int]int{}

	for _, m := range markers {
		localID := m.EntityID
		globalID := base + ID(localID)
		e := &s.entities[globalID]

		if !initialized[localID] {
			e.ID = globalID
			e.Tag = m.TagID
			e.Side = side
			e.Depth = m.Depth
			e.Line = m.Line
			e.Col = m.Col
			e.Attrs = m.Attrs
			if m.Parent == -1 {
				e.Parent = NoID
			} else {
				e.Parent = base + ID(m.Parent)
			}
			if prevLocal, ok := entityPerDepth[m.Depth]; ok && entityParentPerDepth[m.Depth] == m.Parent {
				e.LeftConstraint = base + ID(prevLocal)
			} else {
				e.LeftConstraint = NoID
			}
			entityPerDepth[m.Depth] = localID
			entityParentPerDepth[m.Depth] = m.Parent
			initialized[localID] = true
		}

		if m.Opening {
			e.Starts = append(e.Starts, m.Pos)
		}
		if m.Closing {
			e.Ends = append(e.Ends, m.Pos)
		}
	}

	return nil
}
