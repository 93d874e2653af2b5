package tokenizer

import (
	"strconv"

	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/tag"
)

// arefFlags tracks which of the five known attributes an <annotation/>
// marker has already supplied, to reject duplicates the way the
// original scanner does.
type arefFlags struct {
	id, tagID, ftype, depth, parent bool
}

// ExtractArefMarkers scans self-closing <annotation .../> markers out
// of band, returning the plain text with every marker removed and the
// ordered stream of markers at their offsets into that text (spec §6).
// Each marker's `type` attribute is interned into tags on first sight,
// unlike the original which requires it pre-registered — this
// rendition has no separate tag-registration step (see ExtractXMLTags).
func ExtractArefMarkers(data []byte, tags *tag.Table) ([]byte, []entity.ArefMarker, error) {
	s := newScanner(data)
	var text []byte
	var markers []entity.ArefMarker

	for !s.eof() {
		for !s.eof() && s.peek() != '<' {
			text = append(text, s.advance())
		}
		if s.eof() {
			break
		}

		sline, scol := s.line, s.col
		s.advance() // '<'
		s.skipSpace()

		name := s.readToken(func(c byte) bool { return isSpace(c) || c == '>' || c == '/' })
		if name != "annotation" {
			// Not a marker we recognize: emit the literal '<' and the
			// name we just consumed, and keep scanning from here.
			text = append(text, '<')
			text = append(text, name...)
			continue
		}

		marker, err := scanAnnotation(s, sline, scol)
		if err != nil {
			return nil, nil, err
		}
		marker.TagID = tags.Intern(marker.tagName)
		marker.Pos = len(text)
		markers = append(markers, marker.ArefMarker)
	}

	return text, markers, nil
}

// arefScan bundles the marker under construction with its raw tag name,
// resolved to an ID only after the whole marker has parsed cleanly.
type arefScan struct {
	entity.ArefMarker
	tagName string
}

func done(s *scanner) bool {
	return s.eof() || (s.peek() == '/' && s.peekAt(1) == '>')
}

func scanAnnotation(s *scanner, sline, scol int) (arefScan, error) {
	var flags arefFlags
	m := arefScan{ArefMarker: entity.ArefMarker{Parent: -1, Line: sline, Col: scol}}

	for !done(s) {
		s.skipSpace()
		if done(s) {
			break
		}
		key := s.readToken(func(c byte) bool {
			return isSpace(c) || c == '>' || c == '=' || c == '/'
		})
		s.skipSpace()
		if done(s) {
			break
		}
		if key == "" {
			return m, s.errorf("malformed annotation, stray '='")
		}

		var value string
		if s.peek() == '=' {
			s.advance()
			s.skipSpace()
			if done(s) {
				break
			}
			if s.peek() == '"' {
				s.advance()
				value = s.readToken(func(c byte) bool { return c == '"' })
				if s.eof() {
					return m, s.errorf("malformed annotation, missing closing quote")
				}
				s.advance()
			} else {
				value = s.readToken(func(c byte) bool { return isSpace(c) || c == '>' || c == '/' })
			}
		}

		if err := applyArefAttr(s, &m, &flags, key, value); err != nil {
			return m, err
		}
	}

	if s.eof() {
		return m, s.errorf("malformed annotation, missing '/>'")
	}
	s.advance() // '/'
	s.advance() // '>'
	return m, nil
}

func applyArefAttr(s *scanner, m *arefScan, flags *arefFlags, key, value string) error {
	switch key {
	case "id":
		if flags.id {
			return s.errorf("malformed annotation, duplicate id")
		}
		flags.id = true
		n, err := strconv.Atoi(value)
		if err != nil {
			return s.errorf("malformed annotation, non-numeric id %q", value)
		}
		m.EntityID = n

	case "type":
		if flags.tagID {
			return s.errorf("malformed annotation, duplicate type")
		}
		flags.tagID = true
		m.tagName = value

	case "ftype":
		if flags.ftype {
			return s.errorf("malformed annotation, duplicate ftype")
		}
		flags.ftype = true
		switch value {
		case "s":
			m.Opening = true
		case "e":
			m.Closing = true
		case "se":
			m.Opening, m.Closing = true, true
		default:
			return s.errorf("malformed annotation, unknown ftype %q", value)
		}

	case "depth":
		if flags.depth {
			return s.errorf("malformed annotation, duplicate depth")
		}
		flags.depth = true
		n, err := strconv.Atoi(value)
		if err != nil {
			return s.errorf("malformed annotation, non-numeric depth %q", value)
		}
		m.Depth = n

	case "parent":
		if flags.parent {
			return s.errorf("malformed annotation, duplicate parent")
		}
		flags.parent = true
		n, err := strconv.Atoi(value)
		if err != nil {
			return s.errorf("malformed annotation, non-numeric parent %q", value)
		}
		m.Parent = n

	default:
		return s.errorf("malformed annotation, unknown attribute %q", key)
	}
	return nil
}
