package tokenizer

import (
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/tag"
)

// isTagStart reports whether the scanner is positioned at '<' followed
// by a lowercase letter or '/' — the same class test xml_extract_tags
// uses to decide a '<' begins a tag rather than literal text.
func (s *scanner) isTagStart() bool {
	if s.eof() || s.peek() != '<' {
		return false
	}
	n := s.peekAt(1)
	return n == '/' || isLowerAlpha(n)
}

// ExtractXMLTags scans embedded-XML annotated text, returning the plain
// text with all tags removed and the ordered stream of tag events at
// their offsets into that plain text (spec §6). Every tag matching the
// '<'+lowercase-or-'/' class is treated as a recognized entity tag and
// interned into tags; this rendition has no closed, pre-registered tag
// set, so (unlike the original) nothing ever falls back to passthrough
// literal text for an unrecognized-but-well-formed tag.
func ExtractXMLTags(data []byte, tags *tag.Table) ([]byte, []entity.OpenTag, error) {
	s := newScanner(data)
	var text []byte
	var events []entity.OpenTag

	for !s.eof() {
		for !s.eof() && !s.isTagStart() {
			text = append(text, s.advance())
		}
		if s.eof() {
			break
		}

		sline, scol := s.line, s.col
		s.advance() // '<'
		s.skipSpace()

		closing := false
		if !s.eof() && s.peek() == '/' {
			closing = true
			s.advance()
			s.skipSpace()
		}

		tagName := s.readToken(func(c byte) bool { return isSpace(c) || c == '>' })

		attrs, err := scanAttrs(s, func() bool { return s.eof() || s.peek() == '>' })
		if err != nil {
			return nil, nil, err
		}
		if s.eof() {
			return nil, nil, s.errorf("malformed tag, missing '>'")
		}
		s.advance() // '>'

		tagID := tags.Intern(tagName)
		events = append(events, entity.OpenTag{
			TagID:   tagID,
			Closing: closing,
			Pos:     len(text),
			Line:    sline,
			Col:     scol,
			Attrs:   attrs,
		})
	}

	return text, events, nil
}

// scanAttrs consumes `key`, `key=value` and `key="quoted value"` pairs
// up to (but not including) the byte where done reports true, following
// the same lenient quoting rules as the original scanner.
func scanAttrs(s *scanner, done func() bool) ([]entity.KV, error) {
	var attrs []entity.KV

	for !done() {
		s.skipSpace()
		if done() {
			break
		}
		key := s.readToken(func(c byte) bool { return isSpace(c) || c == '>' || c == '=' || c == '/' })
		s.skipSpace()

		if done() {
			if key != "" {
				attrs = append(attrs, entity.KV{Key: key})
			}
			break
		}
		if key == "" {
			return nil, s.errorf("malformed tag, stray '='")
		}
		if s.peek() != '=' {
			attrs = append(attrs, entity.KV{Key: key})
			continue
		}

		s.advance() // '='
		s.skipSpace()
		if done() {
			break
		}

		var value string
		if s.peek() == '"' {
			s.advance()
			value = s.readToken(func(c byte) bool { return c == '"' })
			if s.eof() {
				return nil, s.errorf("malformed tag, missing closing quote")
			}
			s.advance() // closing '"'
		} else {
			value = s.readToken(func(c byte) bool { return isSpace(c) || c == '>' || c == '/' })
		}
		attrs = append(attrs, entity.KV{Key: key, Value: value})
	}

	return attrs, nil
}
