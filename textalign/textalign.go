// Package textalign repositions hypothesis tag offsets from hypothesis
// text onto reference text. Reference and hypothesis annotators work
// from the same underlying document but their copies may differ in
// whitespace (extra blank lines, re-wrapped paragraphs); every other
// byte must match exactly (spec §7, grounded on align_and_reposition in
// the original implementation).
package textalign

import "fmt"

const contextWindow = 64

// Mismatch reports a non-whitespace byte divergence between reference
// and hypothesis text at the point textalign tried to reconcile them.
type Mismatch struct {
	RefLine, HypLine int
	RefContext       string
	HypContext       string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf(
		"textalign: mismatch aligning ref and hyp, hyp line %d, ref line %d:\n  ref:  [%s]\n  hyp:  [%s]",
		m.HypLine, m.RefLine, m.RefContext, m.HypContext)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Reposition walks ref and hyp in lockstep, skipping whitespace on
// both sides and requiring every other byte to match, and returns the
// positions slice (byte offsets into hyp, strictly non-decreasing)
// translated into offsets into ref. positions must be sorted ascending,
// the order tokenizer emits them in.
func Reposition(ref, hyp []byte, positions []int) ([]int, error) {
	out := make([]int, len(positions))
	rp, hp := 0, 0
	refLine, hypLine := 1, 1
	next := 0

	for {
		var hd int
		hasNext := next < len(positions)
		if hasNext {
			hd = positions[next]
		}

		for (rp < len(ref) || hp < len(hyp)) && (!hasNext || hp != hd) {
			if rp < len(ref) && isWhitespace(ref[rp]) {
				if ref[rp] == '\n' {
					refLine++
				}
				rp++
				continue
			}
			if hp < len(hyp) && isWhitespace(hyp[hp]) {
				if hyp[hp] == '\n' {
					hypLine++
				}
				hp++
				continue
			}

			if rp >= len(ref) || hp >= len(hyp) || ref[rp] != hyp[hp] {
				return nil, &Mismatch{
					RefLine:    refLine,
					HypLine:    hypLine,
					RefContext: escapeContext(ref, rp),
					HypContext: escapeContext(hyp, hp),
				}
			}
			rp++
			hp++
		}

		if !hasNext {
			break
		}
		out[next] = rp
		next++
	}

	return out, nil
}

// escapeContext renders up to contextWindow bytes of data starting at
// (or up to 8 bytes before, if available) pos, escaping control bytes
// and collapsing repeated spaces, mirroring the original's escape().
func escapeContext(data []byte, pos int) string {
	start := pos - 8
	if start < 0 {
		start = 0
	}
	end := start + contextWindow
	if end > len(data) {
		end = len(data)
	}

	var out []byte
	var prev byte
	for _, c := range data[start:end] {
		switch {
		case c == '\n':
			out = append(out, '\\', 'n')
		case c < 32:
			out = append(out, []byte(fmt.Sprintf(`\0x%02x`, c))...)
		case c == ' ' && prev == ' ':
			// collapse repeated spaces
		default:
			out = append(out, c)
		}
		prev = c
	}
	return string(out)
}
