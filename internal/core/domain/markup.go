package domain

import "strings"

// Span is a run of text with uniform formatting.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// ParseMarkup splits message text into formatted spans. Exactly three
// markers are understood: **text** (bold), *text* (italic), and newlines,
// which stay embedded in span text. Unterminated markers are kept as
// literal text. This is a fixed formatting rule, not a markdown parser.
func ParseMarkup(text string) []Span {
	var spans []Span
	for _, seg := range splitMarker(text, "**") {
		if seg.marked {
			spans = append(spans, Span{Text: seg.text, Bold: true})
			continue
		}
		for _, inner := range splitMarker(seg.text, "*") {
			spans = append(spans, Span{Text: inner.text, Italic: inner.marked})
		}
	}
	return spans
}

type segment struct {
	text   string
	marked bool
}

// splitMarker splits text on balanced marker pairs. An opening marker
// without a closing partner is treated as literal text.
func splitMarker(text, marker string) []segment {
	var segs []segment
	for text != "" {
		open := strings.Index(text, marker)
		if open < 0 {
			segs = append(segs, segment{text: text})
			break
		}
		rest := text[open+len(marker):]
		length := strings.Index(rest, marker)
		if length < 0 {
			segs = append(segs, segment{text: text})
			break
		}
		if length == 0 {
			// Adjacent markers carry no content; keep them literal.
			end := open + 2*len(marker)
			segs = append(segs, segment{text: text[:end]})
			text = text[end:]
			continue
		}
		if open > 0 {
			segs = append(segs, segment{text: text[:open]})
		}
		segs = append(segs, segment{text: rest[:length], marked: true})
		text = rest[length+len(marker):]
	}
	return segs
}
