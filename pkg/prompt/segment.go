package prompt

// SegmentKind identifies a compiled prompt segment.
type SegmentKind int

// Segment kinds.
const (
	SegLiteral SegmentKind = iota
	SegUser
	SegHost
	SegCwd
	SegGit
	SegChar
	SegCustom
)

// Segment is one compiled unit of the prompt format string. Text holds the
// literal content for SegLiteral and the placeholder name for SegCustom.
type Segment struct {
	Kind SegmentKind
	Text string
}

// CompileFormat scans a format string once into an ordered segment sequence.
// Text outside braces accumulates into literal segments; text inside a
// {...} pair is matched against the known keywords, with unknown keywords
// kept as custom segments that render back verbatim. A trailing unterminated
// brace drops its accumulated content, matching the shipped behavior.
func CompileFormat(format string) []Segment {
	var segments []Segment
	var literal []rune
	var braceContent []rune
	inBrace := false

	for _, ch := range format {
		switch {
		case ch == '{' && !inBrace:
			if len(literal) > 0 {
				segments = append(segments, Segment{Kind: SegLiteral, Text: string(literal)})
				literal = literal[:0]
			}
			inBrace = true
		case ch == '}' && inBrace:
			segments = append(segments, keywordSegment(string(braceContent)))
			braceContent = braceContent[:0]
			inBrace = false
		case inBrace:
			braceContent = append(braceContent, ch)
		default:
			literal = append(literal, ch)
		}
	}

	if len(literal) > 0 {
		segments = append(segments, Segment{Kind: SegLiteral, Text: string(literal)})
	}

	return segments
}

func keywordSegment(name string) Segment {
	switch name {
	case "user":
		return Segment{Kind: SegUser}
	case "host":
		return Segment{Kind: SegHost}
	case "cwd":
		return Segment{Kind: SegCwd}
	case "git":
		return Segment{Kind: SegGit}
	case "char":
		return Segment{Kind: SegChar}
	default:
		return Segment{Kind: SegCustom, Text: name}
	}
}
