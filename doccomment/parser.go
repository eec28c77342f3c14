package doccomment

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/tagschema"
	"go.jacobcolvin.com/jsdoc/typeexpr"
)

// tagLineRegex matches a line opening a tag and captures the keyword.
var tagLineRegex = regexp.MustCompile(`^@(\w[\w-]*)`)

// Option configures [Parse].
type Option func(*parser)

// WithOrigin sets the position of the comment's first character, so tag
// positions are reported relative to the enclosing file. The default origin
// is line 1, column 1.
func WithOrigin(pos signature.Position) Option {
	return func(p *parser) {
		p.origin = pos
	}
}

type parser struct {
	origin signature.Position
}

// line is one comment line with its decoration removed.
type line struct {
	text string
	pos  signature.Position
}

// Parse parses the raw text of a doc-comment, with or without its "/**" and
// "*/" delimiters.
func Parse(raw string, opts ...Option) *DocComment {
	p := &parser{origin: signature.Position{Line: 1, Column: 1}}
	for _, opt := range opts {
		opt(p)
	}

	lines := p.lines(raw)
	doc := &DocComment{Pos: p.origin}

	first := len(lines)

	for i, l := range lines {
		if tagLineRegex.MatchString(l.text) {
			first = i

			break
		}
	}

	doc.Description = paragraphs(lines[:first])
	if len(doc.Description) > 0 && first < len(lines) && first > 0 {
		doc.BlankLineBeforeTags = lines[first-1].text == ""
	}

	var unit []line

	for _, l := range lines[first:] {
		if tagLineRegex.MatchString(l.text) && len(unit) > 0 {
			doc.Tags = append(doc.Tags, parseTag(unit))
			unit = nil
		}

		unit = append(unit, l)
	}

	if len(unit) > 0 {
		doc.Tags = append(doc.Tags, parseTag(unit))
	}

	return doc
}

// lines splits raw into decoration-free lines, recording where each line's
// text starts.
func (p *parser) lines(raw string) []line {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	rawLines := strings.Split(raw, "\n")
	out := make([]line, 0, len(rawLines))

	for i, s := range rawLines {
		col := 0
		opened := false

		if i == 0 {
			if idx := strings.Index(s, "/**"); idx >= 0 && strings.TrimSpace(s[:idx]) == "" {
				col = idx + len("/**")
				opened = true
			}
		}

		if i == len(rawLines)-1 {
			if idx := strings.LastIndex(s, "*/"); idx >= col {
				s = s[:idx]
			}
		}

		rest := s[col:]

		if !opened {
			trimmed := strings.TrimLeft(rest, " \t")
			col += len(rest) - len(trimmed)
			rest = trimmed

			if after, ok := strings.CutPrefix(rest, "*"); ok {
				rest = after
				col++
			}
		}

		if after, ok := strings.CutPrefix(rest, " "); ok {
			rest = after
			col++
		}

		pos := signature.Position{Line: p.origin.Line + i, Column: col + 1}
		if i == 0 {
			pos.Column = p.origin.Column + col
		}

		out = append(out, line{text: strings.TrimRight(rest, " \t"), pos: pos})
	}

	// Drop the blank lines left by the delimiters.
	for len(out) > 0 && out[0].text == "" {
		out = out[1:]
	}

	for len(out) > 0 && out[len(out)-1].text == "" {
		out = out[:len(out)-1]
	}

	return out
}

// paragraphs groups lines into blank-line separated paragraphs.
func paragraphs(lines []line) []string {
	var (
		out     []string
		current []string
	)

	for _, l := range lines {
		if strings.TrimSpace(l.text) == "" {
			if len(current) > 0 {
				out = append(out, strings.Join(current, "\n"))
				current = nil
			}

			continue
		}

		current = append(current, l.text)
	}

	if len(current) > 0 {
		out = append(out, strings.Join(current, "\n"))
	}

	return out
}

// parseTag builds a [Tag] from the lines of one tag unit. The first line
// starts with "@keyword".
func parseTag(unit []line) Tag {
	texts := make([]string, len(unit))
	for i, l := range unit {
		texts[i] = l.text
	}

	raw := strings.TrimRight(strings.Join(texts, "\n"), "\n")
	keyword := tagLineRegex.FindStringSubmatch(raw)[1]

	tag := Tag{
		Name:    tagschema.Canonical(keyword),
		Keyword: strings.ToLower(keyword),
		Raw:     raw,
		Pos:     unit[0].pos,
	}

	rest := strings.TrimSpace(raw[len(keyword)+1:])

	if tagschema.CarriesType(tag.Keyword) && strings.HasPrefix(rest, "{") {
		end := typeexpr.MatchBrace(rest)
		if end < 0 {
			tag.TypeText = rest[1:]
			tag.Type = typeexpr.Unknown{Raw: rest}

			return tag
		}

		tag.TypeText = rest[1:end]
		tag.Type = typeexpr.Parse(tag.TypeText)
		rest = strings.TrimSpace(rest[end+1:])
	}

	if tagschema.ParamFamily(tag.Keyword) {
		rest = parseParamName(&tag, rest)
	}

	tag.Description = rest

	return tag
}

// parseParamName extracts a leading [name], [name=default] or bare name from
// s into tag and returns the remaining text.
func parseParamName(tag *Tag, s string) string {
	if s == "" || strings.HasPrefix(s, "-") {
		return s
	}

	if strings.HasPrefix(s, "[") {
		end := matchBracket(s)
		if end < 0 {
			return s
		}

		name, def, hasDefault := strings.Cut(s[1:end], "=")
		tag.ParamName = strings.TrimSpace(name)
		tag.Optional = true

		if hasDefault {
			tag.Default = strings.TrimSpace(def)
		}

		return strings.TrimSpace(s[end+1:])
	}

	end := strings.IndexAny(s, " \t\n")
	if end < 0 {
		tag.ParamName = s

		return ""
	}

	tag.ParamName = s[:end]

	return strings.TrimSpace(s[end:])
}

// matchBracket returns the index of the "]" closing the "[" at s[0], or -1.
func matchBracket(s string) int {
	depth := 0

	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
