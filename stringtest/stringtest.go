// Package stringtest provides helpers for building multi-line string fixtures
// in tests.
package stringtest

import "strings"

// Input dedents a raw string literal for use as test input. One leading and
// one trailing newline are removed, the indentation common to all non-blank
// lines is stripped, and whitespace-only lines become empty.
//
// Example:
//
//	src := stringtest.Input(`
//	    function add(a, b) {
//	      return a + b;
//	    }
//	`) // -> "function add(a, b) {\n  return a + b;\n}"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	indent := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent > 0 {
		for i, line := range lines {
			if line != "" {
				lines[i] = line[indent:]
			}
		}
	}

	return strings.Join(lines, "\n")
}

// Comment wraps the dedented body in block doc-comment delimiters, prefixing
// each line with " * ".
//
// Example:
//
//	stringtest.Comment(`
//	    Adds numbers.
//	    @param {number} a
//	`) // -> "/**\n * Adds numbers.\n * @param {number} a\n */"
func Comment(body string) string {
	var sb strings.Builder

	sb.WriteString("/**\n")

	for line := range strings.SplitSeq(Input(body), "\n") {
		if line == "" {
			sb.WriteString(" *\n")

			continue
		}

		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString(" */")

	return sb.String()
}

// JoinLF joins lines with LF endings, for expected output with explicit
// line breaks:
//
//	want := stringtest.JoinLF(
//		"a.js:1:1: enforceExistence: expected doc-comment for main",
//		"",
//	) // -> "a.js:1:1: enforceExistence: expected doc-comment for main\n"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins lines with CRLF endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
