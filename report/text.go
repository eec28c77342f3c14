package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

func writeText(w io.Writer, results []Result, o options) error {
	var sb strings.Builder

	for _, r := range results {
		for _, f := range r.Findings {
			loc := fmt.Sprintf("%s:%d:%d:", r.File, f.Pos.Line, f.Pos.Column)
			rule := f.RuleID + ":"

			if o.color {
				loc = ansiBold + loc + ansiReset
				rule = ansiYellow + rule + ansiReset
			}

			fmt.Fprintf(&sb, "%s %s %s\n", loc, rule, f.Message)
		}
	}

	if o.summary && len(results) > 0 {
		line := summary(results)
		if o.color {
			line = ansiRed + line + ansiReset
		}

		sb.WriteString("\n" + line + "\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func summary(results []Result) string {
	n := Count(results)

	findings := "findings"
	if n == 1 {
		findings = "finding"
	}

	files := "files"
	if len(results) == 1 {
		files = "file"
	}

	return fmt.Sprintf("%d %s in %d %s", n, findings, len(results), files)
}
