// Package report formats lint findings for output.
//
// Findings are grouped per file in [Result] values and written by [Write] in
// one of three formats: plain text in the conventional
// "file:line:column: rule: message" shape, JSON, or YAML. Text output can
// be coloured with ANSI escape sequences.
package report
