// Package lint runs the doc-comment rules over JavaScript files.
//
// A [Linter] parses each file with [jsfunc.Parse], checks every function with
// a [rules.Engine], and returns one [report.Result] per file in input order.
// Files are linted concurrently; the rule engine holds no state, so a single
// engine serves every worker.
//
// [Config] carries the command-line surface: the configuration file, the
// worker count, and the report format.
package lint
