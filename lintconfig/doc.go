// Package lintconfig loads doc-comment rule settings from configuration
// files.
//
// Three file shapes are understood:
//
//   - .jsdoclint.yaml and .jsdoclint.yml: a YAML mapping of rule key to value.
//   - .jscsrc and other JSON files: the object under the top-level "jsDoc"
//     key.
//   - package.json: the object under "jscsConfig.jsDoc".
//
// [Load] returns the raw settings after validating them against [Schema].
// They still need [rules.Resolve], which checks what a JSON Schema cannot
// express, such as mutually exclusive rules.
//
// [Find] discovers a configuration file by searching a directory and its
// parents for the names above, in that order. A package.json without a
// "jscsConfig.jsDoc" section is skipped.
package lintconfig
