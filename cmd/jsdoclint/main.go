// Command jsdoclint checks JavaScript doc-comments against the functions
// they document.
//
// # Usage
//
//	jsdoclint [flags] <file.js|directory> ...
//	jsdoclint schema
//	jsdoclint rules
//
// Directories are searched for .js, .mjs and .cjs files. Rule settings come
// from the file named by --config, or from the first of .jsdoclint.yaml,
// .jsdoclint.yml, .jscsrc (the "jsDoc" key) and package.json (the
// "jscsConfig.jsDoc" key) found in the working directory or its parents.
//
// The exit status is 1 when any finding is reported or an error occurs.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jsdoc/lint"
	"go.jacobcolvin.com/jsdoc/lintconfig"
	"go.jacobcolvin.com/jsdoc/log"
	"go.jacobcolvin.com/jsdoc/profile"
	"go.jacobcolvin.com/jsdoc/report"
	"go.jacobcolvin.com/jsdoc/rules"
	"go.jacobcolvin.com/jsdoc/version"
)

// ErrFindings is returned when linting reported at least one finding.
var ErrFindings = errors.New("findings reported")

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		if !errors.Is(err, ErrFindings) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}

		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	lintCfg := lint.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "jsdoclint [flags] <file.js|directory> ...",
		Short: "Check JavaScript doc-comments against function signatures",
		Long: `jsdoclint validates JSDoc comments attached to JavaScript functions. It checks
param and return tags against the actual signature, tag names against a preset,
type expressions, access annotations and description formatting.`,
		Version:       version.String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logCfg.NewLogger(stderr)
			if err != nil {
				return err
			}

			p := profCfg.NewProfiler()

			err = p.Start()
			if err != nil {
				return err
			}

			defer func() {
				stopErr := p.Stop()
				if stopErr != nil {
					logger.Error("stop profiling", slog.Any("err", stopErr))
				}
			}()

			return run(cmd.Context(), lintCfg, logger, stdout, args)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.Flags())
	lintCfg.RegisterFlags(rootCmd.Flags())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
		lintCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(newSchemaCmd(stdout), newRulesCmd(stdout))

	return rootCmd
}

func run(ctx context.Context, cfg *lint.Config, logger *slog.Logger, stdout io.Writer, args []string) error {
	paths, err := lint.Collect(args)
	if err != nil {
		return err
	}

	rulesCfg, path, err := cfg.RuleConfig(".")
	if err != nil {
		return err
	}

	if path == "" {
		logger.DebugContext(ctx, "no configuration file found, using default rules")
	} else {
		logger.DebugContext(ctx, "loaded configuration", slog.String("path", path))
	}

	format, opts, err := cfg.ReportOptions(stdout)
	if err != nil {
		return err
	}

	l := lint.New(rulesCfg, lint.WithJobs(cfg.Jobs), lint.WithLogger(logger))

	logger.DebugContext(ctx, "linting",
		slog.Int("files", len(paths)),
		slog.String("rules", strings.Join(rulesCfg.Keys(), ",")),
	)

	results, err := l.LintFiles(ctx, paths)
	if err != nil {
		return err
	}

	err = report.Write(stdout, format, results, opts...)
	if err != nil {
		return err
	}

	if report.Count(results) > 0 {
		return ErrFindings
	}

	return nil
}

func newSchemaCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(lintconfig.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteReport, err)
			}

			_, err = fmt.Fprintf(stdout, "%s\n", out)
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteReport, err)
			}

			return nil
		},
	}
}

func newRulesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules and their accepted values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "RULE\tVALUES\tDESCRIPTION")

			for _, r := range rules.Registry() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, strings.Join(r.Values(), "|"), r.Doc)
			}

			err := tw.Flush()
			if err != nil {
				return fmt.Errorf("%w: %w", report.ErrWriteReport, err)
			}

			return nil
		},
	}
}
