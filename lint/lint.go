package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/jsdoc/jsfunc"
	"go.jacobcolvin.com/jsdoc/report"
	"go.jacobcolvin.com/jsdoc/rules"
)

// ErrReadInput indicates a source file or directory that could not be read.
var ErrReadInput = errors.New("read input")

// Extensions are the file extensions collected from directories.
var Extensions = []string{".js", ".mjs", ".cjs"}

// Linter checks JavaScript sources against a resolved rule configuration.
// It is safe for concurrent use.
type Linter struct {
	engine *rules.Engine
	logger *slog.Logger
	jobs   int
}

// Option configures a [Linter].
type Option func(*Linter)

// WithJobs sets the number of files linted concurrently. Values below one
// use [runtime.GOMAXPROCS].
func WithJobs(n int) Option {
	return func(l *Linter) {
		l.jobs = n
	}
}

// WithLogger sets the logger for per-file progress and parse warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}

// New creates a [Linter] for cfg.
func New(cfg *rules.Config, opts ...Option) *Linter {
	l := &Linter{
		engine: rules.NewEngine(cfg),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.jobs < 1 {
		l.jobs = runtime.GOMAXPROCS(0)
	}

	return l
}

// LintSource checks the functions of one source file. Findings are ordered
// by position.
func (l *Linter) LintSource(ctx context.Context, name string, src []byte) (report.Result, error) {
	file, err := jsfunc.Parse(ctx, src)
	if err != nil {
		return report.Result{}, fmt.Errorf("%s: %w", name, err)
	}

	if file.Partial {
		l.logger.WarnContext(ctx, "source has syntax errors, results may be incomplete",
			slog.String("file", name))
	}

	result := report.Result{File: name}

	for _, fn := range file.Functions {
		result.Findings = append(result.Findings, l.engine.Check(fn.DocComment(), fn.Sig)...)
	}

	slices.SortStableFunc(result.Findings, func(a, b rules.Finding) int {
		return cmp.Or(cmp.Compare(a.Pos.Line, b.Pos.Line), cmp.Compare(a.Pos.Column, b.Pos.Column))
	})

	l.logger.DebugContext(ctx, "linted file",
		slog.String("file", name),
		slog.Int("functions", len(file.Functions)),
		slog.Int("findings", len(result.Findings)),
	)

	return result, nil
}

// LintFiles reads and checks each path. Results are in the order of paths.
// The first error cancels the remaining work.
func (l *Linter) LintFiles(ctx context.Context, paths []string) ([]report.Result, error) {
	results := make([]report.Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.jobs)

	for i, path := range paths {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}

			r, err := l.LintSource(ctx, path, src)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Collect expands args into source file paths. Files are taken as given;
// directories are walked for files with one of [Extensions], skipping
// node_modules and hidden directories. The result has no duplicates and
// keeps the order of args, with each directory's files sorted.
func Collect(args []string) ([]string, error) {
	var paths []string

	seen := make(map[string]bool)
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		if !info.IsDir() {
			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != arg && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if slices.Contains(Extensions, filepath.Ext(path)) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	return paths, nil
}

func skipDir(name string) bool {
	return name == "node_modules" || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}
