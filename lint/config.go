package lint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"go.jacobcolvin.com/jsdoc/lintconfig"
	"go.jacobcolvin.com/jsdoc/report"
	"go.jacobcolvin.com/jsdoc/rules"
)

// ErrInvalidOption indicates an invalid command-line option value.
var ErrInvalidOption = errors.New("invalid option")

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultSettings are the rules used when no configuration file is found.
var DefaultSettings = map[string]any{
	rules.KeyCheckAnnotations:               true,
	rules.KeyCheckParamNames:                true,
	rules.KeyRequireParamTypes:              true,
	rules.KeyCheckRedundantParams:           true,
	rules.KeyCheckReturnTypes:               true,
	rules.KeyCheckRedundantReturns:          true,
	rules.KeyRequireReturnTypes:             true,
	rules.KeyCheckTypes:                     true,
	rules.KeyCheckRedundantAccess:           true,
	rules.KeyRequireNewlineAfterDescription: true,
}

// Flags holds CLI flag names for lint configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Config  string
	Jobs    string
	Format  string
	Color   string
	Summary string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for linting.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.RuleConfig] to load the rule settings
// and [Config.ReportOptions] to configure output.
type Config struct {
	Flags Flags

	// ConfigFile is an explicit configuration file. When empty, one is
	// discovered with [lintconfig.Find].
	ConfigFile string
	Format     string
	Color      string
	Jobs       int
	Summary    bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Config:  "config",
		Jobs:    "jobs",
		Format:  "format",
		Color:   "color",
		Summary: "summary",
	}

	return f.NewConfig()
}

// RegisterFlags adds lint flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.ConfigFile, c.Flags.Config, "c", "",
		fmt.Sprintf("configuration file (default: search for %s)", strings.Join(lintconfig.Names, ", ")))
	flags.IntVarP(&c.Jobs, c.Flags.Jobs, "j", 0,
		"number of files to lint concurrently (0 for GOMAXPROCS)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(report.FormatText),
		fmt.Sprintf("report format, one of: %s", report.GetAllFormatStrings()))
	flags.StringVar(&c.Color, c.Flags.Color, ColorAuto,
		fmt.Sprintf("colour text output, one of: %s", colorModes()))
	flags.BoolVar(&c.Summary, c.Flags.Summary, true,
		"print a finding count after text output")
}

// RegisterCompletions registers shell completions for lint flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(report.GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(colorModes(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Jobs, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Jobs, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Config,
		cobra.FixedCompletions([]string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Config, err)
	}

	return nil
}

// RuleConfig loads and resolves the rule settings. It returns the path of
// the configuration file used, which is empty when [DefaultSettings]
// applied.
func (c *Config) RuleConfig(dir string) (*rules.Config, string, error) {
	path := c.ConfigFile
	if path == "" {
		found, err := lintconfig.Find(dir)
		if errors.Is(err, lintconfig.ErrNotFound) {
			cfg, err := rules.Resolve(DefaultSettings)

			return cfg, "", err
		}

		if err != nil {
			return nil, "", err
		}

		path = found
	}

	raw, err := lintconfig.Load(path)
	if err != nil {
		return nil, "", err
	}

	cfg, err := rules.Resolve(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return cfg, path, nil
}

// ReportOptions returns the report format and options for writing to w.
// In auto mode, colour is used when w is a terminal.
func (c *Config) ReportOptions(w io.Writer) (report.Format, []report.Option, error) {
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	var color bool

	switch strings.ToLower(c.Color) {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	case ColorAuto, "":
		color = isTerminal(w)
	default:
		return "", nil, fmt.Errorf("%w: %s %q, one of: %s",
			ErrInvalidOption, c.Flags.Color, c.Color, strings.Join(colorModes(), ", "))
	}

	return format, []report.Option{report.WithColor(color), report.WithSummary(c.Summary)}, nil
}

func colorModes() []string {
	return []string{ColorAuto, ColorAlways, ColorNever}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}
