package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPUProfile       string
	HeapProfile      string
	AllocsProfile    string
	GoroutineProfile string
	MemProfileRate   string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds profile output paths. Empty paths are disabled; a zero-value
// Config profiles nothing.
type Config struct {
	Flags Flags

	CPUProfile       string
	HeapProfile      string
	AllocsProfile    string
	GoroutineProfile string

	// MemProfileRate is bytes allocated per heap sample. Zero keeps the
	// runtime default.
	MemProfileRate int
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:       "cpu-profile",
		HeapProfile:      "heap-profile",
		AllocsProfile:    "allocs-profile",
		GoroutineProfile: "goroutine-profile",
		MemProfileRate:   "mem-profile-rate",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write heap profile to file")
	flags.StringVar(&c.AllocsProfile, c.Flags.AllocsProfile, "", "write allocs profile to file")
	flags.StringVar(&c.GoroutineProfile, c.Flags.GoroutineProfile, "", "write goroutine profile to file")
	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, 0,
		"memory profile rate in bytes per sample (0 keeps the runtime default)")
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Path flags keep default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.MemProfileRate, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MemProfileRate, err)
	}

	return nil
}

// NewProfiler creates a new [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{
		Config: *c,
	}
}
