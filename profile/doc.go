// Package profile adds runtime profiling flags to the jsdoclint command.
//
// A CPU profile covers the whole run. Heap, allocs and goroutine profiles
// are snapshots written when profiling stops, which is after every file has
// been linted.
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	// ...
//	err = errors.Join(err, p.Stop())
package profile
