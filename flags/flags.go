// Package flags provides support for seq-stress CLI args
package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"hop.computer/seq/config"
)

// ErrExcessArgs is returned when unparsed arguments remain
var ErrExcessArgs = errors.New("excess arguments provided")

// StressFlags holds CLI args for seq-stress.
type StressFlags struct {
	ConfigPath  string
	Interactive bool
	Verbose     bool

	// Rounds and Inserts override the config file when positive.
	Rounds  int
	Inserts int
}

// ParseStressArgs defines and parses the flags from the cmd line for
// seq-stress. args[0] is the program name.
func ParseStressArgs(args []string) (*StressFlags, error) {
	f := &StressFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	defineStressFlags(fs, f)

	err := fs.Parse(args[1:])
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 { // there were unparsed args
		return nil, ErrExcessArgs
	}
	return f, nil
}

func defineStressFlags(fs *flag.FlagSet, f *StressFlags) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to stress config file (TOML)")
	fs.BoolVar(&f.Interactive, "interactive", false, "press n to run another round, any other key to quit")
	fs.BoolVar(&f.Verbose, "v", false, "debug logging")
	fs.IntVar(&f.Rounds, "rounds", 0, "rounds per container, overrides the config file")
	fs.IntVar(&f.Inserts, "inserts", 0, "elements per round, overrides the config file")
}

func mergeStressFlagsAndConfig(f *StressFlags, sc *config.StressConfig) error {
	if f.Rounds > 0 {
		sc.Rounds = f.Rounds
	}
	if f.Inserts > 0 {
		sc.Inserts = f.Inserts
	}
	if f.Verbose {
		sc.LogLevel = "debug"
	}
	return sc.Validate()
}

// LoadStressConfigFromFlags follows the config path provided in flags (or
// uses the defaults) and updates the config with info from flags.
func LoadStressConfigFromFlags(f *StressFlags) (*config.StressConfig, error) {
	sc, err := config.LoadStressConfigFromFile(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	err = mergeStressFlagsAndConfig(f, sc)
	return sc, err
}
