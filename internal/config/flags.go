package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagEpsilon = flag.Float64("epsilon", 0, "Tolerance for approximate comparisons")
	flagWorkers = flag.Int("workers", 0, "Number of files evaluated in parallel")
	flagWatch   = flag.Bool("watch", false, "Re-evaluate files when they change")
	flagFormat  = flag.String("format", "", "Report format: text or yaml")
	flagSave    = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// explicitFlags returns the names of flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies CLI flag overrides to the config. Flags whose zero
// value is meaningful only apply when named in set.
func applyFlags(cfg *Config, set map[string]bool) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["epsilon"] {
		cfg.Check.Epsilon = float32(*flagEpsilon)
	}
	if *flagWorkers > 0 {
		cfg.Check.Workers = *flagWorkers
	}
	if *flagWatch {
		cfg.Check.Watch = true
	}
	if *flagFormat != "" {
		cfg.Check.Format = *flagFormat
	}
}
