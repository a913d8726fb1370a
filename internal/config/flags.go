package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file (rotated)")
	flagFormat    = flag.String("format", "", "Output format: json or yaml")
	flagPrecision = flag.Int("precision", -2, "Round output to N decimal places (-1 = no rounding)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	// -2 means the flag was not given.
	if *flagPrecision >= -1 {
		cfg.Output.Precision = *flagPrecision
	}
}
