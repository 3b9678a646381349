package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &Config{}
	}
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Data Path:       %s\n", cfg.DataFilePath())
	fmt.Fprintf(out, "  Output Dir:      %s\n", cfg.OutputPath())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Strict Numbers:  %v\n", cfg.StrictNumbers)
	fmt.Fprintf(out, "  Chart Size:      %dx%d\n", cfg.Width(), cfg.Height())
}
