package config

// CLISettings carries the cli.* options in the shape the command layer
// consumes when it builds commands and renders output.
type CLISettings struct {
	// Color is the console color mode: auto, always, or never.
	Color string
	// Progress controls progress output during long operations.
	Progress bool
	// TableStyle names the go-pretty table style used for CLI tables.
	TableStyle string
}

// ParseCLISettings extracts the CLI context settings from a digested Config.
func ParseCLISettings(cfg *Config) CLISettings {
	return CLISettings{
		Color:      cfg.String("cli.color"),
		Progress:   cfg.Bool("cli.progress"),
		TableStyle: cfg.String("cli.table_style"),
	}
}
