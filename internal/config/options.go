package config

import "fmt"

const (
	defaultFrameHeight       = 8.0
	defaultFrameWidth        = defaultFrameHeight * 16.0 / 9.0
	defaultFrameRate         = 60.0
	defaultPixelHeight       = 1080
	defaultPixelWidth        = 1920
	defaultBackgroundColor   = "#000000"
	defaultBackgroundOpacity = 1.0
	defaultMediaDir          = "~/.local/share/keyframe/media"
	defaultLogDir            = "~/.local/share/keyframe/logs"
)

// Options returns the full table of option definitions, keyed by path.
// The table is built fresh per call; registries never share Option pointers
// with callers that could mutate them.
func Options() map[string]*Option {
	table := make(map[string]*Option)

	register := func(opt Option) {
		if _, exists := table[opt.Path]; exists {
			panic(fmt.Sprintf("config: option %s registered twice", opt.Path))
		}
		table[opt.Path] = &opt
	}

	// Frame geometry
	register(Option{
		Path:    "frame.height",
		Type:    TypeFloat,
		Default: defaultFrameHeight,
		Min:     minValue(0.01),
		Doc:     "Logical frame height in scene units",
	})
	register(Option{
		Path:    "frame.width",
		Type:    TypeFloat,
		Default: defaultFrameWidth,
		Min:     minValue(0.01),
		Doc:     "Logical frame width in scene units",
	})
	register(Option{
		Path:    "frame.rate",
		Type:    TypeFloat,
		Default: defaultFrameRate,
		Min:     minValue(1),
		Max:     maxValue(240),
		Doc:     "Frames rendered per second of animation",
	})
	register(Option{
		Path:    "frame.pixel_height",
		Type:    TypeInt,
		Default: defaultPixelHeight,
		Min:     minValue(1),
		Doc:     "Rendered frame height in pixels",
	})
	register(Option{
		Path:    "frame.pixel_width",
		Type:    TypeInt,
		Default: defaultPixelWidth,
		Min:     minValue(1),
		Doc:     "Rendered frame width in pixels",
	})

	// Camera
	register(Option{
		Path:    "camera.background_color",
		Type:    TypeColor,
		Default: defaultBackgroundColor,
		Doc:     "Scene background color (hex)",
	})
	register(Option{
		Path:    "camera.background_opacity",
		Type:    TypeFloat,
		Default: defaultBackgroundOpacity,
		Min:     minValue(0),
		Max:     maxValue(1),
		Doc:     "Scene background opacity",
	})

	// Output
	register(Option{
		Path:    "output.media_dir",
		Type:    TypePath,
		Default: defaultMediaDir,
		Doc:     "Root directory for rendered media",
	})
	register(Option{
		Path:    "output.format",
		Type:    TypeEnum,
		Default: "mp4",
		Choices: []string{"mp4", "mov", "gif", "webm", "png"},
		Doc:     "Container format for rendered output",
	})
	register(Option{
		Path:    "output.file",
		Type:    TypeString,
		Default: "",
		Doc:     "Output file stem; empty derives the name from the scene",
	})
	register(Option{
		Path:    "output.preview",
		Type:    TypeBool,
		Default: false,
		Doc:     "Open the rendered file when rendering finishes",
	})
	register(Option{
		Path:    "output.save_last_frame",
		Type:    TypeBool,
		Default: false,
		Doc:     "Save the final frame as a still image",
	})
	register(Option{
		Path:    "output.transparent",
		Type:    TypeBool,
		Default: false,
		Doc:     "Render with an alpha channel",
	})

	// Renderer
	register(Option{
		Path:    "render.quality",
		Type:    TypeEnum,
		Default: "high",
		Choices: []string{"low", "medium", "high", "production", "fourk"},
		Doc:     "Quality preset consumed by the renderer",
	})
	register(Option{
		Path:    "render.dry_run",
		Type:    TypeBool,
		Default: false,
		Doc:     "Process scenes without writing any output",
	})
	register(Option{
		Path:    "render.scenes",
		Type:    TypeStringList,
		Default: []string{},
		Doc:     "Scene names to render; empty renders every scene",
	})

	// Logging
	register(Option{
		Path:    "logging.level",
		Type:    TypeEnum,
		Default: "info",
		Choices: []string{"debug", "info", "warn", "error"},
		Doc:     "Minimum log level",
	})
	register(Option{
		Path:    "logging.format",
		Type:    TypeEnum,
		Default: "console",
		Choices: []string{"console", "json"},
		Doc:     "Log output format",
	})
	register(Option{
		Path:    "logging.dir",
		Type:    TypePath,
		Default: defaultLogDir,
		Doc:     "Directory for log files",
	})

	// CLI
	register(Option{
		Path:    "cli.color",
		Type:    TypeEnum,
		Default: "auto",
		Choices: []string{"auto", "always", "never"},
		Doc:     "Console color mode",
	})
	register(Option{
		Path:    "cli.progress",
		Type:    TypeBool,
		Default: true,
		Doc:     "Show progress output during long operations",
	})
	register(Option{
		Path:    "cli.table_style",
		Type:    TypeEnum,
		Default: "rounded",
		Choices: []string{"rounded", "light", "ascii"},
		Doc:     "Table style for CLI output",
	})

	return table
}
