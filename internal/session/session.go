// Package session wires the process-wide runtime state: the live Config,
// the logger and console sinks, the frame view, and the parsed CLI settings.
//
// The toolkit assumes exactly one live Session per process. Bootstrap runs
// the startup sequence with no retries: any load or digestion failure is
// fatal and propagates to the caller. The Session's Config is shared by
// reference and mutated in place by a single cooperating writer; scoped
// overrides on it must not nest or run concurrently.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"keyframe/internal/config"
	"keyframe/internal/logging"
)

// Options controls Session construction.
type Options struct {
	// ConfigPath, when set, replaces the user/project file probing.
	ConfigPath string
	// Verbosity is the CLI log-level flag; it wins over logging.level.
	Verbosity string
}

// Session is the explicit process-scoped registry every collaborator reads
// its shared state from.
type Session struct {
	Config     *config.Config
	Logger     *slog.Logger
	Console    *logging.Console
	ErrConsole *logging.Console
	Frame      config.Frame
	CLI        config.CLISettings

	// RunID tags every log record from this process.
	RunID string

	// ConfigPath is the resolved configuration file location;
	// ConfigExists reports whether a file was actually read.
	ConfigPath   string
	ConfigExists bool

	subsystems map[string]*slog.Logger
}

// Bootstrap executes the startup sequence once for a new Session: digest the
// layered configuration, build the logger and consoles from its logging
// section and the CLI verbosity, parse the CLI settings, clamp noisy helper
// subsystems, and derive the frame view.
func Bootstrap(opts Options) (*Session, error) {
	cfg, resolved, exists, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg, opts.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	cli := config.ParseCLISettings(cfg)
	console, errConsole := logging.NewConsoles(cli.Color)

	subsystems := make(map[string]*slog.Logger, len(logging.NoisySubsystems))
	for _, name := range logging.NoisySubsystems {
		subsystems[name] = logging.Quiet(logger, name)
	}

	return &Session{
		Config:       cfg,
		Logger:       logger,
		Console:      console,
		ErrConsole:   errConsole,
		Frame:        config.NewFrame(cfg),
		CLI:          cli,
		RunID:        runID,
		ConfigPath:   resolved,
		ConfigExists: exists,
		subsystems:   subsystems,
	}, nil
}

// SubsystemLogger returns the logger for a named subsystem. Noisy
// subsystems come back clamped to info; everything else is a plain tagged
// child logger.
func (s *Session) SubsystemLogger(name string) *slog.Logger {
	if logger, ok := s.subsystems[name]; ok {
		return logger
	}
	return logging.Subsystem(s.Logger, name)
}

var (
	defaultOnce    sync.Once
	defaultSession *Session
	defaultErr     error
)

// Default returns the lazily bootstrapped process-wide Session. Every
// caller observes the same Session and therefore the same live Config
// instance for the life of the process.
func Default() (*Session, error) {
	defaultOnce.Do(func() {
		defaultSession, defaultErr = Bootstrap(Options{})
	})
	return defaultSession, defaultErr
}
