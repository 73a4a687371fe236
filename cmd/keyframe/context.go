package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"keyframe/internal/session"
)

// commandContext lazily bootstraps the runtime session so commands that
// never touch configuration (config init, config path) stay usable when no
// valid config exists yet.
type commandContext struct {
	configFlag    *string
	verbosityFlag *string

	once    sync.Once
	sess    *session.Session
	sessErr error
}

func newCommandContext(configFlag, verbosityFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		verbosityFlag: verbosityFlag,
	}
}

func (c *commandContext) ensureSession() (*session.Session, error) {
	c.once.Do(func() {
		var path, verbosity string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if c.verbosityFlag != nil {
			verbosity = strings.TrimSpace(*c.verbosityFlag)
		}
		c.sess, c.sessErr = session.Bootstrap(session.Options{
			ConfigPath: path,
			Verbosity:  verbosity,
		})
	})
	return c.sess, c.sessErr
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
