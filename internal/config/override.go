package config

// Override temporarily replaces configuration values in place and returns a
// closure that restores the prior state.
//
// The entire current state is snapshotted first. Overrides are then filtered
// to keys that already exist: unknown keys are dropped without error and are
// never added to the live config, so a mistyped key silently has no effect.
// Filtered values still validate; an invalid value fails the whole call and
// leaves the config untouched.
//
// Application and restoration both go through Update, never through pointer
// swapping, so every collaborator holding this *Config observes the
// overridden values and, after restore runs, the original values again.
//
// Overlapping Override scopes on the same Config are not supported: the
// config is single-writer by convention, and the last restore to run wins.
func (c *Config) Override(overrides map[string]any) (restore func(), err error) {
	original := c.Values()

	filtered := make(map[string]any, len(overrides))
	for key, value := range overrides {
		if _, ok := original[key]; ok {
			filtered[key] = value
		}
	}

	if err := c.Update(filtered); err != nil {
		return nil, err
	}

	return func() {
		// Snapshot values were read from this config post-validation, so
		// reinstating them cannot fail.
		for key, value := range original {
			c.values[key] = copyValue(value)
		}
	}, nil
}

// WithOverrides runs fn with overrides applied, restoring the original
// values on every exit path: normal return, error return, and panic. Errors
// from fn propagate unchanged after restoration completes.
//
// Another *Config may serve as the override source by passing its Values().
func (c *Config) WithOverrides(overrides map[string]any, fn func() error) error {
	restore, err := c.Override(overrides)
	if err != nil {
		return err
	}
	defer restore()
	return fn()
}
