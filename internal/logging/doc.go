// Package logging assembles the structured slog loggers and console sinks
// used across Keyframe.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and clamps noisy helper subsystems to info so their debug chatter never
// reaches the terminal. The Console type replaces direct fmt printing for
// user-facing output, with a separate error console on stderr.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape and routing.
package logging
