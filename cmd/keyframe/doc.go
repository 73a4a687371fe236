// Package main hosts the Keyframe CLI entrypoint and command graph.
//
// The Cobra-based command tree covers configuration scaffolding, validation,
// and inspection. It centralizes config resolution and runtime session
// bootstrap so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
