// Package config owns the layered configuration model for Keyframe.
//
// A fixed registry of typed, constrained options is digested from defaults,
// the user file, and a project-local file into a single Config whose key set
// never changes afterwards. The live Config is shared by reference across
// the toolkit and mutated strictly in place; Override provides temporary,
// automatically reverted value changes for a bounded scope.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical colors, and clear validation errors.
package config
