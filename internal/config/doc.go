// Package config defines connection settings used by the rover binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC and UDP endpoints; the embedded Tuning type
// holds the control-loop parameters (thresholds, periods, maneuver shape).
// Omitted tuning values fall back to defaults during validation, so partial
// configuration files are safe.
package config
