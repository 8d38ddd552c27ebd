// Package config loads and validates experiment configurations.
//
// An experiment is a TOML file describing one training invocation: the
// runner (interpreter, script, repeat count), the training overrides, and
// the RLCT sampling hyperparameters. Fields that can carry a sweep axis
// (task type, sequence length, learning rate, flag strings) are held as
// opaque strings and forwarded to the training process verbatim; the
// launcher never splits or re-joins them.
//
// Experiments load either from an explicit path or as a named preset from
// the presets directory. Preset names are validated and resolved with
// path containment, so a name can never escape the presets directory.
package config
