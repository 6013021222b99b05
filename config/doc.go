// Package config loads chainkit configuration from YAML files,
// .env files, and environment variables, in that order of precedence
// (environment wins).
//
// The shape every consumer follows: a struct with mapstructure tags,
// an ApplyDefaults method, and a Validate method. Load resolves the
// files, unmarshals through viper, applies defaults, and validates.
package config
