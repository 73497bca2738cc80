// Package config loads client configuration.
//
// Resolution order: YAML file (with ${VAR} expansion) -> FOREZY_* env
// overrides -> defaults -> validation. A missing config file is not an
// error; the client runs fine on defaults alone.
package config
