// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, and TASKBOARD_ environment
// variables. It provides type-safe access to the settings the server,
// the timeout sweeper, and the task store need.
package config
