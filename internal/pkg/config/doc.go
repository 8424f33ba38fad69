// Package config provides functionality for loading and managing application configuration.
//
// Settings are loaded from a yaml file with environment-variable overrides,
// validated, and made accessible throughout the application. Centralizing
// configuration here keeps the REST server and the admin CLI in sync.
package config
