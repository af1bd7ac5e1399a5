// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface that fills it from a
// configuration file.
//
// A nil field in Model means the file did not set it. The app package
// decides precedence between file values, command-line flags and defaults.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
