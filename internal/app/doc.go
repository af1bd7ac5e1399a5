// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the single batch run that reads the grid,
// analyses it, and prints the report, decoupled from any specific entrypoint
// like a CLI.
package app
