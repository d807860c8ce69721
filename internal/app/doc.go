// Package app wires application dependencies for the CLI.
//
// LoadConfig layers defaults, the YAML config file, environment variables
// and saved secrets into a Config. NewWire builds the credential provider,
// API client, UI store and flow service from it, exposing them via the Wire
// struct for commands to use.
package app
