// Package commands defines the shapes CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hello          Call the hello endpoint once and print the outcome
//   - shape          Fetch a shape once and print it
//   - ui             Interactive screen; h for hello, s for shape
//   - profile save   Encrypt the API key and site keys under a passphrase
//   - profile show   Print fingerprints of the saved secrets
//
// # Implementation
//
// The root command loads the config (home/config.yaml, then SHAPES_*
// variables, then flags) and builds the logger and tracer before any
// subcommand runs. Commands that call the API build their dependency graph
// with app.NewWire after filling secrets from the profile when a passphrase
// is given.
package commands
