// Package cli turns command-line arguments and the environment into an
// app.Config. It knows nothing about building; exit codes for invalid input
// are carried by ExitError.
package cli
