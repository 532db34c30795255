// Package app contains the core application logic. It wires the registry,
// the toolchain, the staleness oracle, the builder and the bootstrap guard
// together behind an App, decoupled from any specific entrypoint such as the
// launcher binary or an embedded build description.
package app
