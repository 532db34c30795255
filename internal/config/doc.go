// Package config defines the format-agnostic build description model and
// the Loader interface implemented by the declarative description formats.
//
// A Model is replayed onto a registry with Populate, which goes through the
// same declaration calls a Go build description would make. Ordering and
// duplicate handling are therefore identical whichever way a build is
// described.
package config
