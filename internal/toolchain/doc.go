// Package toolchain is the boundary to the external C toolchain.
//
// It turns registry projects and configs into structured argument lists and
// hands them to a Runner, which starts the compiler, linker driver or
// archiver as a blocking child process. The child's exit status is the only
// success signal. Nothing here goes through a shell, so paths with spaces or
// quotes need no escaping.
//
// Dependency discovery is a pluggable DependencyResolver. The default
// implementation asks the compiler for a make-style listing (-MM) and reads
// only the first line of its output; a compiler that wraps long listings onto
// continuation lines therefore reports a truncated set. This is a known
// limitation.
package toolchain
