/*
Package builder drives an incremental build over a sealed registry.

A build walks the declared projects in order. For each project it resolves the
source set by matching the project's wildcards against the working tree, then
builds every config in turn:

 1. Compile: the object directory is created on demand and every source the
    staleness oracle reports as not already compiled is handed to the
    compiler. The first failing compile aborts the remaining compiles of that
    config.

 2. Post-compile: the object directory is scanned afresh and every object
    file found there, not only the ones produced by this run, is linked into
    an executable, archived into a static library or combined into a shared
    library depending on the project type.

Failures are recorded and aggregated into a Result. They never stop sibling
configs or later projects, so a single run reports as many problems as
possible.
*/
package builder
