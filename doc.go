// Package kiln is an embeddable incremental build engine for C projects.
//
// A build is described by a small Go program, conventionally kiln/build.go,
// whose main function hands a describe callback to Main:
//
//	func main() {
//		os.Exit(kiln.Main(func(s *kiln.Session) error {
//			s.DeclareProject("app", kiln.Application).
//				AddWildcard("src/**.c").
//				DeclareConfig("debug", "bin/debug", "obj/debug").
//				AddFlag("-g")
//			return nil
//		}))
//	}
//
// Main rebuilds and relaunches the program when kiln/build.go is newer than
// the running binary, then compiles every stale source and links, archives
// or combines the objects of each config. A source is stale when its object
// is missing, older than the running binary, or older than any header the
// compiler reports for it.
//
// Sessions can also load declarative descriptions (HCL, YAML or JSON with
// comments) with Session.Load.
package kiln
