// Package hcl loads build descriptions written in HCL.
//
//	project "app" {
//	  type  = "application"
//	  files = ["src/**.c"]
//	  links = os == "windows" ? ["ws2_32"] : ["m"]
//
//	  config "debug" {
//	    target_dir = "bin/debug"
//	    obj_dir    = "obj/debug"
//	    flags      = ["-g"]
//	  }
//	}
//
// Expressions are evaluated with the variables os and arch (the host
// GOOS/GOARCH), an object host carrying both plus the CPU count, and the
// functions env, upper, lower, join, concat and format.
package hcl
