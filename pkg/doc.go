// Package bumpversion provides a library for propagating a version number into
// the metadata files of the gmio project.
//
// It provides functionalities for:
//   - Parsing a "major.minor.patch" argument into its three components, kept as the
//     substrings given (no numeric validation unless strict semver is requested).
//   - Describing target files as a path plus an ordered list of regular expression
//     rules whose first capture group is preserved verbatim.
//   - Rewriting CMakeLists.txt, README.md and appveyor.yml in full, reading and
//     transforming all of them before the first write and restoring earlier files
//     if a later write fails.
//   - Simulating a bump with DryRun.
//
// Usage Example:
//
//	import (
//	    "log"
//	    bumpversion "github.com/fougue/gmio-bumpversion/pkg"
//	)
//
//	func main() {
//	    v, err := bumpversion.ParseVersion("0.4.1")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    meta, err := bumpversion.Run("/path/to/gmio", v)
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Println("bumped", meta.UpdatedFiles)
//	}
package bumpversion
