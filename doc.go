// Package main implements the gmio-bumpversion CLI tool.
//
// The gmio-bumpversion tool propagates a "major.minor.patch" version number into the
// metadata files of the gmio project by targeted text substitution. It prints the three
// version components, then rewrites, in order:
//
//   - CMakeLists.txt: the set(GMIO_VERSION_MAJOR ...), set(GMIO_VERSION_MINOR ...) and
//     set(GMIO_VERSION_PATCH ...) lines.
//   - README.md: the img.shields.io version badge (full version) and every
//     www.fougue.pro/docs/gmio/<major>.<minor> link.
//   - appveyor.yml: the "version: <major>.<minor>_build" line. The patch component is
//     not part of the CI build version.
//
// Each rewritten file is reported as "Bumped <path>". All three files are read and
// transformed before the first one is written; if a write fails, the files already
// written and the one that failed are restored.
//
// Command Usage:
//
//	gmio-bumpversion [flags] <major.minor.patch>
//
// Flags:
//
//	--root:       Project root holding the three files. Defaults to the parent of the
//	              directory containing the executable.
//	--dry:        Report what would be bumped without writing anything.
//	--strict:     Reject versions that are not valid semver (e.g. "1.x.0").
//	--log-level:  debug, info, warn or error. Defaults to $GMIO_BUMPVERSION_LOG_LEVEL or "warn".
//	--log-format: text, logfmt or json. Defaults to $GMIO_BUMPVERSION_LOG_FORMAT or "text".
//	--version:    Displays the version of the tool and exits.
//
// Errors:
//
// A missing argument prints "Error: no version argument" and a version that does not
// split into exactly three dot-separated parts prints
// "Error: wrong version format(maj.min.patch)". Both go to standard output, no file is
// touched and the exit status is 1. File errors are printed on standard error, also
// with exit status 1.
//
// Examples:
//
//	# Bump the project the binary lives in (installed as <gmio>/scripts/gmio-bumpversion)
//	gmio-bumpversion 0.4.1
//
//	# Bump a checkout elsewhere, without writing
//	gmio-bumpversion --root ~/src/gmio --dry 0.5.0
package main
