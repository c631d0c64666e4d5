package bumpversion

import (
	"log/slog"
	"regexp"
	"strings"
)

// Rule is a single pattern substitution applied to the text of a target file.
// The first capture group of Pattern is the prefix kept verbatim.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// All replaces every occurrence instead of the first one only.
	All bool
	// Replace builds the replacement for one match from its submatches.
	// The result is inserted literally.
	Replace func(v Version, groups []string) string
}

// Apply runs the rule against content and returns the new text along with
// the number of replaced matches.
func (r Rule) Apply(content string, v Version) (string, int) {
	n := 1
	if r.All {
		n = -1
	}
	locs := r.Pattern.FindAllStringSubmatchIndex(content, n)
	if len(locs) == 0 {
		return content, 0
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = content[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(content[last:loc[0]])
		b.WriteString(r.Replace(v, groups))
		last = loc[1]
	}
	b.WriteString(content[last:])
	return b.String(), len(locs)
}

// Target describes one managed file: where it lives relative to the project
// root and which rules rewrite it.
type Target struct {
	Name  string
	Path  string
	Rules []Rule
	// Check, when set, validates the transformed text before anything is
	// written. It only runs when at least one rule matched.
	Check func(before, after string, v Version) error
	// Current, when set, reads the version the file declares before bumping.
	Current func(content string) (Version, bool)
}

// Transform applies every rule of t in order. The returned map holds the
// match count per rule name.
func (t Target) Transform(content string, v Version) (string, map[string]int) {
	counts := make(map[string]int, len(t.Rules))
	for _, r := range t.Rules {
		var n int
		content, n = r.Apply(content, v)
		counts[r.Name] = n
		if n == 0 {
			slog.Warn("pattern not found", "file", t.Path, "rule", r.Name)
		} else {
			slog.Debug("pattern replaced", "file", t.Path, "rule", r.Name, "count", n)
		}
	}
	return content, counts
}

func keepPrefix(value func(Version) string) func(Version, []string) string {
	return func(v Version, g []string) string {
		return g[1] + value(v)
	}
}

func cmakeRule(field string, value func(Version) string) Rule {
	return Rule{
		Name:    "GMIO_VERSION_" + field,
		Pattern: regexp.MustCompile(`(set\(GMIO_VERSION_` + field + `\s+)\d+`),
		Replace: keepPrefix(value),
	}
}

// CMakeTarget rewrites the three set(GMIO_VERSION_*) lines of CMakeLists.txt.
func CMakeTarget() Target {
	return Target{
		Name: "build configuration",
		Path: "CMakeLists.txt",
		Rules: []Rule{
			cmakeRule("MAJOR", func(v Version) string { return v.Major }),
			cmakeRule("MINOR", func(v Version) string { return v.Minor }),
			cmakeRule("PATCH", func(v Version) string { return v.Patch }),
		},
		Current: CMakeVersion,
	}
}

// ReadmeTarget rewrites the version badge and every documentation link of README.md.
func ReadmeTarget() Target {
	return Target{
		Name: "documentation",
		Path: "README.md",
		Rules: []Rule{
			{
				Name:    "version badge",
				Pattern: regexp.MustCompile(`(img\.shields\.io/badge/version-v)\d+\.\d+\.\d+`),
				Replace: keepPrefix(Version.String),
			},
			{
				Name:    "docs url",
				Pattern: regexp.MustCompile(`(www\.fougue\.pro/docs/gmio/)\d+\.\d+`),
				All:     true,
				Replace: keepPrefix(Version.MajorMinor),
			},
		},
	}
}

// AppveyorTarget rewrites the "version: <major>.<minor>_build" line of appveyor.yml.
// The patch component is not part of the CI build version.
func AppveyorTarget() Target {
	return Target{
		Name: "CI configuration",
		Path: "appveyor.yml",
		Rules: []Rule{
			{
				Name:    "build version",
				Pattern: regexp.MustCompile(`(version:\s+)\d+\.\d+(_build)`),
				Replace: func(v Version, g []string) string {
					return g[1] + v.MajorMinor() + g[2]
				},
			},
		},
		Check: checkYAMLVersion,
	}
}

// GmioTargets returns the managed files in the order they are bumped.
func GmioTargets() []Target {
	return []Target{CMakeTarget(), ReadmeTarget(), AppveyorTarget()}
}
