package bumpversion

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/mod/semver"
)

// Meta holds metadata about a bump operation.
type Meta struct {
	OldVersion   string       // Version found in the build configuration before bumping, if any.
	NewVersion   string       // The version that was propagated.
	UpdatedFiles []string     // Resolved paths written (or that would be written), in target order.
	Changes      []FileChange // Per-file detail, in target order.
}

// FileChange describes what a bump did to one target file.
type FileChange struct {
	Path    string
	Changed bool           // Content differs from what was on disk.
	Matches map[string]int // Replacement count per rule name.
}

// Bumper propagates a version into a set of target files under Root.
type Bumper struct {
	Root    string
	Targets []Target

	writeFile func(name string, data []byte, perm os.FileMode) error
}

// New returns a Bumper for the gmio project files under root.
func New(root string) *Bumper {
	return &Bumper{
		Root:    root,
		Targets: GmioTargets(),
	}
}

type pending struct {
	path   string
	perm   os.FileMode
	before []byte
	after  []byte
}

// Path resolves a target path against the project root.
func (b *Bumper) Path(t Target) string {
	return filepath.Join(b.Root, t.Path)
}

// plan reads and transforms every target in memory. Nothing is written.
func (b *Bumper) plan(v Version) ([]pending, Meta, error) {
	meta := Meta{NewVersion: v.String()}
	plans := make([]pending, 0, len(b.Targets))

	for _, t := range b.Targets {
		path := b.Path(t)
		info, err := os.Stat(path)
		if err != nil {
			return nil, meta, fmt.Errorf("reading %s %s: %w", t.Name, path, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, meta, fmt.Errorf("reading %s %s: %w", t.Name, path, err)
		}

		before := string(data)
		if meta.OldVersion == "" && t.Current != nil {
			if old, ok := t.Current(before); ok {
				meta.OldVersion = old.String()
			}
		}

		after, counts := t.Transform(before, v)

		matched := 0
		for _, n := range counts {
			matched += n
		}
		if t.Check != nil && matched > 0 {
			if err := t.Check(before, after, v); err != nil {
				return nil, meta, fmt.Errorf("%s %s: %w", t.Name, path, err)
			}
		}

		plans = append(plans, pending{
			path:   path,
			perm:   info.Mode().Perm(),
			before: data,
			after:  []byte(after),
		})
		meta.UpdatedFiles = append(meta.UpdatedFiles, path)
		meta.Changes = append(meta.Changes, FileChange{
			Path:    path,
			Changed: before != after,
			Matches: counts,
		})
	}

	warnDowngrade(meta.OldVersion, meta.NewVersion)
	return plans, meta, nil
}

// Run bumps every target to v. All files are read and transformed before the
// first write; if a write fails, every file written so far, the failed one
// included, is restored.
func (b *Bumper) Run(v Version) (Meta, error) {
	plans, meta, err := b.plan(v)
	if err != nil {
		meta.UpdatedFiles = nil
		meta.Changes = nil
		return meta, err
	}

	write := b.writeFile
	if write == nil {
		write = os.WriteFile
	}

	for i, p := range plans {
		if err := write(p.path, p.after, p.perm); err != nil {
			meta.UpdatedFiles = nil
			meta.Changes = nil
			return meta, restore(write, plans[:i+1], fmt.Errorf("writing %s: %w", p.path, err))
		}
		slog.Debug("wrote file", "file", p.path, "bytes", len(p.after))
	}

	return meta, nil
}

// restore writes back the original content of done, including the file whose
// write failed since it may have been truncated. Restore failures are appended
// to cause.
func restore(write func(string, []byte, os.FileMode) error, done []pending, cause error) error {
	var merr *multierror.Error
	for _, p := range done {
		slog.Warn("restoring file", "file", p.path)
		if err := write(p.path, p.before, p.perm); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("restoring %s: %w", p.path, err))
		}
	}
	if merr == nil {
		return cause
	}
	return multierror.Append(cause, merr.Errors...)
}

// DryRun computes the same result as Run without writing anything.
func (b *Bumper) DryRun(v Version) (Meta, error) {
	_, meta, err := b.plan(v)
	if err != nil {
		meta.UpdatedFiles = nil
		meta.Changes = nil
	}
	return meta, err
}

// Run bumps the gmio project files under root to v.
func Run(root string, v Version) (Meta, error) {
	return New(root).Run(v)
}

// DryRun reports what Run would do without modifying any file.
func DryRun(root string, v Version) (Meta, error) {
	return New(root).DryRun(v)
}

var cmakeVersionRe = regexp.MustCompile(`set\(GMIO_VERSION_(MAJOR|MINOR|PATCH)\s+(\d+)\)`)

// CMakeVersion extracts the version declared by the set(GMIO_VERSION_*) lines.
// It reports false unless all three fields are present.
func CMakeVersion(content string) (Version, bool) {
	var v Version
	seen := 0
	for _, m := range cmakeVersionRe.FindAllStringSubmatch(content, -1) {
		var field *string
		switch m[1] {
		case "MAJOR":
			field = &v.Major
		case "MINOR":
			field = &v.Minor
		case "PATCH":
			field = &v.Patch
		}
		if *field == "" {
			*field = m[2]
			seen++
		}
	}
	if seen != 3 {
		return Version{}, false
	}
	return v, true
}

func warnDowngrade(oldVersion, newVersion string) {
	if oldVersion == "" {
		return
	}
	o, n := "v"+oldVersion, "v"+newVersion
	if !semver.IsValid(o) || !semver.IsValid(n) {
		return
	}
	if semver.Compare(n, o) < 0 {
		slog.Warn("new version is lower than the current one", "old", oldVersion, "new", newVersion)
	}
}

// DefaultRoot returns the parent of the directory holding the running
// executable, so a binary installed in <project>/scripts bumps <project>.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ".."), nil
}
