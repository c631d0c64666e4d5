package bumpversion

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrCheckFailed is returned when a transformed file fails its post-bump check.
var ErrCheckFailed = errors.New("check failed")

// checkYAMLVersion makes sure a bumped CI file is still YAML and that its
// top-level version key carries the new major.minor.
func checkYAMLVersion(before, after string, v Version) error {
	if _, err := topLevelScalar(before, "version"); err != nil {
		slog.Debug("skipping yaml check, original does not parse", "err", err)
		return nil
	}

	got, err := topLevelScalar(after, "version")
	if err != nil {
		return fmt.Errorf("%w: bumped file is not valid yaml: %w", ErrCheckFailed, err)
	}
	if got == "" {
		return nil
	}
	if !strings.HasPrefix(got, v.MajorMinor()) {
		return fmt.Errorf("%w: version is %q, want prefix %q", ErrCheckFailed, got, v.MajorMinor())
	}
	return nil
}

// topLevelScalar returns the scalar text of key in a YAML document whose root
// is a mapping. An empty string means the key is absent or not a scalar.
func topLevelScalar(doc, key string) (string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return "", err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return "", nil
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return "", nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key && m.Content[i+1].Kind == yaml.ScalarNode {
			return m.Content[i+1].Value, nil
		}
	}
	return "", nil
}
