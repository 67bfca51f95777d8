package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"monzo-webhooks-go/internal/common"
	"monzo-webhooks-go/pkg/monzo"

	"gopkg.in/yaml.v2"
)

// Fixture is one payload file listed in a manifest.
type Fixture struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
	Kind string `yaml:"kind"`
	// ExpectError names the decode failure the payload must produce, e.g.
	// "invalid_url". Empty means the payload must decode and round-trip.
	ExpectError string `yaml:"expect_error"`
}

type Manifest struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

var reasons = map[string]error{
	"malformed_json":     monzo.ErrMalformedJSON,
	"missing_field":      monzo.ErrMissingField,
	"type_mismatch":      monzo.ErrTypeMismatch,
	"invalid_url":        monzo.ErrInvalidURL,
	"invalid_timestamp":  monzo.ErrInvalidTimestamp,
	"invalid_emoji":      monzo.ErrInvalidEmoji,
	"unknown_event_type": monzo.ErrUnknownEventType,
}

// LoadManifest reads a YAML fixture manifest. Fixture files are resolved
// relative to the manifest's directory.
func LoadManifest(manifestFile string) ([]Fixture, error) {
	data, err := os.ReadFile(manifestFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", manifestFile, err)
	}

	var manifest Manifest
	if err := yaml.UnmarshalStrict(data, &manifest); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", manifestFile, err)
	}

	kinds := make(map[string]bool)
	for _, kind := range common.Kinds() {
		kinds[kind] = true
	}

	baseDir := filepath.Dir(manifestFile)
	for i, fixture := range manifest.Fixtures {
		if fixture.Name == "" {
			return nil, fmt.Errorf("fixture at index %d missing name", i)
		}
		if fixture.File == "" {
			return nil, fmt.Errorf("fixture %q missing file", fixture.Name)
		}
		if !kinds[fixture.Kind] {
			return nil, fmt.Errorf("fixture %q has unknown kind %q", fixture.Name, fixture.Kind)
		}
		if fixture.ExpectError != "" {
			if _, ok := reasons[fixture.ExpectError]; !ok {
				return nil, fmt.Errorf("fixture %q expects unknown error %q", fixture.Name, fixture.ExpectError)
			}
		}
		if !filepath.IsAbs(fixture.File) {
			manifest.Fixtures[i].File = filepath.Join(baseDir, fixture.File)
		}
	}

	return manifest.Fixtures, nil
}
