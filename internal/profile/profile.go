// Package profile loads criterion weights and impacts from a YAML file,
// as an alternative to passing them on the command line.
package profile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile holds the weight and impact vectors for one scoring run.
type Profile struct {
	Weights []float64 `yaml:"weights"`
	Impacts []string  `yaml:"impacts"`
}

// Loader handles loading and validation of scoring profiles
type Loader struct {
	profile *Profile
}

// NewLoader creates a new profile loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile loads a scoring profile from a YAML file.
func (l *Loader) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse YAML profile: %w", err)
	}

	if err := validateProfile(&profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	l.profile = &profile
	return nil
}

// Profile returns the loaded profile, or nil before a successful load.
func (l *Loader) Profile() *Profile {
	return l.profile
}

func validateProfile(p *Profile) error {
	if len(p.Weights) == 0 {
		return fmt.Errorf("profile has no weights")
	}
	if len(p.Weights) != len(p.Impacts) {
		return fmt.Errorf("profile has %d weights but %d impacts", len(p.Weights), len(p.Impacts))
	}
	for i, w := range p.Weights {
		if w <= 0 {
			return fmt.Errorf("weight %d must be positive, got %v", i+1, w)
		}
	}
	for i, imp := range p.Impacts {
		if imp != "+" && imp != "-" {
			return fmt.Errorf("impact %d must be + or -, got %q", i+1, imp)
		}
	}
	return nil
}

// WeightsArg renders the weights as the comma-separated form the
// validator consumes, so profile and command-line input share one path.
func (p *Profile) WeightsArg() string {
	parts := make([]string, len(p.Weights))
	for i, w := range p.Weights {
		parts[i] = strconv.FormatFloat(w, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// ImpactsArg renders the impacts as the comma-separated form the
// validator consumes.
func (p *Profile) ImpactsArg() string {
	return strings.Join(p.Impacts, ",")
}
