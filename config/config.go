// Package config loads environment profiles: the user agent, event model
// and handler-slot behaviour a host presents to the helpers.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chrisuehlinger/vanillautils/vanilla"
)

var (
	// ErrUnknownEventModel is returned for an event_model outside auto, w3c, legacy, property.
	ErrUnknownEventModel = errors.New("unknown event model")
	// ErrUnknownPreset is returned by Preset for an unregistered name.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Profile describes a host environment.
type Profile struct {
	Name                string             `yaml:"name"`
	UserAgent           string             `yaml:"user_agent"`
	EventModel          vanilla.EventModel `yaml:"event_model"`
	LegacyHandlerParity bool               `yaml:"legacy_handler_parity"`
}

var presets = map[string]Profile{
	"modern": {
		Name:       "modern",
		UserAgent:  "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		EventModel: vanilla.ModelW3C,
	},
	"ie8": {
		Name:       "ie8",
		UserAgent:  "Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1; Trident/4.0)",
		EventModel: vanilla.ModelLegacy,
	},
	"ancient": {
		Name:                "ancient",
		UserAgent:           "Mozilla/4.0 (compatible; MSIE 4.01; Windows 98)",
		EventModel:          vanilla.ModelProperty,
		LegacyHandlerParity: true,
	},
}

// Default returns the "modern" preset.
func Default() Profile {
	return presets["modern"]
}

// Preset returns a built-in profile by name.
func Preset(name string) (Profile, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// PresetNames lists the built-in profiles in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and validates a YAML profile from path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile. Missing fields take the values of Default,
// except that an explicit profile without event_model uses auto detection.
func Parse(data []byte) (Profile, error) {
	p := Default()
	p.Name = ""
	p.EventModel = vanilla.ModelAuto
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	p.EventModel = vanilla.EventModel(strings.ToLower(string(p.EventModel)))
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the event model.
func (p Profile) Validate() error {
	switch p.EventModel {
	case "", vanilla.ModelAuto, vanilla.ModelW3C, vanilla.ModelLegacy, vanilla.ModelProperty:
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownEventModel, p.EventModel)
}

// Environment turns the profile into a vanilla.Environment. ambient and
// probe come from the host; probe is only consulted for the auto model.
func (p Profile) Environment(ambient vanilla.AmbientEventFunc, probe any) vanilla.Environment {
	return vanilla.Environment{
		UserAgent:           p.UserAgent,
		EventModel:          p.EventModel,
		Probe:               probe,
		Ambient:             ambient,
		LegacyHandlerParity: p.LegacyHandlerParity,
	}
}

// Marshal encodes the profile as YAML.
func (p Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
