package cfgio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/go-enigma/cracker/internal/plugboard"
	"github.com/go-enigma/cracker/internal/reflector"
	"github.com/go-enigma/cracker/internal/rotor"
)

// Configuration is the wire record for one machine setting: rotor
// identifiers, reflector, ring settings, plugboard pairs, and the
// starting display key.
type Configuration struct {
	Rotors    string `json:"Rotors"`
	Reflector string `json:"Reflector"`
	Ring      []int  `json:"Ring"`
	Plugboard string `json:"Plugboard"`
	Key       string `json:"Key"`
}

// RotorTags splits the space-joined Rotors field into rotor tags,
// validating each against the known inventory.
func (c Configuration) RotorTags() ([]rotor.Tag, error) {
	fields := strings.Fields(c.Rotors)
	if len(fields) == 0 {
		return nil, fmt.Errorf("configuration has no rotors")
	}
	tags := make([]rotor.Tag, len(fields))
	for i, f := range fields {
		tag := rotor.Tag(f)
		if !rotor.Known(tag) {
			return nil, fmt.Errorf("unknown rotor identifier %q", f)
		}
		tags[i] = tag
	}
	return tags, nil
}

// ReflectorTag validates and returns the configuration's reflector tag.
func (c Configuration) ReflectorTag() (reflector.Tag, error) {
	tag := reflector.Tag(c.Reflector)
	if !reflector.Known(tag) {
		return "", fmt.Errorf("unknown reflector identifier %q", c.Reflector)
	}
	return tag, nil
}

// PlugboardPairs parses the Plugboard wire field into a Plugboard.
func (c Configuration) PlugboardPairs() (*plugboard.Plugboard, error) {
	return plugboard.Parse(c.Plugboard)
}

// WithoutKey returns a copy of the configuration with Key cleared, used
// to detect whether two consecutive dictionary lines share the same
// non-key settings (so a stream can reuse the built machine).
func (c Configuration) WithoutKey() Configuration {
	c.Key = ""
	return c
}

// Equal reports whether c and other have identical fields. Ring is a
// slice, so Configuration is not comparable with ==.
func (c Configuration) Equal(other Configuration) bool {
	if c.Rotors != other.Rotors || c.Reflector != other.Reflector ||
		c.Plugboard != other.Plugboard || c.Key != other.Key {
		return false
	}
	if len(c.Ring) != len(other.Ring) {
		return false
	}
	for i := range c.Ring {
		if c.Ring[i] != other.Ring[i] {
			return false
		}
	}
	return true
}

// DecodeConfiguration validates line against the embedded Configuration
// schema and decodes it. line must be a single JSON object, no
// surrounding whitespace requirements.
func DecodeConfiguration(line string) (Configuration, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(line))
	if err != nil {
		return Configuration{}, &InvalidConfigurationError{Cause: fmt.Errorf("not valid JSON: %w", err)}
	}
	if err := configurationSchema.Validate(doc); err != nil {
		return Configuration{}, &InvalidConfigurationError{Cause: err}
	}

	var cfg Configuration
	if err := json.Unmarshal([]byte(line), &cfg); err != nil {
		return Configuration{}, &InvalidConfigurationError{Cause: err}
	}
	if _, err := cfg.RotorTags(); err != nil {
		return Configuration{}, &InvalidConfigurationError{Cause: err}
	}
	if _, err := cfg.ReflectorTag(); err != nil {
		return Configuration{}, &InvalidConfigurationError{Cause: err}
	}
	if _, err := cfg.PlugboardPairs(); err != nil {
		return Configuration{}, &InvalidConfigurationError{Cause: err}
	}
	if len(cfg.Ring) != len(strings.Fields(cfg.Rotors)) || len(cfg.Key) != len(strings.Fields(cfg.Rotors)) {
		return Configuration{}, &InvalidConfigurationError{
			Cause: fmt.Errorf("ring/key length must match rotor count (rotors=%d, ring=%d, key=%d)",
				len(strings.Fields(cfg.Rotors)), len(cfg.Ring), len(cfg.Key)),
		}
	}
	return cfg, nil
}

// EncodeConfiguration renders a Configuration back to its single-line
// wire form.
func EncodeConfiguration(cfg Configuration) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
