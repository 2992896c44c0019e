package cfgio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/go-enigma/cracker/internal/reflector"
	"github.com/go-enigma/cracker/internal/rotor"
)

// Model is the wire record describing an admissible family of machine
// configurations: the allowed rotor inventory, how many rotors a
// configuration uses, whether a rotor may repeat, the allowed
// reflectors, and the plugboard-IC attack's target pair count.
type Model struct {
	Rotors      []string `json:"Rotors"`
	RotorsCount int      `json:"RotorsCount"`
	Duplicates  bool     `json:"Duplicates"`
	Reflectors  []string `json:"Reflectors"`
	Plugboard   int      `json:"Plugboard"`
}

// DefaultModel is the M3 family the CLI falls back to when no --model
// flag is given.
func DefaultModel() Model {
	return Model{
		Rotors:      []string{"I", "II", "III", "IV", "V"},
		RotorsCount: 3,
		Duplicates:  false,
		Reflectors:  []string{"B", "C"},
		Plugboard:   6,
	}
}

// RotorTags validates and returns the model's rotor inventory as tags.
func (m Model) RotorTags() ([]rotor.Tag, error) {
	tags := make([]rotor.Tag, len(m.Rotors))
	for i, f := range m.Rotors {
		tag := rotor.Tag(f)
		if !rotor.Known(tag) {
			return nil, fmt.Errorf("unknown rotor identifier %q", f)
		}
		tags[i] = tag
	}
	return tags, nil
}

// ReflectorTags validates and returns the model's reflector inventory
// as tags.
func (m Model) ReflectorTags() ([]reflector.Tag, error) {
	tags := make([]reflector.Tag, len(m.Reflectors))
	for i, f := range m.Reflectors {
		tag := reflector.Tag(f)
		if !reflector.Known(tag) {
			return nil, fmt.Errorf("unknown reflector identifier %q", f)
		}
		tags[i] = tag
	}
	return tags, nil
}

// DecodeModel validates data against the embedded Model schema and
// decodes it.
func DecodeModel(data string) (Model, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(data))
	if err != nil {
		return Model{}, &InvalidConfigurationError{Cause: fmt.Errorf("not valid JSON: %w", err)}
	}
	if err := modelSchema.Validate(doc); err != nil {
		return Model{}, &InvalidConfigurationError{Cause: err}
	}

	var model Model
	if err := json.Unmarshal([]byte(data), &model); err != nil {
		return Model{}, &InvalidConfigurationError{Cause: err}
	}
	if _, err := model.RotorTags(); err != nil {
		return Model{}, &InvalidConfigurationError{Cause: err}
	}
	if _, err := model.ReflectorTags(); err != nil {
		return Model{}, &InvalidConfigurationError{Cause: err}
	}
	if !model.Duplicates && model.RotorsCount > len(model.Rotors) {
		return Model{}, &InvalidConfigurationError{
			Cause: fmt.Errorf("rotors count %d exceeds inventory size %d with duplicates disabled", model.RotorsCount, len(model.Rotors)),
		}
	}
	return model, nil
}
