// Package keyderivation implements the three bulk dictionary
// transforms: enumerating every key for a fixed configuration family,
// shifting a dictionary's keys backward by a fixed number of steps, and
// recovering a daily key from a ciphered key string.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package keyderivation

import (
	"fmt"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/internal/keyarith"
	"github.com/go-enigma/cracker/pkg/configstream"
	"github.com/go-enigma/cracker/pkg/machine"
)

// AllKeys walks the DictBrute enumeration for the first n steps over
// dict and model, deduplicating identical configurations. Unlike the
// source's hash-ordered Python set, the result preserves first-seen
// order, so output is deterministic across runs.
func AllKeys(dict string, model cfgio.Model, n int) ([]cfgio.Configuration, error) {
	s, err := configstream.NewDictBrute("A", model, dict)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, n)
	var results []cfgio.Configuration
	for i := 0; i < n; i++ {
		_, cfg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		enc, err := cfgio.EncodeConfiguration(cfg)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[enc]; dup {
			continue
		}
		seen[enc] = struct{}{}
		results = append(results, cfg)
	}
	return results, nil
}

// ModifyKeys applies keyarith.DecreaseKey shift times to the Key of
// each of the first n lines in dict, using each line's own Rotors field
// for notch propagation.
func ModifyKeys(dict string, shift, n int) ([]cfgio.Configuration, error) {
	lines, err := cfgio.ReadDictionary(dict)
	if err != nil {
		return nil, err
	}
	if n > len(lines) {
		n = len(lines)
	}

	results := make([]cfgio.Configuration, 0, n)
	for i := 0; i < n; i++ {
		cfg, err := cfgio.DecodeConfiguration(lines[i])
		if err != nil {
			return nil, err
		}
		rotors, err := cfg.RotorTags()
		if err != nil {
			return nil, err
		}
		key := cfg.Key
		for s := 0; s < shift; s++ {
			key = keyarith.DecreaseKey(key, rotors)
		}
		cfg.Key = key
		results = append(results, cfg)
	}
	return results, nil
}

// CalcKeys treats every line of dict as a daily key configuration and
// uses it to decrypt cipheredKey, overwriting that line's Key field
// with the result. It processes every line in dict, independent of any
// caller-supplied step bound, matching the source's CalcKeys (which
// loops over the full file regardless of its progress-bar size hint).
func CalcKeys(dict, cipheredKey string) ([]cfgio.Configuration, error) {
	lines, err := cfgio.ReadDictionary(dict)
	if err != nil {
		return nil, err
	}

	results := make([]cfgio.Configuration, 0, len(lines))
	for i, line := range lines {
		cfg, err := cfgio.DecodeConfiguration(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		m, err := machine.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		clearKey, err := m.Process(cipheredKey, cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cfg.Key = clearKey
		results = append(results, cfg)
	}
	return results, nil
}
