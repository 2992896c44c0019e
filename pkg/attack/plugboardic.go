// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package attack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/configstream"
	"github.com/go-enigma/cracker/pkg/scoring"
)

const plugPairsPerLine = (26 * 25) / 2

// PlugboardIC runs the plugboard IC attack over a DictPlug stream: for
// each of nbLines dictionary lines it scores all 325 single-pair
// plugboards by index of coincidence, keeps the model.Plugboard pairs
// with the highest score, and emits one configuration per line carrying
// that chain as its Plugboard field.
func PlugboardIC(s *configstream.Stream, model cfgio.Model, nbLines int) ([]cfgio.Configuration, error) {
	results := make([]cfgio.Configuration, 0, nbLines)

	for line := 0; line < nbLines; line++ {
		type scoredPair struct {
			ic   float64
			plug string
		}
		scored := make([]scoredPair, 0, plugPairsPerLine)
		var lastCfg cfgio.Configuration

		for n := 0; n < plugPairsPerLine; n++ {
			text, cfg, ok, err := s.Next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("attack: dictionary exhausted before completing line %d", line)
			}
			scored = append(scored, scoredPair{ic: scoring.IC(text), plug: cfg.Plugboard})
			lastCfg = cfg
		}

		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].ic != scored[j].ic {
				return scored[i].ic < scored[j].ic
			}
			return scored[i].plug < scored[j].plug
		})

		take := model.Plugboard
		if take > len(scored) {
			take = len(scored)
		}
		top := scored[len(scored)-take:]
		pairs := make([]string, len(top))
		for i, p := range top {
			pairs[i] = p.plug
		}

		cfg := lastCfg
		cfg.Plugboard = strings.Join(pairs, " ")
		results = append(results, cfg)
	}

	return results, nil
}
