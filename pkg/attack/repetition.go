// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package attack

import (
	"strings"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/configstream"
)

// ParseRepeatedText splits a composite repeated-plaintext argument into
// its identical-length fragments and the filler length that follows
// each one. Colon-separated text ("MOV:RGA") yields zero gaps between
// adjacent fragments; dot-padded text ("NOBCB.....MHJBD") yields a gap
// equal to the run length of dots between fragments, with the final
// gap always zero (nothing follows the last fragment).
func ParseRepeatedText(s string) ([]string, []int, error) {
	switch {
	case strings.Contains(s, ":"):
		fragments := strings.Split(s, ":")
		return fragments, make([]int, len(fragments)), nil

	case strings.Contains(s, "."):
		parts := strings.Split(s, ".")
		var rawGaps []int
		var fragments []string
		counter := 0
		for _, p := range parts {
			if p == "" {
				counter++
				continue
			}
			rawGaps = append(rawGaps, counter+1)
			fragments = append(fragments, p)
			counter = 0
		}
		var gaps []int
		if len(rawGaps) > 0 {
			gaps = append(gaps, rawGaps[1:]...)
		}
		gaps = append(gaps, 0)
		return fragments, gaps, nil

	default:
		return nil, nil, &cfgio.MalformedInputError{
			Message: "repeated text must use ':' or '.' as the repetition separator",
		}
	}
}

// Repetition runs the repeated-plaintext attack: s must decrypt
// fragments[0] for each candidate configuration. For every candidate, a
// pad built from that decrypt and 'x' filler of each gap length is
// re-encrypted from the candidate's own starting key, and the
// configuration is emitted only if every re-encrypted fragment matches
// the corresponding original fragment exactly.
func Repetition(s *configstream.Stream, fragments []string, gaps []int) ([]cfgio.Configuration, error) {
	if len(fragments) == 0 || len(fragments) != len(gaps) {
		return nil, &cfgio.MalformedInputError{Message: "repeated text fragments and gaps must be the same non-zero length"}
	}
	fragLen := len(fragments[0])

	var results []cfgio.Configuration
	for {
		decrypt0, cfg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		var query strings.Builder
		for _, gap := range gaps {
			query.WriteString(decrypt0)
			query.WriteString(strings.Repeat("x", gap))
		}
		reencrypted, err := s.Reprocess(query.String())
		if err != nil {
			return nil, err
		}

		matched := true
		offset := 0
		for i, frag := range fragments {
			if offset+fragLen > len(reencrypted) {
				matched = false
				break
			}
			if reencrypted[offset:offset+fragLen] != frag {
				matched = false
				break
			}
			offset += fragLen + gaps[i]
		}
		if matched {
			results = append(results, cfg)
		}
	}
	return results, nil
}
