// Package configstream provides the four configuration enumeration
// strategies attacks iterate over: a full cartesian brute force, a
// dictionary of fixed configurations, a dictionary crossed with every
// key, and a dictionary crossed with every plugboard pair.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package configstream

import (
	"fmt"

	"github.com/go-enigma/cracker/internal/cfgio"
	"github.com/go-enigma/cracker/pkg/machine"
	"github.com/go-enigma/cracker/pkg/model"
)

// Kind distinguishes the four enumeration strategies. Modelled as a
// tagged variant with a uniform Next() contract rather than Python's
// reassigned-method-pointer dispatch.
type Kind int

const (
	Brute Kind = iota
	Dict
	DictBrute
	DictPlug
)

// Stream is a finite, non-restartable source of (decrypted text,
// configuration) pairs. Each Stream owns exactly one Machine at a time;
// it is not safe for concurrent use.
type Stream struct {
	kind Kind
	text string

	// Brute
	orderings    [][]string
	reflectors   []string
	rotorsCount  int
	keysTotal    int
	step         int
	totalSteps   int
	builtOrderIx int
	builtReflIx  int

	// Dict / DictBrute / DictPlug
	lines   []string
	lineIdx int

	// Dict
	hasLastCfg bool
	lastCfg    cfgio.Configuration

	// DictBrute
	keyIdx int

	// DictPlug
	pairIdx int
	pairs   [][2]byte
	dictCfg cfgio.Configuration

	machine *machine.Machine
	lastKey string
	done    bool
}

// NewBrute builds a full cartesian enumeration over model's rotor
// orderings, reflectors, and every key, with ring fixed to zero and an
// empty plugboard.
func NewBrute(text string, m cfgio.Model) (*Stream, error) {
	if _, err := m.RotorTags(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	if _, err := m.ReflectorTags(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}

	orderings := model.RotorOrderings(m)
	if len(orderings) == 0 {
		return nil, fmt.Errorf("model produces no rotor orderings")
	}
	keysTotal := 1
	for i := 0; i < m.RotorsCount; i++ {
		keysTotal *= 26
	}

	s := &Stream{
		kind:         Brute,
		text:         text,
		orderings:    orderings,
		reflectors:   m.Reflectors,
		rotorsCount:  m.RotorsCount,
		keysTotal:    keysTotal,
		totalSteps:   len(orderings) * len(m.Reflectors) * keysTotal,
		builtOrderIx: -1,
		builtReflIx:  -1,
	}
	return s, nil
}

// NewDict reads one configuration per line from path and yields each
// verbatim after constructing a (possibly reused) Machine.
func NewDict(text, path string) (*Stream, error) {
	lines, err := cfgio.ReadDictionary(path)
	if err != nil {
		return nil, err
	}
	return &Stream{kind: Dict, text: text, lines: lines}, nil
}

// NewDictBrute reads configurations from path and, for each, enumerates
// all 26^R keys, reusing one Machine across keys for the same line.
func NewDictBrute(text string, m cfgio.Model, path string) (*Stream, error) {
	lines, err := cfgio.ReadDictionary(path)
	if err != nil {
		return nil, err
	}
	return &Stream{kind: DictBrute, text: text, lines: lines, rotorsCount: m.RotorsCount, keyIdx: -1}, nil
}

// NewDictPlug reads configurations from path and, for each, enumerates
// every one of the 325 unordered letter pairs as a single-pair
// plugboard, building a fresh Machine per pair.
func NewDictPlug(text, path string) (*Stream, error) {
	lines, err := cfgio.ReadDictionary(path)
	if err != nil {
		return nil, err
	}
	return &Stream{kind: DictPlug, text: text, lines: lines, pairs: allPlugPairs(), pairIdx: -1}, nil
}

// Next advances the stream by one step, returning the decrypted text
// and the configuration (with its Key field populated) that produced
// it. ok is false once the stream is exhausted.
func (s *Stream) Next() (text string, cfg cfgio.Configuration, ok bool, err error) {
	if s.done {
		return "", cfgio.Configuration{}, false, nil
	}
	switch s.kind {
	case Brute:
		return s.nextBrute()
	case Dict:
		return s.nextDict()
	case DictBrute:
		return s.nextDictBrute()
	case DictPlug:
		return s.nextDictPlug()
	default:
		return "", cfgio.Configuration{}, false, fmt.Errorf("configstream: unknown kind %d", s.kind)
	}
}

// Reprocess resets the stream's current Machine to the key of the last
// candidate Next() returned and runs text through it from that fresh
// start — used by the repetition attack to re-encrypt an assembled
// plaintext guess under the same rotor/reflector/plugboard/key that
// just produced the last candidate's decrypt.
func (s *Stream) Reprocess(text string) (string, error) {
	if s.machine == nil {
		return "", fmt.Errorf("configstream: no machine built yet")
	}
	return s.machine.Process(text, s.lastKey)
}

// Text returns the input text the stream decrypts each candidate
// configuration against (the ciphertext, or the first repetition
// fragment for a repetition attack).
func (s *Stream) Text() string { return s.text }

func (s *Stream) nextBrute() (string, cfgio.Configuration, bool, error) {
	if s.step >= s.totalSteps {
		s.done = true
		return "", cfgio.Configuration{}, false, nil
	}

	keysTotal := s.keysTotal
	reflectorsCount := len(s.reflectors)
	oi := s.step / (reflectorsCount * keysTotal)
	rem := s.step % (reflectorsCount * keysTotal)
	ri := rem / keysTotal
	ki := rem % keysTotal

	cfg := cfgio.Configuration{
		Rotors:    joinRotors(s.orderings[oi]),
		Reflector: s.reflectors[ri],
		Ring:      make([]int, s.rotorsCount),
		Plugboard: "",
		Key:       indexToKey(ki, s.rotorsCount),
	}

	if oi != s.builtOrderIx || ri != s.builtReflIx {
		m, err := machine.New(cfg)
		if err != nil {
			return "", cfgio.Configuration{}, false, err
		}
		s.machine = m
		s.builtOrderIx = oi
		s.builtReflIx = ri
	}
	if err := s.machine.SetDisplay(cfg.Key); err != nil {
		return "", cfgio.Configuration{}, false, err
	}
	out, err := s.machine.ProcessContinue(s.text)
	if err != nil {
		return "", cfgio.Configuration{}, false, err
	}

	s.step++
	s.lastKey = cfg.Key
	return out, cfg, true, nil
}

func (s *Stream) nextDict() (string, cfgio.Configuration, bool, error) {
	if s.lineIdx >= len(s.lines) {
		s.done = true
		return "", cfgio.Configuration{}, false, nil
	}
	line := s.lines[s.lineIdx]
	s.lineIdx++

	cfg, err := cfgio.DecodeConfiguration(line)
	if err != nil {
		return "", cfgio.Configuration{}, false, err
	}

	withoutKey := cfg.WithoutKey()
	if !s.hasLastCfg || !withoutKey.Equal(s.lastCfg) {
		m, err := machine.New(cfg)
		if err != nil {
			return "", cfgio.Configuration{}, false, err
		}
		s.machine = m
		s.hasLastCfg = true
		s.lastCfg = withoutKey
	}
	if err := s.machine.SetDisplay(cfg.Key); err != nil {
		return "", cfgio.Configuration{}, false, err
	}
	out, err := s.machine.ProcessContinue(s.text)
	if err != nil {
		return "", cfgio.Configuration{}, false, err
	}
	s.lastKey = cfg.Key
	return out, cfg, true, nil
}

func (s *Stream) nextDictBrute() (string, cfgio.Configuration, bool, error) {
	rotorsCount := s.rotorsCount
	keysTotal := 1
	for i := 0; i < rotorsCount; i++ {
		keysTotal *= 26
	}

	if s.keyIdx < 0 || s.keyIdx >= keysTotal {
		if s.lineIdx >= len(s.lines) {
			s.done = true
			return "", cfgio.Configuration{}, false, nil
		}
		line := s.lines[s.lineIdx]
		s.lineIdx++
		cfg, err := cfgio.DecodeConfiguration(line)
		if err != nil {
			return "", cfgio.Configuration{}, false, err
		}
		cfg.Key = ""
		m, err := machine.New(cfg)
		if err != nil {
			return "", cfgio.Configuration{}, false, err
		}
		s.machine = m
		s.dictCfg = cfg
		s.keyIdx = 0
	}

	key := indexToKey(s.keyIdx, rotorsCount)
	if err := s.machine.SetDisplay(key); err != nil {
		return "", cfgio.Configuration{}, false, err
	}
	out, err := s.machine.ProcessContinue(s.text)
	if err != nil {
		return "", cfgio.Configuration{}, false, err
	}

	cfg := s.dictCfg
	cfg.Key = key
	s.keyIdx++
	s.lastKey = cfg.Key
	return out, cfg, true, nil
}

func (s *Stream) nextDictPlug() (string, cfgio.Configuration, bool, error) {
	if s.pairIdx < 0 || s.pairIdx >= len(s.pairs) {
		if s.lineIdx >= len(s.lines) {
			s.done = true
			return "", cfgio.Configuration{}, false, nil
		}
		line := s.lines[s.lineIdx]
		s.lineIdx++
		cfg, err := cfgio.DecodeConfiguration(line)
		if err != nil {
			return "", cfgio.Configuration{}, false, err
		}
		s.dictCfg = cfg
		s.pairIdx = 0
	}

	pair := s.pairs[s.pairIdx]
	s.pairIdx++

	cfg := s.dictCfg
	cfg.Plugboard = string([]byte{pair[0], pair[1]})

	m, err := machine.New(cfg)
	if err != nil {
		return "", cfgio.Configuration{}, false, err
	}
	s.machine = m
	out, err := s.machine.ProcessContinue(s.text)
	if err != nil {
		return "", cfgio.Configuration{}, false, err
	}
	s.lastKey = cfg.Key
	return out, cfg, true, nil
}

// Total returns the number of candidates the stream will yield, when
// known in advance (Brute only; 0 for dictionary-backed streams whose
// per-line expansion is computed by the caller from the line count).
func (s *Stream) Total() int {
	if s.kind == Brute {
		return s.totalSteps
	}
	return 0
}
