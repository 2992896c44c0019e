// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package attack

import (
	"container/heap"

	"github.com/go-enigma/cracker/pkg/configstream"
	"github.com/go-enigma/cracker/pkg/scoring"
)

// icCandidateHeap is a min-heap over Candidate.Score: the root is
// always the weakest held candidate, so a new candidate only needs to
// beat one comparison to know whether it displaces anything.
type icCandidateHeap []Candidate

func (h icCandidateHeap) Len() int            { return len(h) }
func (h icCandidateHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h icCandidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *icCandidateHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }
func (h *icCandidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// RankByIC runs the IC rotor attack: it drains s, scores each candidate
// by index of coincidence, and keeps the topK strongest. The result is
// sorted ascending by score, matching the source's final sorted-array
// output. A tied score is kept or displaced according to insertion
// order, not a secondary key.
func RankByIC(s *configstream.Stream, topK int) ([]Candidate, error) {
	if topK <= 0 {
		return nil, nil
	}

	h := &icCandidateHeap{}
	heap.Init(h)
	for {
		text, cfg, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		cand := Candidate{Text: text, Configuration: cfg, Score: scoring.IC(text)}
		if h.Len() < topK {
			heap.Push(h, cand)
		} else if cand.Score > (*h)[0].Score {
			heap.Pop(h)
			heap.Push(h, cand)
		}
	}

	out := make([]Candidate, 0, h.Len())
	for h.Len() > 0 {
		out = append(out, heap.Pop(h).(Candidate))
	}
	return out, nil
}
