// Package scrub detects personally-identifying substrings and replaces them
// with stable session-scoped tokens before anything leaves the device.
package scrub

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Entity is a single PII match within a text.
type Entity struct {
	Type  EntityType
	Value string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
}

// Scrubber replaces detected entities with tokens of the form "[TYPE_N]".
// N is assigned per entity type in first-seen order per distinct normalized
// value, so the same email always maps to the same token within a session.
// The token table is reset on session rotation via Reset.
type Scrubber struct {
	detectors []compiledDetector

	mu     sync.Mutex
	tokens map[EntityType]map[string]int // normalized value → assigned N
}

// NewScrubber creates a scrubber with the builtin detector table compiled
// eagerly.
func NewScrubber() *Scrubber {
	return &Scrubber{
		detectors: compileDetectors(),
		tokens:    make(map[EntityType]map[string]int),
	}
}

// Detect returns all PII matches in text after overlap resolution: when two
// matches overlap the longer wins, and on equal length the earlier one wins.
// Matches are returned in text order. Malformed input never raises; absent
// matches yield nil.
func (s *Scrubber) Detect(text string) []Entity {
	if text == "" {
		return nil
	}

	var all []Entity
	for _, d := range s.detectors {
		for _, loc := range d.Regex.FindAllStringIndex(text, -1) {
			all = append(all, Entity{
				Type:  d.Type,
				Value: text[loc[0]:loc[1]],
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	return resolveOverlaps(all)
}

// ContainsPII reports whether text contains at least one detectable entity.
func (s *Scrubber) ContainsPII(text string) bool {
	for _, d := range s.detectors {
		if d.Regex.MatchString(text) {
			return true
		}
	}
	return false
}

// Scrub replaces every detected entity with its stable token. Unrecognized
// text is returned unchanged.
func (s *Scrubber) Scrub(text string) string {
	entities := s.Detect(text)
	if len(entities) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, ent := range entities {
		b.WriteString(text[last:ent.Start])
		b.WriteString(s.tokenFor(ent.Type, ent.Value))
		last = ent.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Reset clears the token table. Called on session rotation.
func (s *Scrubber) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[EntityType]map[string]int)
}

// tokenFor returns the stable token for a value, assigning the next counter
// on first sight of the normalized form.
func (s *Scrubber) tokenFor(t EntityType, value string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.tokens[t]
	if table == nil {
		table = make(map[string]int)
		s.tokens[t] = table
	}
	key := normalize(value)
	n, ok := table[key]
	if !ok {
		n = len(table) + 1
		table[key] = n
	}
	return fmt.Sprintf("[%s_%d]", t, n)
}

// normalize lowercases and strips spaces, dashes, and dots so that
// formatting variants of the same value share one token.
func normalize(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.':
			return -1
		}
		return r
	}, strings.ToLower(value))
}

// resolveOverlaps applies the longer-then-earlier policy and returns the
// surviving matches in text order.
func resolveOverlaps(entities []Entity) []Entity {
	if len(entities) == 0 {
		return nil
	}

	// Preference order: longer first, then earlier start.
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := entities[i].End-entities[i].Start, entities[j].End-entities[j].Start
		if li != lj {
			return li > lj
		}
		return entities[i].Start < entities[j].Start
	})

	var kept []Entity
	for _, cand := range entities {
		conflict := false
		for _, k := range kept {
			if cand.Start < k.End && k.Start < cand.End {
				conflict = true
				break
			}
		}
		if !conflict {
			kept = append(kept, cand)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}
