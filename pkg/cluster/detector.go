// Package cluster implements temporal intent clustering: sliding windows over
// session event streams are grouped by embedding similarity and temporal
// proximity, then lifted into named workflow patterns.
package cluster

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/models"
)

const (
	// reviewThreshold drops patterns below it entirely.
	reviewThreshold = 0.70
	// autoSuggestThreshold marks patterns as auto_suggested.
	autoSuggestThreshold = 0.85
	// readMultiplier scales windowSize into the event read limit.
	readMultiplier = 5
	// defaultLLMConfidence substitutes when lifting is skipped or fails.
	defaultLLMConfidence = 0.5
)

// PatternStatus is the review state of a detected pattern.
type PatternStatus string

const (
	StatusNeedsReview   PatternStatus = "needs_review"
	StatusAutoSuggested PatternStatus = "auto_suggested"
)

// Pattern is one detected workflow pattern ready for persistence.
type Pattern struct {
	ID                   string        `json:"id"`
	OrgID                string        `json:"orgId"`
	IntentSequence       []string      `json:"intentSequence"`
	StructuralHashes     []string      `json:"structuralHashes"`
	Occurrences          int           `json:"occurrences"`
	Confidence           float64       `json:"confidence"`
	SuggestedName        string        `json:"suggestedName,omitempty"`
	SuggestedDescription string        `json:"suggestedDescription,omitempty"`
	FirstSeen            time.Time     `json:"firstSeen"`
	LastSeen             time.Time     `json:"lastSeen"`
	Status               PatternStatus `json:"status"`
}

// Store abstracts event reads and pattern writes.
type Store interface {
	// RecentEvents returns up to limit most recent events for an org.
	RecentEvents(ctx context.Context, orgID string, limit int) ([]models.SecureEvent, error)
	// UpsertPattern creates or refreshes a pattern by its deterministic ID.
	UpsertPattern(ctx context.Context, p *Pattern) error
}

// Detector runs pattern detection for one org at a time.
type Detector struct {
	store  Store
	llm    llm.Client
	logger *slog.Logger
}

// NewDetector creates a detector. The LLM client may be nil, in which case
// abstraction lifting is skipped and the default LLM confidence applies.
func NewDetector(store Store, llmClient llm.Client, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{store: store, llm: llmClient, logger: logger}
}

type clusterGroup struct {
	members  []EventSequence
	centroid []float64
}

// Detect reads the org's recent events, clusters their sequence windows, and
// persists every pattern that clears the review threshold. It returns the
// persisted patterns.
func (d *Detector) Detect(ctx context.Context, orgID string) ([]*Pattern, error) {
	events, err := d.store.RecentEvents(ctx, orgID, readMultiplier*windowSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	sequences := buildSequences(events)
	if len(sequences) == 0 {
		return nil, nil
	}

	groups := clusterSequences(sequences)
	if len(groups) == 0 {
		return nil, nil
	}

	patterns := make([]*Pattern, 0, len(groups))
	for i, g := range groups {
		p := d.buildPattern(orgID, g)

		// Lifting is limited to the first clusters to bound LLM spend.
		llmConf := defaultLLMConfidence
		if d.llm != nil && i < liftClusterLimit {
			if lifted, err := d.lift(ctx, g); err != nil {
				d.logger.Warn("abstraction lifting failed, keeping statistical pattern",
					"org_id", orgID, "error", err)
			} else if lifted != nil {
				p.SuggestedName = lifted.Name
				p.SuggestedDescription = lifted.Description
				llmConf = lifted.Confidence
			}
		}

		p.Confidence = round2(0.6*p.Confidence + 0.4*llmConf)
		if p.Confidence < reviewThreshold {
			continue
		}
		if p.Confidence >= autoSuggestThreshold {
			p.Status = StatusAutoSuggested
		} else {
			p.Status = StatusNeedsReview
		}

		if err := d.store.UpsertPattern(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to persist pattern: %w", err)
		}
		patterns = append(patterns, p)
	}

	d.logger.Info("pattern detection complete",
		"org_id", orgID,
		"events", len(events),
		"sequences", len(sequences),
		"clusters", len(groups),
		"patterns", len(patterns))

	return patterns, nil
}

// clusterSequences greedily assigns each sequence to the first cluster whose
// centroid is similar enough and temporally close enough, recomputing the
// centroid on each assignment. Clusters below minClusterSize are dropped.
func clusterSequences(sequences []EventSequence) []clusterGroup {
	var groups []clusterGroup

	for _, seq := range sequences {
		assigned := false
		for i := range groups {
			g := &groups[i]
			if cosine(g.centroid, seq.Embedding) < similarityThreshold {
				continue
			}
			if !temporallyClose(g.members[0].At, seq.At) {
				continue
			}
			g.members = append(g.members, seq)
			g.centroid = recomputeCentroid(g.members)
			assigned = true
			break
		}
		if !assigned {
			centroid := make([]float64, len(seq.Embedding))
			copy(centroid, seq.Embedding)
			groups = append(groups, clusterGroup{
				members:  []EventSequence{seq},
				centroid: centroid,
			})
		}
	}

	kept := groups[:0]
	for _, g := range groups {
		if len(g.members) >= minClusterSize {
			kept = append(kept, g)
		}
	}
	return kept
}

func temporallyClose(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return true
	}
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= temporalWindow
}

func recomputeCentroid(members []EventSequence) []float64 {
	if len(members) == 0 {
		return nil
	}
	centroid := make([]float64, len(members[0].Embedding))
	var n int
	for _, m := range members {
		if len(m.Embedding) != len(centroid) {
			continue
		}
		for i, v := range m.Embedding {
			centroid[i] += v
		}
		n++
	}
	if n == 0 {
		return centroid
	}
	for i := range centroid {
		centroid[i] /= float64(n)
	}
	return centroid
}

// buildPattern assembles a pattern from a cluster with statistical confidence
// only. The LLM component is fused in by the caller.
func (d *Detector) buildPattern(orgID string, g clusterGroup) *Pattern {
	rep := g.members[0]
	labels := distinctLabels(g.members)

	unique := make(map[string]struct{}, len(g.members))
	var confSum float64
	var confN int
	first, last := rep.At, rep.At
	seenHash := make(map[string]struct{})
	var hashes []string

	for _, m := range g.members {
		unique[strings.Join(m.Labels(), ">")] = struct{}{}
		for _, ev := range m.Events {
			confSum += ev.IntentConfidence
			confN++
			if ev.StructuralHash == "" {
				continue
			}
			if _, ok := seenHash[ev.StructuralHash]; ok {
				continue
			}
			seenHash[ev.StructuralHash] = struct{}{}
			hashes = append(hashes, ev.StructuralHash)
		}
		if !m.At.IsZero() {
			if first.IsZero() || m.At.Before(first) {
				first = m.At
			}
			if m.At.After(last) {
				last = m.At
			}
		}
	}

	n := float64(len(g.members))
	meanConf := 0.0
	if confN > 0 {
		meanConf = confSum / float64(confN)
	}

	// Support, consistency and intent certainty fused 0.3/0.4/0.3.
	support := math.Min(n/10, 1)
	consistency := 1 - float64(len(unique)-1)/n
	stat := 0.3*support + 0.4*consistency + 0.3*meanConf

	return &Pattern{
		ID:               patternID(orgID, labels),
		OrgID:            orgID,
		IntentSequence:   labels,
		StructuralHashes: hashes,
		// Distinct sessions, not sliding windows: overlapping windows from
		// one session are a single workflow instance.
		Occurrences: countSessions(g.members),
		Confidence:  stat,
		FirstSeen:   first,
		LastSeen:    last,
	}
}

// distinctLabels returns the distinct intent labels across the cluster in
// first-seen order.
func distinctLabels(members []EventSequence) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, m := range members {
		for _, ev := range m.Events {
			label := string(ev.IntentLabel)
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	return labels
}

// patternID derives a stable ID from the org and the representative intent
// sequence so re-detection upserts instead of duplicating.
func patternID(orgID string, labels []string) string {
	sum := sha256.Sum256([]byte(orgID + "|" + strings.Join(labels, ">")))
	return hex.EncodeToString(sum[:16])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
