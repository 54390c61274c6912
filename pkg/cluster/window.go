package cluster

import (
	"math"
	"sort"
	"time"

	"github.com/ghostworks/ghostd/pkg/models"
)

const (
	// windowSize caps how many events one sequence window may span.
	windowSize = 50
	// minClusterSize is the minimum members for a window or a cluster.
	minClusterSize = 3
	// temporalWindow is the maximum spread between sequences in one cluster.
	temporalWindow = 30 * time.Minute
	// similarityThreshold is the minimum cosine similarity for membership.
	similarityThreshold = 0.75
)

// EventSequence is a sliding window over one session's ordered events,
// summarized by the mean of its intent vectors.
type EventSequence struct {
	SessionFingerprint string
	Events             []models.SecureEvent
	Embedding          []float64
	At                 time.Time
}

// Labels returns the intent labels of the window's events in order.
func (s *EventSequence) Labels() []string {
	labels := make([]string, len(s.Events))
	for i, ev := range s.Events {
		labels[i] = string(ev.IntentLabel)
	}
	return labels
}

// buildSequences groups events by session fingerprint, orders each session by
// sequence number, and emits every sliding window of up to windowSize events.
// Windows shorter than minClusterSize are skipped.
func buildSequences(events []models.SecureEvent) []EventSequence {
	bySession := make(map[string][]models.SecureEvent)
	var order []string
	for _, ev := range events {
		if _, seen := bySession[ev.SessionFingerprint]; !seen {
			order = append(order, ev.SessionFingerprint)
		}
		bySession[ev.SessionFingerprint] = append(bySession[ev.SessionFingerprint], ev)
	}

	var sequences []EventSequence
	for _, session := range order {
		seq := bySession[session]
		sort.Slice(seq, func(i, j int) bool {
			return seq[i].SequenceNumber < seq[j].SequenceNumber
		})

		for start := 0; start <= len(seq)-minClusterSize; start++ {
			end := start + windowSize
			if end > len(seq) {
				end = len(seq)
			}
			window := seq[start:end]

			emb := meanEmbedding(window)
			if emb == nil {
				continue
			}

			sequences = append(sequences, EventSequence{
				SessionFingerprint: session,
				Events:             window,
				Embedding:          emb,
				At:                 parseBucket(window[0].TimestampBucket),
			})
		}
	}
	return sequences
}

// meanEmbedding averages the intent vectors of a window. Events with a vector
// dimensionality differing from the first are skipped.
func meanEmbedding(events []models.SecureEvent) []float64 {
	var mean []float64
	var n int
	for _, ev := range events {
		if len(ev.IntentVector) == 0 {
			continue
		}
		if mean == nil {
			mean = make([]float64, len(ev.IntentVector))
		}
		if len(ev.IntentVector) != len(mean) {
			continue
		}
		for i, v := range ev.IntentVector {
			mean[i] += v
		}
		n++
	}
	if n == 0 {
		return nil
	}
	for i := range mean {
		mean[i] /= float64(n)
	}
	return mean
}

func parseBucket(bucket string) time.Time {
	t, err := time.Parse(time.RFC3339, bucket)
	if err != nil {
		return time.Time{}
	}
	return t
}

// cosine computes the cosine similarity of two vectors. Mismatched lengths or
// zero vectors yield 0.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
