package intent

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/ghostworks/ghostd/pkg/models"
)

// VectorDim is the dimensionality of every intent vector.
const VectorDim = 128

// featureWeight is the linear mix weight of event features against the
// class-seeded base vector.
const featureWeight = 0.3

// classSeeds are the per-class LCG seed constants. Changing any of these
// breaks cross-device vector comparability.
var classSeeds = map[models.IntentClass]uint32{
	models.IntentDataEntry:          0x1a2b3c4d,
	models.IntentNavigation:         0x2b3c4d5e,
	models.IntentCommunication:      0x3c4d5e6f,
	models.IntentResearch:           0x4d5e6f70,
	models.IntentApproval:           0x5e6f7081,
	models.IntentFileOperation:      0x6f708192,
	models.IntentAuthentication:     0x708192a3,
	models.IntentConfiguration:      0x8192a3b4,
	models.IntentDataExtraction:     0x92a3b4c5,
	models.IntentWorkflowTransition: 0xa3b4c5d6,
	models.IntentErrorHandling:      0xb4c5d6e7,
	models.IntentUnknown:            0xc5d6e7f8,
}

// actionIndex orders the known user interaction actions for feature encoding.
var actionIndex = map[string]int{
	"click": 1, "input": 2, "paste": 3, "navigate": 4,
	"select": 5, "copy": 6, "scroll": 7, "focus": 8,
}

// methodIndex orders HTTP methods for feature encoding.
var methodIndex = map[string]int{
	"GET": 1, "POST": 2, "PUT": 3, "PATCH": 4, "DELETE": 5, "HEAD": 6, "OPTIONS": 7,
}

// Encode classifies the event and produces its deterministic 128-d vector:
// an LCG stream seeded by the class constant, linearly mixed with event
// features, L2-normalized, and quantized to 4 decimals. Identical
// (class, features) pairs yield byte-identical vectors.
func Encode(ev *models.RawEvent) (Classification, []float64) {
	cls := Classify(ev)
	return cls, Vector(cls.Label, ev)
}

// Vector generates the deterministic vector for a label/event pair.
func Vector(label models.IntentClass, ev *models.RawEvent) []float64 {
	seed, ok := classSeeds[label]
	if !ok {
		seed = classSeeds[models.IntentUnknown]
	}

	features := eventFeatures(ev)
	vec := make([]float64, VectorDim)
	state := seed
	for i := range vec {
		// Numerical Recipes LCG; state cycles through the full 2^32 range.
		state = state*1664525 + 1013904223
		base := float64(state)/4294967296.0 - 0.5
		vec[i] = (1-featureWeight)*base + featureWeight*features[i%len(features)]
	}

	l2Normalize(vec)
	for i := range vec {
		vec[i] = math.Round(vec[i]*10000) / 10000
	}
	return vec
}

// eventFeatures derives the seven scalar features mixed into the vector:
// action index, tag hash, DOM path depth, relX, relY, HTTP method index and
// normalized status. All are scaled near [0,1].
func eventFeatures(ev *models.RawEvent) []float64 {
	f := make([]float64, 7)
	if ev == nil {
		return f
	}

	f[0] = float64(actionIndex[ev.Payload.Action]) / 10.0
	if t := ev.Payload.Target; t != nil {
		f[1] = float64(fnv32a(t.TagName)%1000) / 1000.0
		f[2] = math.Min(float64(len(t.DOMPath))/20.0, 1.0)
		f[3] = t.Position.RelX
		f[4] = t.Position.RelY
	}
	f[5] = float64(methodIndex[strings.ToUpper(ev.Payload.Method)]) / 10.0
	if ev.Payload.Status > 0 {
		f[6] = math.Min(float64(ev.Payload.Status)/599.0, 1.0)
	}
	return f
}

func l2Normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

func fnv32a(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
