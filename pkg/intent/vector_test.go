package intent

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/models"
)

func TestVector_Deterministic(t *testing.T) {
	ev := interaction("click", &models.Fingerprint{
		TagName: "button",
		DOMPath: []string{"body", "main", "button"},
		Position: models.Position{
			RelX: 0.42,
			RelY: 0.13,
		},
	})

	first := Vector(models.IntentWorkflowTransition, ev)
	second := Vector(models.IntentWorkflowTransition, ev)

	require.Len(t, first, VectorDim)
	assert.Equal(t, first, second)
}

func TestVector_DistinctAcrossClasses(t *testing.T) {
	ev := interaction("click", nil)

	seen := make(map[string]models.IntentClass)
	for _, class := range models.AllIntentClasses {
		vec := Vector(class, ev)
		require.Len(t, vec, VectorDim)

		key := fmt.Sprintf("%v", vec[:8])
		prev, dup := seen[key]
		require.False(t, dup, "classes %s and %s collide", prev, class)
		seen[key] = class
	}
}

func TestVector_UnitNorm(t *testing.T) {
	ev := network("POST", "https://api.example.com/records", 201)
	vec := Vector(models.IntentDataEntry, ev)

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	// Quantization to 4 decimals moves the norm slightly off 1.
	assert.InDelta(t, 1.0, math.Sqrt(sum), 0.01)
}

func TestVector_FeaturesShiftTheVector(t *testing.T) {
	left := interaction("click", &models.Fingerprint{
		TagName:  "button",
		Position: models.Position{RelX: 0.1, RelY: 0.1},
	})
	right := interaction("click", &models.Fingerprint{
		TagName:  "button",
		Position: models.Position{RelX: 0.9, RelY: 0.9},
	})

	assert.NotEqual(t,
		Vector(models.IntentWorkflowTransition, left),
		Vector(models.IntentWorkflowTransition, right))
}

func TestVector_UnknownLabelFallsBackToUnknownSeed(t *testing.T) {
	ev := interaction("click", nil)

	assert.Equal(t,
		Vector(models.IntentUnknown, ev),
		Vector(models.IntentClass("never_defined"), ev))
}

func TestEncode_ClassifiesAndEncodes(t *testing.T) {
	ev := interaction("copy", nil)

	cls, vec := Encode(ev)
	assert.Equal(t, models.IntentDataExtraction, cls.Label)
	assert.Equal(t, Vector(cls.Label, ev), vec)
}
