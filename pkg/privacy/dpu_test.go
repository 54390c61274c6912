package privacy

import (
	"math"
	mathrand "math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/models"
)

func testDPU(epsilon float64) *DPU {
	return NewDPUWithSource(epsilon, mathrand.NewPCG(7, 13))
}

func TestAnonymizeTimestamp_BucketAligned(t *testing.T) {
	d := testDPU(DefaultEpsilon)
	base := time.Date(2026, 8, 24, 10, 17, 42, 0, time.UTC).UnixMilli()

	for i := 0; i < 50; i++ {
		out := d.AnonymizeTimestamp(base + int64(i)*60_000)
		parsed, err := time.Parse(time.RFC3339, out)
		require.NoError(t, err)

		assert.Zero(t, parsed.Unix()%300, "timestamp %s is not on a 5-minute boundary", out)

		// Laplace noise at 30s scale stays well inside 10 minutes.
		diff := parsed.Sub(time.UnixMilli(base + int64(i)*60_000))
		if diff < 0 {
			diff = -diff
		}
		assert.Less(t, diff, 10*time.Minute)
	}
}

func TestRandomizedResponse_FlipRate(t *testing.T) {
	d := testDPU(DefaultEpsilon)

	flips := 0
	const n = 10_000
	for i := 0; i < n; i++ {
		if !d.RandomizedResponse(true) {
			flips++
		}
	}
	// Expected flip count is n * 0.10.
	assert.Greater(t, flips, 800)
	assert.Less(t, flips, 1200)
}

func TestPerturbVector_DoesNotMutateInput(t *testing.T) {
	d := testDPU(DefaultEpsilon)
	in := []float64{0.25, -0.5, 0.125}
	orig := append([]float64(nil), in...)

	out := d.PerturbVector(in)
	require.Len(t, out, len(in))
	assert.Equal(t, orig, in)
	assert.NotEqual(t, in, out)
}

func TestPerturbVector_QuantizedToFourDecimals(t *testing.T) {
	d := testDPU(DefaultEpsilon)
	out := d.PerturbVector([]float64{0.1, 0.2, 0.3, 0.4})

	for _, v := range out {
		scaled := v * 10000
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6)
	}
}

func TestPerturbVector_NoiseScalesWithEpsilon(t *testing.T) {
	// A huge epsilon means near-zero noise.
	d := testDPU(1e6)
	in := []float64{0.5, -0.5, 0.0}
	out := d.PerturbVector(in)

	for i := range in {
		assert.InDelta(t, in[i], out[i], 0.001)
	}
}

func TestSessionFingerprint_StableWithinBucket(t *testing.T) {
	// 1_700_000_000_000 ms sits 13m20s into its 15-minute bucket.
	base := int64(1_700_000_000_000)

	a := SessionFingerprint("device-1", "user-1", base)
	b := SessionFingerprint("device-1", "user-1", base+60_000)

	require.Len(t, a, 64)
	assert.Equal(t, a, b)
}

func TestSessionFingerprint_RotatesAcrossBuckets(t *testing.T) {
	base := int64(1_700_000_000_000)

	a := SessionFingerprint("device-1", "user-1", base)
	b := SessionFingerprint("device-1", "user-1", base+15*60_000)
	assert.NotEqual(t, a, b)
}

func TestSessionFingerprint_PartitionedByIdentity(t *testing.T) {
	base := int64(1_700_000_000_000)

	a := SessionFingerprint("device-1", "user-1", base)
	assert.NotEqual(t, a, SessionFingerprint("device-2", "user-1", base))
	assert.NotEqual(t, a, SessionFingerprint("device-1", "user-2", base))
}

func TestStructuralHash(t *testing.T) {
	a := StructuralHash([]string{"body", "form", "button"}, "button")
	b := StructuralHash([]string{"body", "form", "button"}, "button")
	c := StructuralHash([]string{"body", "main", "button"}, "button")

	require.Len(t, a, 8)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestElementSignature(t *testing.T) {
	fp := &models.Fingerprint{
		TagName: "button",
		ARIA:    models.ARIA{Role: "button"},
		DOMPath: []string{"body", "main", "form", "div", "button"},
	}
	assert.Equal(t, "button[button]@form>div>button", ElementSignature(fp))

	plain := &models.Fingerprint{TagName: "a", DOMPath: []string{"body", "a"}}
	assert.Equal(t, "a@body>a", ElementSignature(plain))

	assert.Empty(t, ElementSignature(nil))
	assert.Empty(t, ElementSignature(&models.Fingerprint{}))
}

func TestHashURL(t *testing.T) {
	hashed := HashURL("https://app.example.com/invoices/42?tab=history")

	assert.Contains(t, hashed, "https://app.example.com/")
	assert.NotContains(t, hashed, "invoices")
	assert.NotContains(t, hashed, "tab=history")
	assert.Len(t, hashed, len("https://app.example.com/")+8)

	assert.Equal(t, hashed, HashURL("https://app.example.com/invoices/42?tab=history"))
	assert.NotEqual(t, hashed, HashURL("https://app.example.com/invoices/43?tab=history"))

	assert.Empty(t, HashURL(""))
}
