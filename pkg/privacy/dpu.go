// Package privacy implements the on-device privacy boundary: the
// differential privacy unit and the pipeline that turns raw capture events
// into secure events.
package privacy

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"math"
	mathrand "math/rand/v2"
	"strings"
	"time"

	"github.com/ghostworks/ghostd/pkg/models"
)

const (
	// timestampNoiseScale is the Laplace scale applied to timestamps.
	timestampNoiseScale = 30 * time.Second

	// timestampBucket is the granularity timestamps are floored to after
	// noising.
	timestampBucket = 5 * time.Minute

	// sessionRotationMs divides session start times into 15-minute buckets;
	// the fingerprint rotates when the bucket changes.
	sessionRotationMs = 15 * 60 * 1000

	// flipProbability is the randomized-response flip rate for boolean
	// sensitive flags.
	flipProbability = 0.10

	// DefaultEpsilon is the default privacy budget for vector perturbation.
	DefaultEpsilon = 1.0
)

// DPU is the differential privacy unit. Noise draws use a statistically
// sound PRNG seeded from crypto/rand; the session fingerprint itself is
// keyed HMAC and involves no sampled randomness.
type DPU struct {
	epsilon float64
	rng     *mathrand.Rand
}

// NewDPU creates a DPU with the given epsilon (<=0 selects DefaultEpsilon)
// and a crypto-seeded noise source.
func NewDPU(epsilon float64) *DPU {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// crypto/rand failing is unrecoverable for a privacy component;
		// fall back to a time seed rather than abort capture.
		binary.LittleEndian.PutUint64(seed[:8], uint64(time.Now().UnixNano()))
	}
	return NewDPUWithSource(epsilon, mathrand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// NewDPUWithSource creates a DPU with an explicit noise source. Used by
// tests that need reproducible noise.
func NewDPUWithSource(epsilon float64, src mathrand.Source) *DPU {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &DPU{epsilon: epsilon, rng: mathrand.New(src)}
}

// AnonymizeTimestamp adds Laplacian noise (scale 30 s) to an epoch-ms
// timestamp, then floors to the nearest 5-minute boundary. Returns an
// ISO-8601 string at 5-minute granularity.
func (d *DPU) AnonymizeTimestamp(tsMillis int64) string {
	noised := tsMillis + int64(d.laplace(float64(timestampNoiseScale.Milliseconds())))
	bucketMs := timestampBucket.Milliseconds()
	floored := (noised / bucketMs) * bucketMs
	return time.UnixMilli(floored).UTC().Format(time.RFC3339)
}

// RandomizedResponse flips the flag with probability 0.10, independently per
// call.
func (d *DPU) RandomizedResponse(flag bool) bool {
	if d.rng.Float64() < flipProbability {
		return !flag
	}
	return flag
}

// PerturbVector adds i.i.d. Gaussian noise with sigma = sqrt(2)/epsilon to
// each dimension and quantizes to 4 decimals. The input is not modified.
func (d *DPU) PerturbVector(vec []float64) []float64 {
	sigma := math.Sqrt2 / d.epsilon
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = math.Round((v+d.rng.NormFloat64()*sigma)*10000) / 10000
	}
	return out
}

// laplace draws Laplacian noise via the inverse CDF from a uniform sample.
func (d *DPU) laplace(scale float64) float64 {
	u := d.rng.Float64() - 0.5
	sign := 1.0
	if u < 0 {
		sign = -1.0
	}
	return -scale * sign * math.Log(1-2*math.Abs(u))
}

// SessionFingerprint derives the irreversible session identifier:
// HMAC-SHA256 over "deviceId|userId|<15-min bucket>", keyed by the device id.
// Output is 64 lowercase hex chars. Rotation falls out of the bucket divisor.
func SessionFingerprint(deviceID, userID string, sessionStartMs int64) string {
	mac := hmac.New(sha256.New, []byte(deviceID))
	fmt.Fprintf(mac, "%s|%s|%d", deviceID, userID, sessionStartMs/sessionRotationMs)
	return hex.EncodeToString(mac.Sum(nil))
}

// StructuralHash is the 8-hex FNV-1a over the joined DOM path and tag name.
// Content never enters the hash, only structure.
func StructuralHash(domPath []string, tagName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.Join(domPath, ">") + ":" + tagName))
	return fmt.Sprintf("%08x", h.Sum32())
}

// ElementSignature renders "tag[role]@last3PathSegments" for an element, or
// "" when there is no element.
func ElementSignature(fp *models.Fingerprint) string {
	if fp == nil || fp.TagName == "" {
		return ""
	}
	sig := fp.TagName
	if fp.ARIA.Role != "" {
		sig += "[" + fp.ARIA.Role + "]"
	}
	path := fp.DOMPath
	if len(path) > 3 {
		path = path[len(path)-3:]
	}
	return sig + "@" + strings.Join(path, ">")
}

// HashURL replaces a URL's path and query with an FNV-1a hash, preserving
// only the origin: "https://host/1a2b3c4d". Unparseable URLs are hashed
// whole with an empty origin.
func HashURL(raw string) string {
	if raw == "" {
		return ""
	}
	origin, rest := splitOrigin(raw)
	h := fnv.New32a()
	_, _ = h.Write([]byte(rest))
	return origin + "/" + fmt.Sprintf("%08x", h.Sum32())
}

// splitOrigin separates "scheme://host[:port]" from the path+query remainder.
func splitOrigin(raw string) (origin, rest string) {
	idx := strings.Index(raw, "://")
	if idx < 0 {
		return "", raw
	}
	after := raw[idx+3:]
	slash := strings.Index(after, "/")
	if slash < 0 {
		return raw, ""
	}
	return raw[:idx+3+slash], after[slash:]
}
