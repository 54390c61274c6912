package scrub

import (
	"log/slog"
	"regexp"
)

// EntityType names a detectable PII kind.
type EntityType string

// Detected entity kinds.
const (
	EntityEmail      EntityType = "EMAIL"
	EntityPhone      EntityType = "PHONE"
	EntitySSN        EntityType = "SSN"
	EntityCreditCard EntityType = "CREDIT_CARD"
	EntityIPAddress  EntityType = "IP_ADDRESS"
	EntityAuthToken  EntityType = "AUTH_TOKEN"
	EntityDOB        EntityType = "DOB"
)

// detectorSpec is a raw detector definition prior to compilation.
type detectorSpec struct {
	Type    EntityType
	Pattern string
}

// compiledDetector holds a pre-compiled detector pattern.
type compiledDetector struct {
	Type  EntityType
	Regex *regexp.Regexp
}

// builtinDetectors covers the required entity kinds. Order matters only for
// tie-breaking between equal-length overlapping matches: earlier detectors
// win via the earlier-start rule applied during overlap resolution.
var builtinDetectors = []detectorSpec{
	{Type: EntityAuthToken, Pattern: `(?i)(?:bearer\s+|(?:api[_-]?key|token|secret|password|auth)\s*[:=]\s*["']?)[A-Za-z0-9._\-]{6,}`},
	{Type: EntityEmail, Pattern: `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`},
	{Type: EntitySSN, Pattern: `\b\d{3}-\d{2}-\d{4}\b`},
	{Type: EntityCreditCard, Pattern: `\b(?:\d{4}[ \-]?){3}\d{3,4}\b`},
	{Type: EntityIPAddress, Pattern: `\b(?:\d{1,3}\.){3}\d{1,3}\b`},
	{Type: EntityDOB, Pattern: `\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})\b`},
	{Type: EntityPhone, Pattern: `(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`},
}

// compileDetectors compiles the builtin detector table. Invalid patterns are
// logged and skipped.
func compileDetectors() []compiledDetector {
	compiled := make([]compiledDetector, 0, len(builtinDetectors))
	for _, spec := range builtinDetectors {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			slog.Error("Failed to compile PII detector, skipping",
				"entity", spec.Type, "error", err)
			continue
		}
		compiled = append(compiled, compiledDetector{
			Type:  spec.Type,
			Regex: re,
		})
	}
	return compiled
}
