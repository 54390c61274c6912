// Package intent classifies raw capture events into a closed set of intent
// labels and encodes them as deterministic 128-dimensional vectors. The
// classifier is rule-based; the vector layer is the seam a learned embedding
// model would replace.
package intent

import (
	"regexp"
	"strings"

	"github.com/ghostworks/ghostd/pkg/models"
)

// Classification is the encoder's label output.
type Classification struct {
	Label      models.IntentClass
	Confidence float64
}

var (
	reAuthURL     = regexp.MustCompile(`(?i)auth|login|token`)
	reCommURL     = regexp.MustCompile(`(?i)message|email|send`)
	reSearchURL   = regexp.MustCompile(`(?i)search|query`)
	reDownloadURL = regexp.MustCompile(`(?i)export|download`)
)

// Classify maps a raw event to an intent label with confidence. The decision
// table is total: anything unmatched is "unknown".
func Classify(ev *models.RawEvent) Classification {
	if ev == nil {
		return Classification{Label: models.IntentUnknown, Confidence: 0.10}
	}

	switch ev.EventType {
	case models.EventTypeUserInteraction:
		return classifyInteraction(&ev.Payload)
	case models.EventTypeDOMMutation:
		return classifyMutation(&ev.Payload)
	case models.EventTypeNetwork:
		return classifyNetwork(&ev.Payload)
	case models.EventTypeError:
		return Classification{Label: models.IntentErrorHandling, Confidence: 0.90}
	}
	return Classification{Label: models.IntentUnknown, Confidence: 0.10}
}

func classifyInteraction(p *models.RawPayload) Classification {
	target := p.Target
	inputType := ""
	tag := ""
	role := ""
	if target != nil {
		inputType = target.InputType
		tag = target.TagName
		role = target.ARIA.Role
	}

	switch p.Action {
	case "input":
		if inputType == "password" || inputType == "email" {
			return Classification{Label: models.IntentAuthentication, Confidence: 0.85}
		}
		return Classification{Label: models.IntentDataEntry, Confidence: 0.90}
	case "paste":
		return Classification{Label: models.IntentDataEntry, Confidence: 0.90}
	case "navigate":
		return Classification{Label: models.IntentNavigation, Confidence: 0.95}
	case "click":
		switch {
		case tag == "a":
			return Classification{Label: models.IntentNavigation, Confidence: 0.85}
		case inputType == "checkbox" || inputType == "radio":
			return Classification{Label: models.IntentConfiguration, Confidence: 0.75}
		case tag == "button" || role == "button":
			if insideForm(target) {
				return Classification{Label: models.IntentDataEntry, Confidence: 0.80}
			}
			return Classification{Label: models.IntentWorkflowTransition, Confidence: 0.70}
		}
	case "select":
		return Classification{Label: models.IntentDataEntry, Confidence: 0.85}
	case "copy":
		return Classification{Label: models.IntentDataExtraction, Confidence: 0.80}
	case "scroll":
		return Classification{Label: models.IntentResearch, Confidence: 0.50}
	case "focus":
		return Classification{Label: models.IntentNavigation, Confidence: 0.40}
	}
	return Classification{Label: models.IntentUnknown, Confidence: 0.20}
}

func classifyMutation(p *models.RawPayload) Classification {
	totalNodes := 0
	formRelated := false
	for _, m := range p.Mutations {
		totalNodes += m.AddedNodes + m.RemovedNodes
		if m.FormID != "" {
			formRelated = true
		}
		if m.Target != nil {
			switch m.Target.TagName {
			case "input", "textarea", "select":
				formRelated = true
			}
			if m.Target.FormID != "" {
				formRelated = true
			}
		}
	}
	if totalNodes > 20 {
		return Classification{Label: models.IntentNavigation, Confidence: 0.60}
	}
	if formRelated {
		return Classification{Label: models.IntentDataEntry, Confidence: 0.50}
	}
	return Classification{Label: models.IntentUnknown, Confidence: 0.20}
}

func classifyNetwork(p *models.RawPayload) Classification {
	method := strings.ToUpper(p.Method)
	switch method {
	case "POST", "PUT", "PATCH":
		switch {
		case reAuthURL.MatchString(p.URL):
			return Classification{Label: models.IntentAuthentication, Confidence: 0.85}
		case reCommURL.MatchString(p.URL):
			return Classification{Label: models.IntentCommunication, Confidence: 0.75}
		}
		return Classification{Label: models.IntentDataEntry, Confidence: 0.70}
	case "DELETE":
		return Classification{Label: models.IntentWorkflowTransition, Confidence: 0.70}
	case "GET":
		switch {
		case reSearchURL.MatchString(p.URL):
			return Classification{Label: models.IntentResearch, Confidence: 0.70}
		case reDownloadURL.MatchString(p.URL):
			return Classification{Label: models.IntentDataExtraction, Confidence: 0.75}
		}
	}
	if p.Status >= 400 {
		return Classification{Label: models.IntentErrorHandling, Confidence: 0.60}
	}
	return Classification{Label: models.IntentUnknown, Confidence: 0.20}
}

// insideForm reports whether a click target sits within a form: either an
// explicit form association or a form ancestor on the DOM path.
func insideForm(fp *models.Fingerprint) bool {
	if fp == nil {
		return false
	}
	if fp.FormID != "" {
		return true
	}
	for _, seg := range fp.DOMPath {
		if seg == "form" || strings.HasPrefix(seg, "form[") {
			return true
		}
	}
	return false
}
