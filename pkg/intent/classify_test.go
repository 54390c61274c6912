package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghostworks/ghostd/pkg/models"
)

func interaction(action string, target *models.Fingerprint) *models.RawEvent {
	return &models.RawEvent{
		EventType: models.EventTypeUserInteraction,
		Payload:   models.RawPayload{Action: action, Target: target},
	}
}

func network(method, url string, status int) *models.RawEvent {
	return &models.RawEvent{
		EventType: models.EventTypeNetwork,
		Payload:   models.RawPayload{Method: method, URL: url, Status: status},
	}
}

func TestClassify_Interactions(t *testing.T) {
	tests := []struct {
		name           string
		ev             *models.RawEvent
		wantLabel      models.IntentClass
		wantConfidence float64
	}{
		{
			name:           "password input is authentication",
			ev:             interaction("input", &models.Fingerprint{TagName: "input", InputType: "password"}),
			wantLabel:      models.IntentAuthentication,
			wantConfidence: 0.85,
		},
		{
			name:           "email input is authentication",
			ev:             interaction("input", &models.Fingerprint{TagName: "input", InputType: "email"}),
			wantLabel:      models.IntentAuthentication,
			wantConfidence: 0.85,
		},
		{
			name:           "text input is data entry",
			ev:             interaction("input", &models.Fingerprint{TagName: "input", InputType: "text"}),
			wantLabel:      models.IntentDataEntry,
			wantConfidence: 0.90,
		},
		{
			name:           "paste is data entry",
			ev:             interaction("paste", nil),
			wantLabel:      models.IntentDataEntry,
			wantConfidence: 0.90,
		},
		{
			name:           "navigate action",
			ev:             interaction("navigate", nil),
			wantLabel:      models.IntentNavigation,
			wantConfidence: 0.95,
		},
		{
			name:           "anchor click is navigation",
			ev:             interaction("click", &models.Fingerprint{TagName: "a"}),
			wantLabel:      models.IntentNavigation,
			wantConfidence: 0.85,
		},
		{
			name:           "checkbox click is configuration",
			ev:             interaction("click", &models.Fingerprint{TagName: "input", InputType: "checkbox"}),
			wantLabel:      models.IntentConfiguration,
			wantConfidence: 0.75,
		},
		{
			name:           "submit button inside form is data entry",
			ev:             interaction("click", &models.Fingerprint{TagName: "button", DOMPath: []string{"body", "form", "button"}}),
			wantLabel:      models.IntentDataEntry,
			wantConfidence: 0.80,
		},
		{
			name:           "button with explicit form association is data entry",
			ev:             interaction("click", &models.Fingerprint{TagName: "button", FormID: "checkout"}),
			wantLabel:      models.IntentDataEntry,
			wantConfidence: 0.80,
		},
		{
			name:           "bare button click is workflow transition",
			ev:             interaction("click", &models.Fingerprint{TagName: "button"}),
			wantLabel:      models.IntentWorkflowTransition,
			wantConfidence: 0.70,
		},
		{
			name:           "aria button role counts as button",
			ev:             interaction("click", &models.Fingerprint{TagName: "div", ARIA: models.ARIA{Role: "button"}}),
			wantLabel:      models.IntentWorkflowTransition,
			wantConfidence: 0.70,
		},
		{
			name:           "select is data entry",
			ev:             interaction("select", nil),
			wantLabel:      models.IntentDataEntry,
			wantConfidence: 0.85,
		},
		{
			name:           "copy is data extraction",
			ev:             interaction("copy", nil),
			wantLabel:      models.IntentDataExtraction,
			wantConfidence: 0.80,
		},
		{
			name:           "scroll is research",
			ev:             interaction("scroll", nil),
			wantLabel:      models.IntentResearch,
			wantConfidence: 0.50,
		},
		{
			name:           "focus is weak navigation",
			ev:             interaction("focus", nil),
			wantLabel:      models.IntentNavigation,
			wantConfidence: 0.40,
		},
		{
			name:           "unclassified interaction is unknown",
			ev:             interaction("hover", nil),
			wantLabel:      models.IntentUnknown,
			wantConfidence: 0.20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ev)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
		})
	}
}

func TestClassify_Network(t *testing.T) {
	tests := []struct {
		name           string
		ev             *models.RawEvent
		wantLabel      models.IntentClass
		wantConfidence float64
	}{
		{
			name:           "post to auth url",
			ev:             network("POST", "https://api.example.com/auth/login", 200),
			wantLabel:      models.IntentAuthentication,
			wantConfidence: 0.85,
		},
		{
			name:           "post to messaging url",
			ev:             network("post", "https://api.example.com/message/send", 200),
			wantLabel:      models.IntentCommunication,
			wantConfidence: 0.75,
		},
		{
			name:           "generic put is data entry",
			ev:             network("PUT", "https://api.example.com/records/1", 200),
			wantLabel:      models.IntentDataEntry,
			wantConfidence: 0.70,
		},
		{
			name:           "delete is workflow transition",
			ev:             network("DELETE", "https://api.example.com/records/1", 204),
			wantLabel:      models.IntentWorkflowTransition,
			wantConfidence: 0.70,
		},
		{
			name:           "get search is research",
			ev:             network("GET", "https://api.example.com/search?q=reports", 200),
			wantLabel:      models.IntentResearch,
			wantConfidence: 0.70,
		},
		{
			name:           "get export is data extraction",
			ev:             network("GET", "https://api.example.com/export/csv", 200),
			wantLabel:      models.IntentDataExtraction,
			wantConfidence: 0.75,
		},
		{
			name:           "failed request is error handling",
			ev:             network("GET", "https://api.example.com/records", 500),
			wantLabel:      models.IntentErrorHandling,
			wantConfidence: 0.60,
		},
		{
			name:           "plain get is unknown",
			ev:             network("GET", "https://api.example.com/records", 200),
			wantLabel:      models.IntentUnknown,
			wantConfidence: 0.20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ev)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
		})
	}
}

func TestClassify_Mutations(t *testing.T) {
	bulk := &models.RawEvent{
		EventType: models.EventTypeDOMMutation,
		Payload: models.RawPayload{Mutations: []models.MutationRecord{
			{AddedNodes: 18, RemovedNodes: 5},
		}},
	}
	got := Classify(bulk)
	assert.Equal(t, models.IntentNavigation, got.Label)
	assert.InDelta(t, 0.60, got.Confidence, 1e-9)

	form := &models.RawEvent{
		EventType: models.EventTypeDOMMutation,
		Payload: models.RawPayload{Mutations: []models.MutationRecord{
			{AddedNodes: 1, Target: &models.Fingerprint{TagName: "input"}},
		}},
	}
	got = Classify(form)
	assert.Equal(t, models.IntentDataEntry, got.Label)
	assert.InDelta(t, 0.50, got.Confidence, 1e-9)

	quiet := &models.RawEvent{
		EventType: models.EventTypeDOMMutation,
		Payload: models.RawPayload{Mutations: []models.MutationRecord{
			{AddedNodes: 2, Target: &models.Fingerprint{TagName: "div"}},
		}},
	}
	got = Classify(quiet)
	assert.Equal(t, models.IntentUnknown, got.Label)
}

func TestClassify_ErrorAndNil(t *testing.T) {
	got := Classify(&models.RawEvent{EventType: models.EventTypeError})
	assert.Equal(t, models.IntentErrorHandling, got.Label)
	assert.InDelta(t, 0.90, got.Confidence, 1e-9)

	got = Classify(nil)
	assert.Equal(t, models.IntentUnknown, got.Label)
	assert.InDelta(t, 0.10, got.Confidence, 1e-9)
}
