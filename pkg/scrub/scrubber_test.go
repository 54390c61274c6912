package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_EntityKinds(t *testing.T) {
	s := NewScrubber()

	tests := []struct {
		name string
		text string
		want EntityType
	}{
		{name: "email", text: "contact alice@example.com please", want: EntityEmail},
		{name: "ssn", text: "ssn is 123-45-6789 on file", want: EntitySSN},
		{name: "credit card spaced", text: "card 4111 1111 1111 1111 used", want: EntityCreditCard},
		{name: "credit card dashed", text: "card 4111-1111-1111-1111 used", want: EntityCreditCard},
		{name: "ip address", text: "seen from 192.168.1.100 today", want: EntityIPAddress},
		{name: "phone", text: "call (555) 123-4567 now", want: EntityPhone},
		{name: "iso dob", text: "born 1990-05-17 apparently", want: EntityDOB},
		{name: "bearer token", text: "Bearer eyJhbGciOiJIUzI1NiJ9.payload", want: EntityAuthToken},
		{name: "password assignment", text: "password: hunter2", want: EntityAuthToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := s.Detect(tt.text)
			require.Len(t, entities, 1)
			assert.Equal(t, tt.want, entities[0].Type)
			assert.Equal(t, tt.text[entities[0].Start:entities[0].End], entities[0].Value)
		})
	}
}

func TestDetect_NoPII(t *testing.T) {
	s := NewScrubber()

	assert.Nil(t, s.Detect("click the save button"))
	assert.Nil(t, s.Detect(""))
	assert.False(t, s.ContainsPII("click the save button"))
}

func TestDetect_OverlapLongerWins(t *testing.T) {
	s := NewScrubber()

	// "password: hunter2" (17 bytes, AUTH_TOKEN) overlaps the 19-byte email
	// match "hunter2@example.com"; the email survives.
	text := "password: hunter2@example.com"
	entities := s.Detect(text)
	require.Len(t, entities, 1)
	assert.Equal(t, EntityEmail, entities[0].Type)
	assert.Equal(t, "hunter2@example.com", entities[0].Value)
}

func TestScrub_ReplacesWithTokens(t *testing.T) {
	s := NewScrubber()

	got := s.Scrub("email alice@example.com or call (555) 123-4567")
	assert.Equal(t, "email [EMAIL_1] or call [PHONE_1]", got)
}

func TestScrub_PasswordValueNeverSurvives(t *testing.T) {
	s := NewScrubber()

	got := s.Scrub("password: hunter2")
	assert.Equal(t, "[AUTH_TOKEN_1]", got)
	assert.NotContains(t, got, "hunter2")
}

func TestScrub_TokensStableWithinSession(t *testing.T) {
	s := NewScrubber()

	first := s.Scrub("from alice@example.com")
	second := s.Scrub("reply to alice@example.com and cc bob@example.com")

	assert.Equal(t, "from [EMAIL_1]", first)
	assert.Equal(t, "reply to [EMAIL_1] and cc [EMAIL_2]", second)
}

func TestScrub_NormalizedVariantsShareToken(t *testing.T) {
	s := NewScrubber()

	first := s.Scrub("Alice@Example.com")
	second := s.Scrub("alice@example.com")
	assert.Equal(t, first, second)
}

func TestReset_ClearsTokenTable(t *testing.T) {
	s := NewScrubber()

	_ = s.Scrub("first alice@example.com")
	_ = s.Scrub("then bob@example.com")
	s.Reset()

	got := s.Scrub("now bob@example.com")
	assert.Equal(t, "now [EMAIL_1]", got)
}

func TestScrub_UnchangedWithoutMatches(t *testing.T) {
	s := NewScrubber()

	text := "plain workflow text with no identifiers"
	assert.Equal(t, text, s.Scrub(text))
}
