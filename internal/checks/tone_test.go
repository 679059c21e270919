package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTone_DefaultsProfessional(t *testing.T) {
	text := "Delivered a resilient payments platform that processed high volume traffic for enterprise customers worldwide."
	assert.Equal(t, ToneProfessional, ClassifyTone(text))
}

func TestClassifyTone_Enthusiastic(t *testing.T) {
	assert.Equal(t, ToneEnthusiastic, ClassifyTone("I'm so excited about this amazing opportunity! Can't wait!"))
}

func TestClassifyTone_Formal(t *testing.T) {
	text := "Dear Sir, I would like to respectfully submit my application for your esteemed consideration. Sincerely yours, with all the formality this occasion demands of any serious candidate."
	assert.Equal(t, ToneFormal, ClassifyTone(text))
}

func TestClassifyTone_Conversational(t *testing.T) {
	text := "It's been quite the journey and we're really proud of what the team has built over these last few years, and you'll see that everywhere."
	assert.Equal(t, ToneConversational, ClassifyTone(text))
}

func TestClassifyTone_Deterministic(t *testing.T) {
	text := "I'm excited! We're thrilled."
	first := ClassifyTone(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyTone(text))
	}
}

func TestToneCompatibilityScore_Identity(t *testing.T) {
	for _, tone := range []string{ToneProfessional, ToneConversational, ToneEnthusiastic, ToneFormal, ToneDirect} {
		assert.Equal(t, 1.0, ToneCompatibilityScore(tone, tone))
	}
}

func TestToneCompatibilityScore_UnknownIsNeutral(t *testing.T) {
	assert.Equal(t, 0.5, ToneCompatibilityScore("sarcastic", ToneProfessional))
	assert.Equal(t, 0.5, ToneCompatibilityScore(ToneProfessional, "sarcastic"))
}

func TestCheckToneCompatibility_Compliant(t *testing.T) {
	text := "Delivered a resilient payments platform that processed high volume traffic for enterprise customers worldwide."
	result := CheckToneCompatibility(draft(text), ToneProfessional)
	assert.True(t, result.Passed)
	assert.Equal(t, 100.0, result.SubScore)
	assert.Empty(t, result.Issues)
}

func TestCheckToneCompatibility_Incompatible(t *testing.T) {
	result := CheckToneCompatibility(draft("I'm so excited about this amazing opportunity! Can't wait!"), ToneFormal)
	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Message, "enthusiastic")
	assert.Contains(t, result.Issues[0].Message, "formal")
}

func TestCheckToneCompatibility_EmptyTargetDefaultsProfessional(t *testing.T) {
	text := "Delivered a resilient payments platform that processed high volume traffic for enterprise customers worldwide."
	result := CheckToneCompatibility(draft(text), "")
	assert.True(t, result.Passed)
}
