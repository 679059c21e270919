package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-refinery/internal/types"
)

func draft(text string) *types.Draft {
	return &types.Draft{Kind: types.DocumentCoverLetter, Text: text}
}

func TestCheckBannedPhrases_Clean(t *testing.T) {
	result := CheckBannedPhrases(draft("Shipped the billing migration ahead of schedule."), false)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 100.0, result.SubScore)
}

func TestCheckBannedPhrases_CriticalOpener(t *testing.T) {
	result := CheckBannedPhrases(draft("I am excited to apply for this position."), false)
	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, types.SeverityCritical, result.Issues[0].Severity)
	assert.Equal(t, types.CategoryBannedPhrase, result.Issues[0].Category)
}

func TestCheckBannedPhrases_EmDashIsMajorPunctuation(t *testing.T) {
	result := CheckBannedPhrases(draft("Fast—and reliable."), false)
	assert.False(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, types.SeverityMajor, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Message, "em-dash")
}

func TestCheckBannedPhrases_MinorDoesNotBlockByDefault(t *testing.T) {
	result := CheckBannedPhrases(draft("A passionate engineer."), false)
	assert.True(t, result.Passed)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, types.SeverityMinor, result.Issues[0].Severity)
}

func TestCheckBannedPhrases_StrictBlocksMinor(t *testing.T) {
	result := CheckBannedPhrases(draft("A passionate engineer."), true)
	assert.False(t, result.Passed)
}

func TestCheckBannedPhrases_OneIssuePerOccurrence(t *testing.T) {
	result := CheckBannedPhrases(draft("synergy now, synergy later, synergy forever"), false)
	assert.Len(t, result.Issues, 3)
}

func TestCheckBannedPhrases_NoMatchInsideLongerWords(t *testing.T) {
	// "dynamic" must not match inside "thermodynamics"
	result := CheckBannedPhrases(draft("Modeled thermodynamics simulations."), false)
	assert.Empty(t, result.Issues)
}

func TestCheckBannedPhrases_IssuesSortedCriticalFirst(t *testing.T) {
	result := CheckBannedPhrases(draft("I am excited to apply. A passionate team player."), false)
	require.GreaterOrEqual(t, len(result.Issues), 3)
	assert.Equal(t, types.SeverityCritical, result.Issues[0].Severity)
	last := result.Issues[len(result.Issues)-1]
	assert.Equal(t, types.SeverityMinor, last.Severity)
}
