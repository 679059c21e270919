package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank_Ordering(t *testing.T) {
	assert.Less(t, SeverityCritical.Rank(), SeverityMajor.Rank())
	assert.Less(t, SeverityMajor.Rank(), SeverityMinor.Rank())
}

func TestSeverityRank_UnknownSortsLast(t *testing.T) {
	assert.Greater(t, Severity("bogus").Rank(), SeverityMinor.Rank())
}

func TestCheckResultHasCritical(t *testing.T) {
	r := CheckResult{Issues: []Issue{
		{Severity: SeverityMinor},
		{Severity: SeverityCritical},
	}}
	assert.True(t, r.HasCritical())

	r = CheckResult{Issues: []Issue{{Severity: SeverityMajor}}}
	assert.False(t, r.HasCritical())

	r = CheckResult{}
	assert.False(t, r.HasCritical())
}

func TestEvaluationRoundAllIssues(t *testing.T) {
	round := EvaluationRound{CheckResults: []CheckResult{
		{Name: "a", Issues: []Issue{{Message: "first"}, {Message: "second"}}},
		{Name: "b"},
		{Name: "c", Issues: []Issue{{Message: "third"}}},
	}}

	issues := round.AllIssues()
	assert.Len(t, issues, 3)
	assert.Equal(t, "first", issues[0].Message)
	assert.Equal(t, "third", issues[2].Message)
}

func TestEvaluationRoundHasCriticalIssue(t *testing.T) {
	round := EvaluationRound{CheckResults: []CheckResult{
		{Issues: []Issue{{Severity: SeverityMinor}}},
		{Issues: []Issue{{Severity: SeverityCritical}}},
	}}
	assert.True(t, round.HasCriticalIssue())

	round = EvaluationRound{CheckResults: []CheckResult{{}}}
	assert.False(t, round.HasCriticalIssue())
}

func TestExperienceClaimIsSynthetic(t *testing.T) {
	cases := []struct {
		id        int64
		synthetic bool
	}{
		{101, false},
		{-1, false},
		{SyntheticIDFloor, false},
		{SyntheticIDFloor - 1, true},
		{-999999, true},
	}
	for _, tc := range cases {
		claim := ExperienceClaim{ExperienceID: tc.id}
		assert.Equal(t, tc.synthetic, claim.IsSynthetic(), "id %d", tc.id)
	}
}
