package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewShapes = []string{ScoreReview, Certification, Mention}

func TestMatchReviewShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"score", `{"value": 7}`, ScoreReview},
		{"negative score", `{"value": -1}`, ScoreReview},
		{"empty certification", `{}`, Certification},
		{"certified", `{"is_certified": true}`, Certification},
		{"mention", `{"title": "Report", "url": "https://example.com/r"}`, Mention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match([]byte(tt.input), reviewShapes...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchShapesAllowExtraKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"score with scale", `{"value": 80, "max": 100}`, ScoreReview},
		{"score with comment", `{"value": 1, "comment": "x"}`, ScoreReview},
		{"certification with issuer", `{"is_certified": true, "issuer": "TCO"}`, Certification},
		{"certification with title only", `{"title": "Label"}`, Certification},
		{"fractional value", `{"value": 1.5}`, Certification},
		{"mention with date", `{"title": "T", "url": "u", "date": "2024"}`, Mention},
		{"about score with unit", `{"div": 1, "max": 10, "min": 0, "unit": "pt"}`, AboutScoreReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := reviewShapes
			if tt.expected == AboutScoreReview {
				candidates = []string{AboutScoreReview, AboutCertification}
			}
			got, err := Match([]byte(tt.input), candidates...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchCertificationYieldsTitleAndURL(t *testing.T) {
	// A bad mention is not rescued by the open certification shape.
	_, err := Match([]byte(`{"title": 5, "url": "u"}`), reviewShapes...)
	require.Error(t, err)

	var noMatch *NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, reviewShapes, noMatch.Candidates)
	assert.Len(t, noMatch.Reasons, 3)
	assert.Equal(t, "carries title and url", noMatch.Reasons[1])

	_, err = Match([]byte(`{"title": "T", "url": "u"}`), Certification)
	assert.Error(t, err)
}

func TestMatchRejectsWrongKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-bool certification", `{"is_certified": "yes"}`},
		{"mention with numeric url", `{"title": "Report", "url": 7}`},
		{"scalar", `"review"`},
		{"list", `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Match([]byte(tt.input), reviewShapes...)
			assert.Error(t, err)
		})
	}
}

func TestMatchOrderIsTieBreak(t *testing.T) {
	// An empty object fits both certification shapes; the first declared
	// candidate wins.
	got, err := Match([]byte(`{}`), AboutCertification, Certification)
	require.NoError(t, err)
	assert.Equal(t, AboutCertification, got)

	got, err = Match([]byte(`{}`), Certification, AboutCertification)
	require.NoError(t, err)
	assert.Equal(t, Certification, got)
}

func TestMatchAboutReviewShapes(t *testing.T) {
	got, err := Match([]byte(`{"div": 1, "max": 10, "min": 0}`), AboutScoreReview, AboutCertification)
	require.NoError(t, err)
	assert.Equal(t, AboutScoreReview, got)

	got, err = Match([]byte(`{"div": 1, "body": "eu-ecolabel"}`), AboutScoreReview, AboutCertification)
	require.NoError(t, err)
	assert.Equal(t, AboutCertification, got)
}

func TestMatchRegions(t *testing.T) {
	got, err := Match([]byte(`"all"`), RegionVariant, RegionList)
	require.NoError(t, err)
	assert.Equal(t, RegionVariant, got)

	got, err = Match([]byte(`["DEU", "FRA"]`), RegionVariant, RegionList)
	require.NoError(t, err)
	assert.Equal(t, RegionList, got)

	_, err = Match([]byte(`"everywhere"`), RegionVariant, RegionList)
	assert.Error(t, err)
}

func TestMatchMalformedJSON(t *testing.T) {
	_, err := Match([]byte(`{"value": `), reviewShapes...)
	require.Error(t, err)

	var noMatch *NoMatchError
	assert.False(t, errors.As(err, &noMatch))
}

func TestMatchUnknownShape(t *testing.T) {
	_, err := Match([]byte(`{}`), "#Nope")
	assert.ErrorContains(t, err, "unknown shape")
}
