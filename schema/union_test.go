package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/substrate/internal/shape"
)

func TestReviewDecodeTrialOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Review
	}{
		{"score", `{"value": 82}`, ScoreOf(82)},
		{"certification", `{"is_certified": false}`, Certified(false)},
		{"empty certification", `{}`, Review{Certification: &Certification{}}},
		{"mention", `{"title": "Teardown", "url": "https://example.com/teardown"}`,
			MentionOf("Teardown", "https://example.com/teardown")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Review
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReviewDecodeIgnoresExtraKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Review
	}{
		{"score with scale", `{"value":80,"max":100}`, ScoreOf(80)},
		{"score with comment", `{"value":3,"comment":"ok"}`, ScoreOf(3)},
		{"mention with date", `{"title":"T","url":"u","date":"2024"}`, MentionOf("T", "u")},
		{"certification keeps issuer", `{"is_certified":true,"issuer":"TCO"}`, Review{Certification: &Certification{
			IsCertified: Ptr(true),
			Extra:       map[string]any{"issuer": "TCO"},
		}}},
		{"title alone is a certification", `{"title":"Label"}`, Review{Certification: &Certification{
			Extra: map[string]any{"title": "Label"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Review
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReviewCertificationRoundTripsExtra(t *testing.T) {
	input := `{"is_certified":true,"issuer":"TCO","levels":[1,2],"scope":{"region":"EU"}}`

	var got Review
	require.NoError(t, json.Unmarshal([]byte(input), &got))
	require.NotNil(t, got.Certification)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(data))

	clone := got.Clone()
	assert.True(t, clone.Equal(got))
	clone.Certification.Extra["issuer"] = "EPEAT"
	assert.Equal(t, "TCO", got.Certification.Extra["issuer"])
	assert.False(t, clone.Equal(got))
}

func TestReviewDecodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-bool certification", `{"is_certified":"yes"}`},
		{"mention with numeric url", `{"title":"T","url":7}`},
		{"scalar", `"great"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Review
			err := json.Unmarshal([]byte(tt.input), &got)
			require.Error(t, err)

			var noMatch *shape.NoMatchError
			assert.True(t, errors.As(err, &noMatch))
		})
	}
}

func TestReviewEncode(t *testing.T) {
	tests := []struct {
		name     string
		review   Review
		expected string
	}{
		{"score", ScoreOf(3), `{"value":3}`},
		{"certified", Certified(true), `{"is_certified":true}`},
		{"bare certification", Review{Certification: &Certification{}}, `{}`},
		{"certification with extra", Review{Certification: &Certification{
			IsCertified: Ptr(false),
			Extra:       map[string]any{"issuer": "TCO", "is_certified": true},
		}}, `{"is_certified":false,"issuer":"TCO"}`},
		{"mention", MentionOf("News", "https://example.com/n"), `{"title":"News","url":"https://example.com/n"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.review)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestReviewEncodeInvalid(t *testing.T) {
	_, err := json.Marshal(Review{})
	assert.ErrorIs(t, err, ErrEmptyUnion)

	both := ScoreOf(1)
	both.Mention = &Mention{Title: "x", URL: "y"}
	_, err = json.Marshal(both)
	assert.ErrorIs(t, err, ErrAmbiguousUnion)
}

func TestReviewYAML(t *testing.T) {
	var doc struct {
		Review Review `yaml:"review"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("review:\n  title: Report\n  url: https://example.com/r\n"), &doc))
	assert.Equal(t, MentionOf("Report", "https://example.com/r"), doc.Review)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var back struct {
		Review Review `yaml:"review"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, doc.Review, back.Review)
}

func TestReviewEqual(t *testing.T) {
	assert.True(t, ScoreOf(5).Equal(ScoreOf(5)))
	assert.False(t, ScoreOf(5).Equal(ScoreOf(6)))
	assert.True(t, Certified(true).Equal(Certified(true)))
	assert.False(t, Certified(true).Equal(Review{Certification: &Certification{}}))
	assert.False(t, ScoreOf(1).Equal(Certified(true)))
	assert.True(t, MentionOf("a", "b").Equal(MentionOf("a", "b")))
	assert.False(t, MentionOf("a", "b").Equal(MentionOf("a", "c")))

	withIssuer := Review{Certification: &Certification{IsCertified: Ptr(true), Extra: map[string]any{"issuer": "TCO"}}}
	assert.False(t, Certified(true).Equal(withIssuer))
	assert.True(t, Certified(true).Equal(Review{Certification: &Certification{IsCertified: Ptr(true), Extra: map[string]any{}}}))
}

func TestReviewYAMLKeepsScalarText(t *testing.T) {
	var doc struct {
		Review Review `yaml:"review"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("review:\n  is_certified: true\n  since: 2020-01-01\n  level: 2\n"), &doc))
	require.NotNil(t, doc.Review.Certification)
	assert.Equal(t, map[string]any{"since": "2020-01-01", "level": float64(2)}, doc.Review.Certification.Extra)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var back struct {
		Review Review `yaml:"review"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, doc.Review.Equal(back.Review))
	assert.Equal(t, "2020-01-01", back.Review.Certification.Extra["since"])
}

func TestRegionsCodec(t *testing.T) {
	tests := []struct {
		name    string
		wire    string
		regions Regions
	}{
		{"all", `"all"`, AllRegions()},
		{"unknown", `"unknown"`, UnknownRegions()},
		{"list", `["DEU","FRA"]`, RegionsOf("DEU", "FRA")},
		{"empty list", `[]`, RegionsOf()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.regions)
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(data))

			var got Regions
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &got))
			assert.Equal(t, tt.regions, got)
		})
	}
}

func TestRegionsRejectsUnknownVariant(t *testing.T) {
	var got Regions
	assert.Error(t, json.Unmarshal([]byte(`"everywhere"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"regions": []}`), &got))
}

func TestRegionsYAML(t *testing.T) {
	var doc struct {
		A Regions `yaml:"a"`
		B Regions `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: all\nb:\n  - POL\n  - CZE\n"), &doc))
	assert.Equal(t, AllRegions(), doc.A)
	assert.Equal(t, RegionsOf("POL", "CZE"), doc.B)
}

func TestAboutReviewCodec(t *testing.T) {
	var score AboutReview
	require.NoError(t, json.Unmarshal([]byte(`{"div":10,"max":100,"min":0}`), &score))
	require.NotNil(t, score.Score)
	assert.Nil(t, score.Certification)
	assert.Equal(t, AboutScoreReview{Div: 10, Max: 100, Min: 0}, *score.Score)

	var cert AboutReview
	require.NoError(t, json.Unmarshal([]byte(`{"scheme":"eu-ecolabel","levels":3}`), &cert))
	assert.Nil(t, cert.Score)
	assert.Equal(t, AboutCertification{"scheme": "eu-ecolabel", "levels": float64(3)}, cert.Certification)

	data, err := json.Marshal(cert)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scheme":"eu-ecolabel","levels":3}`, string(data))

	_, err = json.Marshal(AboutReview{})
	assert.ErrorIs(t, err, ErrEmptyUnion)
}

func TestAboutReviewPartialScoreIsCertification(t *testing.T) {
	var got AboutReview
	require.NoError(t, json.Unmarshal([]byte(`{"div":1,"max":5}`), &got))
	assert.Nil(t, got.Score)
	assert.Equal(t, AboutCertification{"div": float64(1), "max": float64(5)}, got.Certification)
}
