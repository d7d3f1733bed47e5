package substrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"catalog.yaml", FormatYAML, false},
		{"dir/catalog.json", FormatJSON, false},
		{"/abs/path/catalog.jsonl", FormatJSONLines, false},
		{"catalog.tar.jsonl", FormatJSONLines, false},
		{"catalog.YAML", 0, true},
		{"catalog.yml", 0, true},
		{"catalog.ndjson", 0, true},
		{"catalog", 0, true},
		{"dir.json/catalog", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedExtension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Names(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".jsonl", FormatJSONLines.Extension())
	assert.Equal(t, "Format(9)", Format(9).String())

	for _, f := range []Format{FormatYAML, FormatJSON, FormatJSONLines} {
		got, err := DetectFormat("doc" + f.Extension())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}
