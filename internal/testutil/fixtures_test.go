package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/substrate/schema"
)

func TestFixtures_AreValid(t *testing.T) {
	tests := []struct {
		name    string
		root    *schema.Root
		variant schema.ProviderVariant
	}{
		{"cataloger", CatalogerRoot(), schema.ProviderCataloger},
		{"producer", ProducerRoot(), schema.ProviderProducer},
		{"reviewer", ReviewerRoot(), schema.ProviderReviewer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.root.Validate())
			assert.Equal(t, tt.variant, tt.root.Meta.Variant)
			assert.Equal(t, FixedTime, *tt.root.Meta.CreationTimestamp)
			assert.Len(t, tt.root.Data.Entries(), 2)
		})
	}
}

func TestFixtures_FreshPerCall(t *testing.T) {
	a := CatalogerRoot()
	b := CatalogerRoot()

	a.Data.(*schema.CatalogerData).Products[0].Names[0] = "changed"

	assert.Equal(t, "Fairphone 5", b.Data.(*schema.CatalogerData).Products[0].Names[0])
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "doc.jsonl", "{}\n")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
}
