package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintStable(t *testing.T) {
	a, err := Fingerprint(fairphoneCataloger())
	require.NoError(t, err)
	b, err := Fingerprint(fairphoneCataloger())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintChangesWithContent(t *testing.T) {
	base, err := Fingerprint(fairphoneCataloger())
	require.NoError(t, err)

	changed := fairphoneCataloger()
	changed.Data.(*CatalogerData).Products[0].Names = append(changed.Data.(*CatalogerData).Products[0].Names, "FP5")
	other, err := Fingerprint(changed)
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
}

func TestFingerprintAfterSortIgnoresInsertionOrder(t *testing.T) {
	a := fairphoneCataloger()
	a.Data.(*CatalogerData).Products[0].Names = []string{"FP5", "Fairphone 5"}
	b := fairphoneCataloger()
	b.Data.(*CatalogerData).Products[0].Names = []string{"Fairphone 5", "FP5"}

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)

	a.Sort()
	b.Sort()
	fa, err = Fingerprint(a)
	require.NoError(t, err)
	fb, err = Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
}

func TestHashWithDomainSeparates(t *testing.T) {
	assert.NotEqual(t, hashWithDomain("a", []byte("bc")), hashWithDomain("ab", []byte("c")))
}

func TestFingerprintInvalidRoot(t *testing.T) {
	_, err := Fingerprint(&Root{Meta: NewMeta("t", "1", ProviderCataloger)})
	assert.Error(t, err)
}
