package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	v, err := StringList{"growth", "reach"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["growth","reach"]`, v)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, StringList{"growth", "reach"}, out)
}

func TestStringListScanEdgeCases(t *testing.T) {
	var out StringList
	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)

	require.NoError(t, out.Scan(""))
	assert.Empty(t, out)

	require.NoError(t, out.Scan([]byte(`["a"]`)))
	assert.Equal(t, StringList{"a"}, out)

	assert.Error(t, out.Scan(42))
}

func TestStringMapRoundTrip(t *testing.T) {
	v, err := StringMap{"apiKey": "k"}.Value()
	require.NoError(t, err)

	var out StringMap
	require.NoError(t, out.Scan(v))
	assert.Equal(t, StringMap{"apiKey": "k"}, out)

	// nil map marshals as an empty object, not null
	v, err = StringMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `{}`, v)
}

func TestValidAccountType(t *testing.T) {
	for _, ok := range []AccountType{AccountTwitter, AccountLinkedIn, AccountFacebook, AccountInstagram} {
		assert.True(t, ValidAccountType(ok), string(ok))
	}
	assert.False(t, ValidAccountType("MYSPACE"))
	assert.False(t, ValidAccountType(""))
}
