package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailMapJSONRoundTrip(t *testing.T) {
	in := []byte(`{"a@x.com":"Alice","b@x.com":"Bob"}`)

	var m EmailMap
	require.NoError(t, json.Unmarshal(in, &m))
	assert.Equal(t, "Alice", m["a@x.com"])
	assert.Equal(t, "Bob", m["b@x.com"])

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
}

func TestEmailMapDatabaseForm(t *testing.T) {
	m := EmailMap{"b@x.com": "Bob", "a@x.com": "admin"}

	v, err := m.Value()
	require.NoError(t, err)

	// Stored form is an association array, sorted by email.
	assert.JSONEq(t,
		`[{"email":"a@x.com","value":"admin"},{"email":"b@x.com","value":"Bob"}]`,
		string(v.([]byte)))
}

func TestEmailMapScanRoundTrip(t *testing.T) {
	m := EmailMap{"a@x.com": "Alice", "b@x.com": "Bob"}
	v, err := m.Value()
	require.NoError(t, err)

	var got EmailMap
	require.NoError(t, got.Scan(v))
	assert.Equal(t, m, got)
}

func TestEmailMapScanNil(t *testing.T) {
	var m EmailMap
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestEmailMapValueEmpty(t *testing.T) {
	v, err := EmailMap{}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v.([]byte)))
}

func TestStringListContains(t *testing.T) {
	l := StringList{"a@x.com", "b@x.com"}
	assert.True(t, l.Contains("a@x.com"))
	assert.False(t, l.Contains("c@x.com"))
}

func TestStringListScanRoundTrip(t *testing.T) {
	l := StringList{"a@x.com"}
	v, err := l.Value()
	require.NoError(t, err)

	var got StringList
	require.NoError(t, got.Scan(v))
	assert.Equal(t, l, got)
}
