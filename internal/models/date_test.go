package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 1)

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, decoded.Equal(d.Time))
}

func TestDate_RejectsTimestamps(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2024-01-01T10:00:00Z"`), &d)
	assert.Error(t, err)
}

func TestDateOf_TruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-15", d.String())
}

func TestPlant_NullFieldsMarshalAsNull(t *testing.T) {
	encoded, err := json.Marshal(Plant{PlantID: 1, Name: "Cactus", Type: "Succulent"})
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"height":null`)
	assert.Contains(t, string(encoded), `"date_acquired":null`)
}
