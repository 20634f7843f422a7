package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	input := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "2024-03-01T12:30:45Z", FormatTimeForDB(input))
}

func TestFormatTimePtrForDB(t *testing.T) {
	input := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, "2024-03-01T12:30:45Z", FormatTimePtrForDB(&input))
	assert.Nil(t, FormatTimePtrForDB(nil))
}

func TestParseTimeFromDB(t *testing.T) {
	parsed, err := ParseTimeFromDB("2024-03-01T12:30:45Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC), parsed)

	_, err = ParseTimeFromDB("not a timestamp")
	assert.Error(t, err)
}

func TestTimeRoundTrip(t *testing.T) {
	original := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
