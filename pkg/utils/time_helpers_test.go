package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNullTime(t *testing.T) {
	t.Run("nil stays null", func(t *testing.T) {
		got, err := ParseNullTime("planned_date", nil)
		require.NoError(t, err)
		assert.False(t, got.Valid)
	})

	t.Run("empty string stays null", func(t *testing.T) {
		empty := ""
		got, err := ParseNullTime("planned_date", &empty)
		require.NoError(t, err)
		assert.False(t, got.Valid)
	})

	t.Run("accepted formats", func(t *testing.T) {
		for _, value := range []string{
			"2026-03-15T10:00:00Z",
			"2026-03-15T10:00:00",
			"2026-03-15 10:00:00",
			"2026-03-15",
		} {
			v := value
			got, err := ParseNullTime("planned_date", &v)
			require.NoError(t, err, value)
			assert.True(t, got.Valid, value)
			assert.Equal(t, 2026, got.Time.Year())
			assert.Equal(t, time.March, got.Time.Month())
		}
	})

	t.Run("garbage is a 400 naming the field", func(t *testing.T) {
		bad := "next tuesday"
		_, err := ParseNullTime("resolved_at", &bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolved_at")
	})
}
