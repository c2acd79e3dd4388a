package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`ToSnakeCase check`, func(t *testing.T) {
		require.Equal(t, "worker_code", ToSnakeCase("WorkerCode"))
		require.Equal(t, "line_user_id", ToSnakeCase("LineUserID"))
		require.Equal(t, "email", ToSnakeCase("Email"))
	})

	t.Run(`IsMonthKey check`, func(t *testing.T) {
		require.True(t, IsMonthKey("2026-08"))
		require.True(t, IsMonthKey("2026-12"))
		require.False(t, IsMonthKey("2026-13"))
		require.False(t, IsMonthKey("2026-00"))
		require.False(t, IsMonthKey("2026-8"))
		require.False(t, IsMonthKey("2026-08-01"))
		require.False(t, IsMonthKey(""))
	})

	t.Run(`ParseDate check`, func(t *testing.T) {
		date, err := ParseDate("2026-08-28")
		require.Nil(t, err)
		require.Equal(t, 2026, date.Year())

		_, err = ParseDate("28/08/2026")
		require.NotNil(t, err)
	})
}
