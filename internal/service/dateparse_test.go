package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBirthDate(t *testing.T) {
	t.Parallel()

	t.Run("accepts dd/mm/yyyy", func(t *testing.T) {
		got, err := ParseBirthDate("12/04/1998")
		require.NoError(t, err)
		require.Equal(t, time.Date(1998, time.April, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("accepts yyyy-mm-dd", func(t *testing.T) {
		got, err := ParseBirthDate("1998-04-12")
		require.NoError(t, err)
		require.Equal(t, time.Date(1998, time.April, 12, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		_, err := ParseBirthDate(" 12/04/1998 ")
		require.NoError(t, err)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, in := range []string{
			"",
			"12.04.1998",
			"12-04-1998",
			"1998/04/12",
			"12/04",
			"12/04/1998/extra",
			"31/02/2000",
			"2000-02-31",
			"hoy",
		} {
			_, err := ParseBirthDate(in)
			require.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
		}
	})
}
