package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDayType(t *testing.T) {
	want := map[Day]string{
		Monday:    Weekday,
		Tuesday:   Weekday,
		Wednesday: Weekday,
		Thursday:  Weekday,
		Friday:    Weekday,
		Saturday:  Weekend,
		Sunday:    Weekend,
	}

	for d, w := range want {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, w, GetDayType(d))
		})
	}
}

func TestOrdinals(t *testing.T) {
	assert.Equal(t, 0, int(Monday))
	assert.Equal(t, 6, int(Sunday))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Saturday", Saturday.String())
	assert.Equal(t, "Day(9)", Day(9).String())
	assert.False(t, Day(-1).Valid())
}

func TestParse(t *testing.T) {
	d, err := Parse("  saturday ")
	require.NoError(t, err)
	assert.Equal(t, Saturday, d)

	d, err = Parse("WEDNESDAY")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = Parse("funday")
	require.ErrorIs(t, err, ErrUnknownDay)
}
