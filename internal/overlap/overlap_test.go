package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siasistenApi/internal/siasisten"
)

func logAt(no, date, start, end string) siasisten.ActivityLog {
	return siasisten.ActivityLog{No: no, Date: date, Start: start, End: end, Course: "DDP", Description: "asistensi " + no}
}

func TestFind_ReportsOnlyIntersectingPair(t *testing.T) {
	logs := []siasisten.ActivityLog{
		logAt("1", "15-01-2024", "09:00", "10:00"),
		logAt("2", "15-01-2024", "09:30", "10:30"),
		logAt("3", "15-01-2024", "11:00", "12:00"),
	}

	pairs, err := Find(logs)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "09:00", pairs[0].Log1.StartTime)
	assert.Equal(t, "09:30", pairs[0].Log2.StartTime)
	assert.Equal(t, "DDP", pairs[0].Log1.Course)
}

func TestFind_TouchingRangesDoNotOverlap(t *testing.T) {
	pairs, err := Find([]siasisten.ActivityLog{
		logAt("1", "15-01-2024", "09:00", "10:00"),
		logAt("2", "15-01-2024", "10:00", "11:00"),
	})
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFind_DifferentDatesDoNotOverlap(t *testing.T) {
	pairs, err := Find([]siasisten.ActivityLog{
		logAt("1", "15-01-2024", "09:00", "10:00"),
		logAt("2", "16-01-2024", "09:00", "10:00"),
	})
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFind_SymmetricAndNoSelfPairs(t *testing.T) {
	a := logAt("1", "15-01-2024", "08:00", "12:00")
	b := logAt("2", "15-01-2024", "09:00", "10:00")

	forward, err := Find([]siasisten.ActivityLog{a, b})
	require.NoError(t, err)
	backward, err := Find([]siasisten.ActivityLog{b, a})
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, forward[0].Log1, backward[0].Log2)
	assert.Equal(t, forward[0].Log2, backward[0].Log1)

	single, err := Find([]siasisten.ActivityLog{a})
	require.NoError(t, err)
	assert.Empty(t, single)
}

func TestFind_MidnightRollover(t *testing.T) {
	pairs, err := Find([]siasisten.ActivityLog{
		logAt("1", "15-01-2024", "23:00", "01:00"),
		logAt("2", "16-01-2024", "00:30", "02:00"),
	})
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestFind_BadDate(t *testing.T) {
	_, err := Find([]siasisten.ActivityLog{logAt("1", "15 Jan 2024", "09:00", "10:00")})
	require.Error(t, err)
	assert.ErrorIs(t, err, siasisten.ErrParse)
}
