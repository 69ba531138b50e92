package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPodiumFor(t *testing.T) {
	testCases := []struct {
		points   int
		expected string
	}{
		{0, ""},
		{49, ""},
		{50, "Bronze"},
		{74, "Bronze"},
		{75, "Silver"},
		{100, "Gold"},
		{250, "Gold"},
	}

	for _, tc := range testCases {
		tier, ok := PodiumFor(tc.points)
		assert.Equal(t, tc.expected != "", ok, "points=%d", tc.points)
		assert.Equal(t, tc.expected, tier.Name, "points=%d", tc.points)
	}
}

func TestNextTier(t *testing.T) {
	next, ok := NextTier(60)
	assert.True(t, ok)
	assert.Equal(t, "Silver", next.Next.Name)
	assert.Equal(t, 15, next.Remaining)
	assert.InDelta(t, 80.0, next.Percent, 1e-9)

	next, ok = NextTier(0)
	assert.True(t, ok)
	assert.Equal(t, "Bronze", next.Next.Name)
	assert.Equal(t, 50, next.Remaining)

	_, ok = NextTier(100)
	assert.False(t, ok)
}
