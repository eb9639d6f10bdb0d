package feed

import (
	"testing"
	"time"

	"playto/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func award(author uint, target models.LikeTarget, at time.Time) models.LikeAward {
	return models.LikeAward{TargetType: target, AuthorID: author, CreatedAt: at}
}

func TestComputeLeaderboard_Weights(t *testing.T) {
	t.Parallel()

	now := time.Now()
	since := now.Add(-DefaultWindow)

	awards := []models.LikeAward{
		award(2, models.LikeTargetPost, now.Add(-time.Hour)),    // B authored a liked post: +5
		award(3, models.LikeTargetComment, now.Add(-time.Hour)), // C authored a liked comment: +1
	}

	entries := ComputeLeaderboard(awards, since, now, DefaultTopK)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{UserID: 2, Karma: 5}, entries[0])
	assert.Equal(t, Entry{UserID: 3, Karma: 1}, entries[1])
}

func TestComputeLeaderboard_WindowBounds(t *testing.T) {
	t.Parallel()

	now := time.Now()
	since := now.Add(-DefaultWindow)

	awards := []models.LikeAward{
		award(1, models.LikeTargetPost, since.Add(-time.Minute)), // before window
		award(2, models.LikeTargetPost, since),                   // inclusive lower bound
		award(3, models.LikeTargetPost, now),                     // exclusive upper bound
	}

	entries := ComputeLeaderboard(awards, since, now, DefaultTopK)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(2), entries[0].UserID)
}

func TestComputeLeaderboard_AggregatesPerAuthor(t *testing.T) {
	t.Parallel()

	now := time.Now()
	since := now.Add(-DefaultWindow)
	at := now.Add(-time.Hour)

	awards := []models.LikeAward{
		award(7, models.LikeTargetPost, at),
		award(7, models.LikeTargetPost, at),
		award(7, models.LikeTargetComment, at),
	}

	entries := ComputeLeaderboard(awards, since, now, DefaultTopK)
	require.Len(t, entries, 1)
	assert.Equal(t, 11, entries[0].Karma)
}

func TestComputeLeaderboard_TopKAndStableTies(t *testing.T) {
	t.Parallel()

	now := time.Now()
	since := now.Add(-DefaultWindow)
	at := now.Add(-time.Hour)

	// U1:12 U2:9 U3:9 U4:3 — U2 earns before U3, so the tie keeps U2 first.
	awards := []models.LikeAward{
		award(1, models.LikeTargetPost, at),
		award(1, models.LikeTargetPost, at),
		award(1, models.LikeTargetComment, at),
		award(1, models.LikeTargetComment, at),
		award(2, models.LikeTargetPost, at),
		award(2, models.LikeTargetComment, at),
		award(2, models.LikeTargetComment, at),
		award(2, models.LikeTargetComment, at),
		award(2, models.LikeTargetComment, at),
		award(3, models.LikeTargetPost, at),
		award(3, models.LikeTargetComment, at),
		award(3, models.LikeTargetComment, at),
		award(3, models.LikeTargetComment, at),
		award(3, models.LikeTargetComment, at),
		award(4, models.LikeTargetComment, at),
		award(4, models.LikeTargetComment, at),
		award(4, models.LikeTargetComment, at),
	}

	entries := ComputeLeaderboard(awards, since, now, 3)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{UserID: 1, Karma: 12}, entries[0])
	assert.Equal(t, Entry{UserID: 2, Karma: 9}, entries[1])
	assert.Equal(t, Entry{UserID: 3, Karma: 9}, entries[2])
}

func TestComputeLeaderboard_SelfLikeStillCounts(t *testing.T) {
	t.Parallel()

	// No self-like exclusion: the author of the liked content earns karma
	// even when they liked it themselves.
	now := time.Now()
	entries := ComputeLeaderboard(
		[]models.LikeAward{award(5, models.LikeTargetPost, now.Add(-time.Minute))},
		now.Add(-DefaultWindow), now, DefaultTopK,
	)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{UserID: 5, Karma: 5}, entries[0])
}

func TestComputeLeaderboard_UnknownTargetSkipped(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entries := ComputeLeaderboard(
		[]models.LikeAward{award(5, models.LikeTarget("reaction"), now.Add(-time.Minute))},
		now.Add(-DefaultWindow), now, DefaultTopK,
	)
	assert.Empty(t, entries)
}

func TestComputeLeaderboard_Empty(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.Empty(t, ComputeLeaderboard(nil, now.Add(-DefaultWindow), now, DefaultTopK))
}
