package karma

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

func newTestEngine(src *fakeSource, dir *fakeDirectory) *Engine {
	if src == nil {
		src = &fakeSource{}
	}
	if dir == nil {
		dir = newFakeDirectory()
	}
	return New(src, dir)
}

func TestRankStructuredTieLaw(t *testing.T) {
	dir := newFakeDirectory()
	dir.realNames["U1"] = "U1"
	dir.realNames["U2"] = "U2"
	dir.realNames["U3"] = "U3"
	e := newTestEngine(nil, dir)

	ranked, err := e.Rank(context.Background(), []model.TopScore{
		{Item: "U1", Score: 10},
		{Item: "U2", Score: 10},
		{Item: "U3", Score: 8},
	}, KindUser, FormatStructured)
	require.NoError(t, err)

	assert.Equal(t, []model.RankedItem{
		{Rank: 1, Item: "U1", Score: "10 points", ItemID: "U1"},
		{Rank: 1, Item: "U2", Score: "10 points", ItemID: "U2"},
		{Rank: 3, Item: "U3", Score: "8 points", ItemID: "U3"},
	}, ranked)
}

func TestRankFiltersByKind(t *testing.T) {
	e := newTestEngine(nil, nil)
	scores := []model.TopScore{
		{Item: "U1", Score: 12},
		{Item: "coffee", Score: 9},
		{Item: "U2", Score: 4},
		{Item: "friday", Score: 2},
	}

	users, err := e.Rank(context.Background(), scores, KindUser, FormatStructured)
	require.NoError(t, err)
	things, err := e.Rank(context.Background(), scores, KindNamedItem, FormatStructured)
	require.NoError(t, err)

	require.Len(t, users, 2)
	require.Len(t, things, 2)

	// Les deux familles ne partagent jamais une séquence de rangs.
	assert.Equal(t, 1, users[0].Rank)
	assert.Equal(t, 2, users[1].Rank)
	assert.Equal(t, 1, things[0].Rank)
	assert.Equal(t, 2, things[1].Rank)
	assert.Equal(t, "Coffee", things[0].Item)
	assert.Equal(t, "Friday", things[1].Item)
}

func TestRankMonotonicAndBounded(t *testing.T) {
	e := newTestEngine(nil, nil)
	scores := []model.TopScore{
		{Item: "U1", Score: 7},
		{Item: "U2", Score: 7},
		{Item: "coffee", Score: 6},
		{Item: "U3", Score: 5},
		{Item: "U4", Score: 5},
		{Item: "U5", Score: -2},
	}

	ranked, err := e.Rank(context.Background(), scores, KindUser, FormatStructured)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(ranked), len(scores))
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Rank, ranked[i].Rank)
	}
	// [7,7,5,5,-2] côté users → rangs 1,1,3,3,5
	assert.Equal(t, []int{1, 1, 3, 3, 5}, []int{
		ranked[0].Rank, ranked[1].Rank, ranked[2].Rank, ranked[3].Rank, ranked[4].Rank,
	})
}

func TestRankDisplayFormat(t *testing.T) {
	e := newTestEngine(nil, nil)

	ranked, err := e.Rank(context.Background(), []model.TopScore{
		{Item: "U1", Score: 3},
		{Item: "U2", Score: 1},
	}, KindUser, FormatDisplay)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Mention Slack, points pluralisés, marqueur sur le premier seulement.
	assert.Equal(t, "1. <@U1> : 3 points "+userWinnerMark, ranked[0].Text)
	assert.Equal(t, "2. <@U2> : 1 point", ranked[1].Text)
	assert.Zero(t, ranked[0].Rank)
	assert.Empty(t, ranked[0].ItemID)
}

func TestRankDisplayThingWinnerMark(t *testing.T) {
	e := newTestEngine(nil, nil)

	ranked, err := e.Rank(context.Background(), []model.TopScore{
		{Item: "coffee", Score: 2},
	}, KindNamedItem, FormatDisplay)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "1. Coffee : 2 points "+thingWinnerMark, ranked[0].Text)
}

func TestRankUnknownUserDegradesToSentinel(t *testing.T) {
	dir := newFakeDirectory()
	dir.realNames["U1"] = "Alice Smith"
	e := newTestEngine(nil, dir)

	ranked, err := e.Rank(context.Background(), []model.TopScore{
		{Item: "U1", Score: 5},
		{Item: "UGHOST", Score: 2},
	}, KindUser, FormatStructured)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Alice Smith", ranked[0].Item)
	assert.Equal(t, UnknownName, ranked[1].Item)
}

func TestRankHandleFallback(t *testing.T) {
	dir := newFakeDirectory()
	dir.handles["U1"] = "alice"
	e := newTestEngine(nil, dir)

	ranked, err := e.Rank(context.Background(), []model.TopScore{
		{Item: "U1", Score: 1},
	}, KindUser, FormatStructured)
	require.NoError(t, err)
	assert.Equal(t, "alice", ranked[0].Item)
}

func TestRankRejectsUnsortedInput(t *testing.T) {
	e := newTestEngine(nil, nil)

	_, err := e.Rank(context.Background(), []model.TopScore{
		{Item: "U1", Score: 3},
		{Item: "U2", Score: 8},
	}, KindUser, FormatStructured)
	require.ErrorIs(t, err, ErrMalformedScoreRow)
}

func TestRankIdempotent(t *testing.T) {
	e := newTestEngine(nil, nil)
	scores := []model.TopScore{
		{Item: "U1", Score: 4},
		{Item: "U2", Score: 4},
		{Item: "U3", Score: 1},
	}

	first, err := e.Rank(context.Background(), scores, KindUser, FormatStructured)
	require.NoError(t, err)
	second, err := e.Rank(context.Background(), scores, KindUser, FormatStructured)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankEmptyInput(t *testing.T) {
	e := newTestEngine(nil, nil)
	ranked, err := e.Rank(context.Background(), nil, KindUser, FormatDisplay)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{1, "1 point"},
		{-1, "-1 point"},
		{0, "0 points"},
		{2, "2 points"},
		{-5, "-5 points"},
		{100, "100 points"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatPoints(tc.score), "score %d", tc.score)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Coffee", TitleCase("coffee"))
	assert.Equal(t, "Coffee machine", TitleCase("coffee machine"))
	assert.Equal(t, "Été", TitleCase("été"))
	assert.Equal(t, "X", TitleCase("x"))
	assert.Equal(t, "", TitleCase(""))
}
