package karma

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

func TestGiverHistogram(t *testing.T) {
	events := []model.ScoreEvent{
		event("U1", "UA", "C1", 1, "2024-01-01"),
		event("U1", "UB", "C1", 1, "2024-01-01"),
		event("U1", "UA", "C1", 1, "2024-01-02"),
	}

	hist := GiverHistogram(events)
	require.Len(t, hist, 2)
	assert.Contains(t, hist, model.KarmaShare{Name: "UA", Value: 2})
	assert.Contains(t, hist, model.KarmaShare{Name: "UB", Value: 1})

	// Loi de l'histogramme: la somme des parts égale la taille du registre.
	sum := 0
	for _, share := range hist {
		sum += share.Value
	}
	assert.Equal(t, len(events), sum)
}

func TestGiverHistogramEmpty(t *testing.T) {
	assert.Empty(t, GiverHistogram(nil))
}

func TestDailyCountsBucketsByUTCDate(t *testing.T) {
	events := []model.ScoreEvent{
		event("U1", "UA", "C1", 1, "2024-01-01"),
		event("U1", "UB", "C1", 1, "2024-01-01"),
		event("U1", "UA", "C1", 1, "2024-01-03"),
	}

	points := DailyCounts(events, Received)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.Zero(t, p.Sent)
		switch p.Date {
		case "2024-01-01":
			assert.Equal(t, 2, p.Received)
		case "2024-01-03":
			assert.Equal(t, 1, p.Received)
		default:
			t.Fatalf("unexpected date %s", p.Date)
		}
	}

	sent := DailyCounts(events, Sent)
	for _, p := range sent {
		assert.Zero(t, p.Received)
	}
}

func TestMergeActivity(t *testing.T) {
	received := []model.DailyActivityPoint{
		{Date: "2024-01-01", Received: 2},
		{Date: "2024-01-03", Received: 1},
	}
	sent := []model.DailyActivityPoint{
		{Date: "2024-01-01", Sent: 1},
		{Date: "2024-01-02", Sent: 4},
	}

	merged := MergeActivity(received, sent)
	require.Equal(t, []model.DailyActivityPoint{
		{Date: "2024-01-01", Received: 2, Sent: 1},
		{Date: "2024-01-02", Sent: 4},
		{Date: "2024-01-03", Received: 1},
	}, merged)

	// Le merge ne dépend pas de l'ordre des séries.
	swapped := MergeActivity(sent, received)
	assert.Equal(t, merged, swapped)
}

func TestMergeActivitySortedSparse(t *testing.T) {
	merged := MergeActivity(
		[]model.DailyActivityPoint{{Date: "2024-03-10", Received: 1}},
		[]model.DailyActivityPoint{{Date: "2023-12-31", Sent: 2}},
	)
	require.Len(t, merged, 2)
	assert.Equal(t, "2023-12-31", merged[0].Date)
	assert.Equal(t, "2024-03-10", merged[1].Date)
}

func TestBuildProfile(t *testing.T) {
	dir := newFakeDirectory()
	dir.handles["U1"] = "alice"
	dir.realNames["U1"] = "Alice Smith"
	dir.realNames["U2"] = "Bob Jones"

	src := &fakeSource{
		top: []model.TopScore{
			{Item: "U2", Score: 10},
			{Item: "U1", Score: 7},
		},
		received: []model.ScoreEvent{
			event("U1", "UA", "C1", 1, "2024-01-01"),
			event("U1", "UA", "C1", 1, "2024-01-01"),
			event("U1", "UB", "C1", 1, "2024-01-02"),
		},
		given: []model.ScoreEvent{
			event("U2", "U1", "C1", 1, "2024-01-01"),
		},
	}
	e := New(src, dir)

	profile, err := e.BuildProfile(context.Background(), ProfileQuery{
		Handle:    "@alice",
		ChannelID: "C1",
		Direction: "to",
		Page:      1,
		PageSize:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", profile.NameSurname)
	assert.Equal(t, 2, profile.UserRank)
	assert.Equal(t, 3, profile.AllKarma)
	assert.Equal(t, 1, profile.KarmaGiven)

	assert.ElementsMatch(t, []model.KarmaShare{
		{Name: "UA", Value: 2},
		{Name: "UB", Value: 1},
	}, profile.KarmaDivided)

	require.Equal(t, []model.DailyActivityPoint{
		{Date: "2024-01-01", Received: 2, Sent: 1},
		{Date: "2024-01-02", Received: 1},
	}, profile.Activity)

	// Page d'affichage paginée, total non paginé.
	assert.Len(t, profile.Feed, 2)
	assert.Equal(t, 3, profile.Count)
}

func TestBuildProfileUnrankedUserGetsRankZero(t *testing.T) {
	dir := newFakeDirectory()
	dir.handles["U9"] = "mallory"

	src := &fakeSource{
		top: []model.TopScore{{Item: "U2", Score: 10}},
	}
	e := New(src, dir)

	profile, err := e.BuildProfile(context.Background(), ProfileQuery{Handle: "U9", Direction: "to"})
	require.NoError(t, err)
	assert.Equal(t, 0, profile.UserRank)
	assert.Equal(t, 0, profile.AllKarma)
	assert.Empty(t, profile.Activity)
}

func TestBuildProfileUnknownHandle(t *testing.T) {
	e := New(&fakeSource{}, newFakeDirectory())

	_, err := e.BuildProfile(context.Background(), ProfileQuery{Handle: "nobody"})
	var rerr *RetrievalError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "user lookup", rerr.Op)
}

func TestBuildProfileRetrievalFailureAborts(t *testing.T) {
	dir := newFakeDirectory()
	dir.handles["U1"] = "alice"
	boom := errors.New("connection reset")

	src := &fakeSource{
		top:       []model.TopScore{{Item: "U1", Score: 1}},
		ledgerErr: map[string]error{"to": boom},
	}
	e := New(src, dir)

	// Aucun profil partiel: l'échec d'une seule récupération annule tout.
	profile, err := e.BuildProfile(context.Background(), ProfileQuery{Handle: "U1", Direction: "to"})
	require.Nil(t, profile)
	var rerr *RetrievalError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, boom)
}

func TestBuildProfileTopScoresFailureAborts(t *testing.T) {
	dir := newFakeDirectory()
	dir.handles["U1"] = "alice"

	src := &fakeSource{topErr: errors.New("timeout")}
	e := New(src, dir)

	profile, err := e.BuildProfile(context.Background(), ProfileQuery{Handle: "U1"})
	require.Nil(t, profile)
	var rerr *RetrievalError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "top scores", rerr.Op)
}
