package karma

import (
	"context"
	"fmt"
	"strings"
	"time"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// Collaborateurs en mémoire pour les tests du moteur.

type fakeDirectory struct {
	realNames map[string]string
	handles   map[string]string
	channels  map[string]string
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		realNames: map[string]string{},
		handles:   map[string]string{},
		channels:  map[string]string{},
	}
}

func (d *fakeDirectory) UserID(_ context.Context, handle string) (string, error) {
	h := strings.TrimPrefix(handle, "@")
	for id, name := range d.handles {
		if name == h {
			return id, nil
		}
	}
	if d.Classify(h) == KindUser {
		return h, nil
	}
	return "", fmt.Errorf("unknown handle %q", handle)
}

func (d *fakeDirectory) DisplayName(_ context.Context, id string, preferHandle bool) string {
	if !preferHandle {
		if name, ok := d.realNames[id]; ok && name != "" {
			return name
		}
	}
	if handle, ok := d.handles[id]; ok && handle != "" {
		return handle
	}
	return UnknownName
}

func (d *fakeDirectory) ChannelName(_ context.Context, id string) (string, error) {
	name, ok := d.channels[id]
	if !ok {
		return "", fmt.Errorf("unknown channel %q", id)
	}
	return name, nil
}

func (d *fakeDirectory) Classify(id string) EntityKind {
	if strings.HasPrefix(id, "U") || strings.HasPrefix(id, "W") {
		return KindUser
	}
	return KindNamedItem
}

type fakeSource struct {
	top       []model.TopScore
	topErr    error
	received  []model.ScoreEvent
	given     []model.ScoreEvent
	ledgerErr map[string]error
	queries   []LedgerQuery
}

func (s *fakeSource) TopScores(_ context.Context, _, _ *time.Time, _ string) ([]model.TopScore, error) {
	return s.top, s.topErr
}

func (s *fakeSource) Ledger(_ context.Context, q LedgerQuery) (model.LedgerPage, error) {
	s.queries = append(s.queries, q)
	if err := s.ledgerErr[q.Direction]; err != nil {
		return model.LedgerPage{}, err
	}

	feed := s.received
	if q.Direction == "from" {
		feed = s.given
	}
	page := model.LedgerPage{Feed: feed, Count: len(feed)}
	if q.PageSize > 0 && q.PageSize < len(feed) {
		page.Feed = feed[:q.PageSize]
	}
	return page, nil
}

func event(item, from, channel string, score int, day string) model.ScoreEvent {
	t, _ := time.Parse("2006-01-02", day)
	return model.ScoreEvent{
		Item:       item,
		Score:      score,
		FromUserID: from,
		ChannelID:  channel,
		CreatedAt:  t.Add(9 * time.Hour),
	}
}
