package karma

import (
	"context"
	"sort"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// Direction d'une série d'activité journalière.
type Direction int

const (
	Received Direction = iota
	Sent
)

// BuildProfile assemble le profil complet d'une entité: rang dans le channel,
// totaux reçus/donnés, histogramme des donneurs, série d'activité journalière
// et page du registre pour l'affichage. Toute erreur de récupération fait
// échouer l'assemblage entier; aucun profil partiel n'est retourné.
func (e *Engine) BuildProfile(ctx context.Context, q ProfileQuery) (*model.Profile, error) {
	userID, err := e.dir.UserID(ctx, q.Handle)
	if err != nil {
		return nil, retrievalErr("user lookup", err)
	}

	// Rang dans le leaderboard du channel; 0 si l'entité n'y figure pas.
	top, err := e.src.TopScores(ctx, nil, nil, q.ChannelID)
	if err != nil {
		return nil, retrievalErr("top scores", err)
	}
	ranked, err := e.Rank(ctx, top, KindUser, FormatStructured)
	if err != nil {
		return nil, err
	}
	userRank := 0
	for _, item := range ranked {
		if item.ItemID == userID {
			userRank = item.Rank
			break
		}
	}

	// Registres complets des deux directions pour les totaux et les séries.
	received, err := e.src.Ledger(ctx, LedgerQuery{Direction: "to", EntityID: userID, ChannelID: q.ChannelID})
	if err != nil {
		return nil, retrievalErr("received ledger", err)
	}
	given, err := e.src.Ledger(ctx, LedgerQuery{Direction: "from", EntityID: userID, ChannelID: q.ChannelID})
	if err != nil {
		return nil, retrievalErr("given ledger", err)
	}

	activity := MergeActivity(
		DailyCounts(received.Feed, Received),
		DailyCounts(given.Feed, Sent),
	)

	// Page du registre pour l'affichage (direction demandée, recherche incluse).
	page, err := e.src.Ledger(ctx, LedgerQuery{
		Direction: q.Direction,
		EntityID:  userID,
		ChannelID: q.ChannelID,
		Page:      q.Page,
		PageSize:  q.PageSize,
		Search:    q.Search,
	})
	if err != nil {
		return nil, retrievalErr("ledger page", err)
	}

	return &model.Profile{
		Feed:         page.Feed,
		Count:        page.Count,
		NameSurname:  e.dir.DisplayName(ctx, userID, false),
		AllKarma:     received.Count,
		KarmaGiven:   given.Count,
		UserRank:     userRank,
		KarmaDivided: GiverHistogram(received.Feed),
		Activity:     activity,
	}, nil
}

// GiverHistogram compte les occurrences de chaque donneur distinct dans le
// registre reçu. Une part par donneur, dans l'ordre de première apparition.
func GiverHistogram(events []model.ScoreEvent) []model.KarmaShare {
	counts := make(map[string]int, len(events))
	order := make([]string, 0, len(events))
	for _, ev := range events {
		if _, seen := counts[ev.FromUserID]; !seen {
			order = append(order, ev.FromUserID)
		}
		counts[ev.FromUserID]++
	}

	shares := make([]model.KarmaShare, 0, len(order))
	for _, name := range order {
		shares = append(shares, model.KarmaShare{Name: name, Value: counts[name]})
	}
	return shares
}

// DailyCounts groupe les événements par date calendaire UTC et compte les
// événements par date. Le champ de la direction opposée reste à zéro; le
// merge additionne ensuite les deux séries.
func DailyCounts(events []model.ScoreEvent, dir Direction) []model.DailyActivityPoint {
	counts := make(map[string]int, len(events))
	for _, ev := range events {
		counts[ev.CreatedAt.UTC().Format("2006-01-02")]++
	}

	points := make([]model.DailyActivityPoint, 0, len(counts))
	for date, n := range counts {
		p := model.DailyActivityPoint{Date: date}
		if dir == Received {
			p.Received = n
		} else {
			p.Sent = n
		}
		points = append(points, p)
	}
	return points
}

// MergeActivity fusionne des séries par date calendaire. Les champs sent et
// received s'additionnent dans l'accumulateur (jamais d'écrasement), donc le
// résultat ne dépend pas de l'ordre des séries et une date présente dans les
// deux directions donne une seule ligne sommée. Les dates absentes des deux
// séries ne sont pas remplies à zéro. Résultat trié par date croissante.
func MergeActivity(series ...[]model.DailyActivityPoint) []model.DailyActivityPoint {
	byDate := make(map[string]*model.DailyActivityPoint)
	for _, s := range series {
		for _, p := range s {
			acc, ok := byDate[p.Date]
			if !ok {
				acc = &model.DailyActivityPoint{Date: p.Date}
				byDate[p.Date] = acc
			}
			acc.Received += p.Received
			acc.Sent += p.Sent
		}
	}

	merged := make([]model.DailyActivityPoint, 0, len(byDate))
	for _, p := range byDate {
		merged = append(merged, *p)
	}
	// Les dates ISO se comparent lexicographiquement.
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	return merged
}
