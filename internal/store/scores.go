package store

import (
	"context"
	"fmt"
	"time"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// TopScores agrège les événements de score par entité sur la fenêtre
// demandée, trié par score décroissant (précondition du Ranker). Channel et
// bornes de dates sont optionnels.
func (s *Store) TopScores(ctx context.Context, start, end *time.Time, channelID string) ([]model.TopScore, error) {
	query := `
		SELECT se.item, SUM(se.score) AS score
		FROM score_events se
		WHERE 1=1`
	args := []interface{}{}

	if channelID != "" {
		args = append(args, channelID)
		query += fmt.Sprintf(" AND se.channel_id = $%d", len(args))
	}
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND se.created_at >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND se.created_at <= $%d", len(args))
	}
	query += `
		GROUP BY se.item
		ORDER BY score DESC, se.item ASC`

	rows, err := s.pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query top scores: %w", err)
	}
	defer rows.Close()

	var scores []model.TopScore
	for rows.Next() {
		var ts model.TopScore
		if err := rows.Scan(&ts.Item, &ts.Score); err != nil {
			return nil, fmt.Errorf("could not scan top score row: %w", err)
		}
		scores = append(scores, ts)
	}
	return scores, rows.Err()
}

// Ledger retourne une page du registre d'événements pour une entité et une
// direction ("from": donnés, "to": reçus), plus le total non paginé.
// PageSize == 0 retourne tout le registre. Search filtre sur l'autre bout de
// la transaction (handle ou vrai nom du donneur/receveur).
func (s *Store) Ledger(ctx context.Context, q karma.LedgerQuery) (model.LedgerPage, error) {
	var page model.LedgerPage

	entityCol := "se.item"
	otherCol := "se.from_user_id"
	if q.Direction == "from" {
		entityCol = "se.from_user_id"
		otherCol = "se.item"
	}

	where := fmt.Sprintf(" WHERE %s = $1", entityCol)
	args := []interface{}{q.EntityID}

	if q.ChannelID != "" {
		args = append(args, q.ChannelID)
		where += fmt.Sprintf(" AND se.channel_id = $%d", len(args))
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		where += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM users u
			WHERE u.slack_id = %s AND (u.name ILIKE $%d OR u.real_name ILIKE $%d)
		)`, otherCol, len(args), len(args))
	}

	err := s.pool().QueryRow(ctx,
		`SELECT COUNT(*) FROM score_events se`+where, args...,
	).Scan(&page.Count)
	if err != nil {
		return page, fmt.Errorf("could not count ledger rows: %w", err)
	}

	query := `
		SELECT se.id, se.item, se.score, se.from_user_id, se.channel_id, se.created_at
		FROM score_events se` + where + `
		ORDER BY se.created_at DESC, se.id DESC`

	if q.PageSize > 0 {
		page1 := q.Page
		if page1 < 1 {
			page1 = 1
		}
		args = append(args, q.PageSize, (page1-1)*q.PageSize)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := s.pool().Query(ctx, query, args...)
	if err != nil {
		return page, fmt.Errorf("could not query ledger: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev model.ScoreEvent
		if err := rows.Scan(&ev.ID, &ev.Item, &ev.Score, &ev.FromUserID, &ev.ChannelID, &ev.CreatedAt); err != nil {
			return page, fmt.Errorf("could not scan ledger row: %w", err)
		}
		page.Feed = append(page.Feed, ev)
	}
	return page, rows.Err()
}

// RecordEvent insère un événement de score. Le parsing des "++/--" vit dans
// le transport Slack, pas ici.
func (s *Store) RecordEvent(ctx context.Context, ev *model.ScoreEvent) error {
	err := s.pool().QueryRow(ctx,
		`INSERT INTO score_events(item, score, from_user_id, channel_id, created_at)
		 VALUES($1, $2, $3, $4, NOW())
		 RETURNING id, created_at`,
		ev.Item, ev.Score, ev.FromUserID, ev.ChannelID,
	).Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not record score event: %w", err)
	}
	return nil
}

// Channels liste les channels où du karma a déjà été donné.
func (s *Store) Channels(ctx context.Context) ([]model.Channel, error) {
	rows, err := s.pool().Query(ctx, `
		SELECT c.channel_id, c.name
		FROM channels c
		WHERE EXISTS (SELECT 1 FROM score_events se WHERE se.channel_id = c.channel_id)
		ORDER BY c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query channels: %w", err)
	}
	defer rows.Close()

	var channels []model.Channel
	for rows.Next() {
		var c model.Channel
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("could not scan channel row: %w", err)
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}
