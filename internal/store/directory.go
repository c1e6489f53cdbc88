package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// Les IDs utilisateur Slack commencent par U ou W suivi d'alphanumérique
// majuscule; tout le reste est un item nommé libre.
var slackUserID = regexp.MustCompile(`^[UW][A-Z0-9]{2,}$`)

// Classify détermine la famille d'une entité à partir du format de son ID.
func (s *Store) Classify(entityID string) karma.EntityKind {
	if slackUserID.MatchString(entityID) {
		return karma.KindUser
	}
	return karma.KindNamedItem
}

// UserID résout un handle vers l'ID Slack canonique. Accepte l'ID brut, la
// mention <@U...> ou le handle avec ou sans @.
func (s *Store) UserID(ctx context.Context, handle string) (string, error) {
	h := strings.TrimSpace(handle)
	h = strings.TrimSuffix(strings.TrimPrefix(h, "<@"), ">")
	h = strings.TrimPrefix(h, "@")

	if slackUserID.MatchString(h) {
		return h, nil
	}

	var id string
	err := s.pool().QueryRow(ctx,
		`SELECT slack_id FROM users WHERE name=$1 AND deleted_at IS NULL`,
		h,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("unknown user handle %q: %w", handle, err)
	}
	return id, nil
}

// DisplayName résout un ID vers un nom lisible. Vrai nom d'abord, repli sur
// le handle, puis sur la sentinelle si l'ID est inconnu. Ne retourne jamais
// d'erreur: un échec de résolution ne doit pas casser un classement.
func (s *Store) DisplayName(ctx context.Context, entityID string, preferHandle bool) string {
	key := "real:" + entityID
	if preferHandle {
		key = "handle:" + entityID
	}
	if name, ok := s.names.get(key); ok {
		return name
	}

	var handle, realName string
	err := s.pool().QueryRow(ctx,
		`SELECT name, COALESCE(real_name,'') FROM users WHERE slack_id=$1 AND deleted_at IS NULL`,
		entityID,
	).Scan(&handle, &realName)
	if err != nil {
		utils.LogDebug("directory: could not resolve %s: %v", entityID, err)
		return karma.UnknownName
	}

	name := realName
	if preferHandle || name == "" {
		name = handle
	}
	if name == "" {
		return karma.UnknownName
	}

	s.names.put(key, name)
	return name
}

// ChannelName résout un ID de channel vers son nom (sans le préfixe #).
func (s *Store) ChannelName(ctx context.Context, channelID string) (string, error) {
	if name, ok := s.names.get("chan:" + channelID); ok {
		return name, nil
	}

	var name string
	err := s.pool().QueryRow(ctx,
		`SELECT name FROM channels WHERE channel_id=$1`,
		channelID,
	).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("unknown channel %q: %w", channelID, err)
	}

	s.names.put("chan:"+channelID, name)
	return name, nil
}
