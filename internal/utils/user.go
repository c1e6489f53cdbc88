package utils

import (
	"context"
	"fmt"

	"github.com/AGILEDROP/working-plusplus/internal/database"
	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// GetUserByToken récupère l'utilisateur associé à une session active.
func GetUserByToken(ctx context.Context, token string) (model.UserProfile, error) {
	var user model.UserProfile

	if token == "" {
		return user, fmt.Errorf("empty token")
	}

	err := database.DB.QueryRow(ctx, `
		SELECT
			u.id,
			u.slack_id,
			u.name,
			COALESCE(u.real_name,'') AS real_name,
			COALESCE(u.email,'') AS email,
			COALESCE(u.avatar,'') AS avatar,
			u.is_admin,
			u.join_date,
			u.created_at,
			u.updated_at
		FROM users u
		INNER JOIN sessions s ON u.id = s.user_id
		WHERE s.token = $1 AND s.is_active = true AND s.expires_at > NOW()
			AND u.deleted_at IS NULL
	`, token).Scan(
		&user.ID, &user.SlackID, &user.Name, &user.RealName, &user.Email,
		&user.Avatar, &user.IsAdmin, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return user, fmt.Errorf("user not found or invalid token: %w", err)
	}

	return user, nil
}
