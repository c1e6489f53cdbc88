package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// UserProfile est un utilisateur Slack connu du bot. SlackID est l'ID brut
// (U.../W...), Name le handle, RealName le nom complet affiché dans les
// profils.
type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	SlackID  string    `json:"slackId"`
	Name     string    `json:"name"`
	RealName string    `json:"realName,omitempty"`
	Email    string    `json:"email,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	Channels []string  `json:"channels,omitempty"`
	DateFields
}

// Channel est un channel Slack où du karma a été donné.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
