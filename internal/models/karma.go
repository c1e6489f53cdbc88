package model

import (
	"time"
)

// ScoreEvent représente un don de karma enregistré entre un donneur et un
// receveur dans un channel. Créé par la couche de stockage, jamais modifié
// par le moteur de classement.
type ScoreEvent struct {
	ID         string    `json:"id,omitempty"`
	Item       string    `json:"item"`
	Score      int       `json:"score"`
	FromUserID string    `json:"from_user_id"`
	ChannelID  string    `json:"channel_id"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// TopScore est le score agrégé d'une entité sur la fenêtre demandée.
// Une ligne par entité distincte; l'ordre est garanti par la requête SQL,
// pas par ce type.
type TopScore struct {
	Item  string `json:"item"`
	Score int    `json:"score"`
}

// RankedItem est une entrée de classement. En format display seul Text est
// rempli (ligne formatée prête pour le chat); en format structured les champs
// rank/item/score/item_id sont remplis.
type RankedItem struct {
	Rank   int    `json:"rank,omitempty"`
	Item   string `json:"item,omitempty"`
	Score  string `json:"score,omitempty"`
	ItemID string `json:"item_id,omitempty"`
	Text   string `json:"text,omitempty"`
}

// UserLedgerRow est une transaction résolue (IDs remplacés par des noms
// lisibles quand le receveur est un utilisateur).
type UserLedgerRow struct {
	ToUser   string `json:"toUser"`
	FromUser string `json:"fromUser"`
	Score    int    `json:"score"`
	Channel  string `json:"channel"`
}

// LedgerPage est une page du registre d'événements plus le total non paginé.
type LedgerPage struct {
	Feed  []ScoreEvent `json:"feed"`
	Count int          `json:"count"`
}

// KarmaShare est une part de l'histogramme "qui a donné du karma".
type KarmaShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DailyActivityPoint est une ligne de la série d'activité journalière.
// Une entrée par date calendaire touchée par au moins une des deux directions.
type DailyActivityPoint struct {
	Date     string `json:"date"`
	Received int    `json:"received"`
	Sent     int    `json:"sent"`
}

// Profile est l'agrégat par entité retourné par le moteur.
type Profile struct {
	Feed         []ScoreEvent         `json:"feed"`
	Count        int                  `json:"count"`
	NameSurname  string               `json:"nameSurname"`
	AllKarma     int                  `json:"allKarma"`
	KarmaGiven   int                  `json:"karmaGiven"`
	UserRank     int                  `json:"userRank"`
	KarmaDivided []KarmaShare         `json:"karmaDivided"`
	Activity     []DailyActivityPoint `json:"activity"`
}
