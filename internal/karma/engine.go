package karma

import (
	"context"
	"time"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// EntityKind sépare les utilisateurs Slack des items nommés libres
// ("coffee", "friday"...). Les deux familles ne partagent jamais une même
// séquence de rangs.
type EntityKind int

const (
	KindUser EntityKind = iota
	KindNamedItem
)

// Format choisit la représentation des entrées de classement.
type Format int

const (
	// FormatDisplay produit une ligne formatée prête pour le chat
	// (mention <@ID>, points pluralisés, marqueur pour le premier).
	FormatDisplay Format = iota
	// FormatStructured produit des enregistrements {rank, item, score, item_id}
	// avec le vrai nom résolu.
	FormatStructured
)

// LedgerQuery décrit une lecture du registre d'événements.
// PageSize == 0 signifie "tout le registre" (pas de pagination).
type LedgerQuery struct {
	Direction string // "from" ou "to"
	EntityID  string
	ChannelID string
	Page      int
	PageSize  int
	Search    string
}

// ProfileQuery décrit une demande de profil.
type ProfileQuery struct {
	Handle    string
	ChannelID string
	Direction string // direction du feed affiché: "from" ou "to"
	Page      int
	PageSize  int
	Search    string
}

// ScoreSource fournit les lignes brutes de score. TopScores doit retourner
// les scores triés par score décroissant; le moteur vérifie et refuse une
// liste mal triée plutôt que de produire un mauvais classement.
type ScoreSource interface {
	TopScores(ctx context.Context, start, end *time.Time, channelID string) ([]model.TopScore, error)
	Ledger(ctx context.Context, q LedgerQuery) (model.LedgerPage, error)
}

// Directory résout les IDs vers des noms lisibles et classe les entités.
// DisplayName ne retourne jamais d'erreur: un ID inconnu donne la sentinelle
// UnknownName, un échec de résolution ne doit pas faire échouer un classement.
type Directory interface {
	UserID(ctx context.Context, handle string) (string, error)
	DisplayName(ctx context.Context, entityID string, preferHandle bool) string
	ChannelName(ctx context.Context, channelID string) (string, error)
	Classify(entityID string) EntityKind
}

// Engine est le moteur de classement. Sans état propre: chaque appel opère
// sur les données fraîchement récupérées via les collaborateurs.
type Engine struct {
	src ScoreSource
	dir Directory
}

func New(src ScoreSource, dir Directory) *Engine {
	return &Engine{src: src, dir: dir}
}
