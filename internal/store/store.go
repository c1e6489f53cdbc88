// Package store implémente les collaborateurs du moteur karma sur PostgreSQL:
// récupération des scores, registre d'événements et annuaire (résolution des
// IDs Slack vers des noms, classification des entités).
package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AGILEDROP/working-plusplus/internal/database"
)

// Store expose les requêtes karma. Le pool est lu à chaque appel pour que la
// construction du Store puisse précéder la connexion à la base.
type Store struct {
	names *nameCache
}

func New() *Store {
	return &Store{names: newNameCache()}
}

func (s *Store) pool() *pgxpool.Pool { return database.DB }

// InvalidateNames vide le cache de résolution des noms (admin/tests).
func (s *Store) InvalidateNames() { s.names.Invalidate() }
