package handler

import (
	"net/http"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
	"github.com/AGILEDROP/working-plusplus/internal/store"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// Collaborateurs partagés par tous les handlers. Le Store lit le pool pgx à
// chaque appel, donc leur construction peut précéder la connexion à la base.
var (
	karmaStore = store.New()
	engine     = karma.New(karmaStore, karmaStore)
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
