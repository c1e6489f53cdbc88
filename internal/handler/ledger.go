package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// GetUserLedger retourne une page du registre de transactions d'un
// utilisateur, résolue en noms lisibles. Params: direction (from|to),
// channel, page, pageSize, search.
func GetUserLedger(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()
	ctx := r.Context()

	userID, err := karmaStore.UserID(ctx, vars["userId"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "unknown user: "+vars["userId"])
		return
	}

	direction := query.Get("direction")
	if direction != "from" {
		direction = "to"
	}

	page, err := karmaStore.Ledger(ctx, karma.LedgerQuery{
		Direction: direction,
		EntityID:  userID,
		ChannelID: query.Get("channel"),
		Page:      utils.ParseIntParam(query.Get("page"), 1),
		PageSize:  utils.ParseIntParam(query.Get("pageSize"), 20),
		Search:    query.Get("search"),
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query ledger: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"feed":  engine.ResolveLedger(ctx, page.Feed),
		"count": page.Count,
	})
}
