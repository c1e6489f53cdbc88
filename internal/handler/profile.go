package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// GetUserProfile assemble le profil karma d'un utilisateur: rang, totaux,
// histogramme des donneurs, activité journalière et page du registre.
// Params: channel, fromTo (from|to), page, pageSize, search.
func GetUserProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	direction := query.Get("fromTo")
	if direction != "from" {
		direction = "to"
	}

	profile, err := engine.BuildProfile(r.Context(), karma.ProfileQuery{
		Handle:    vars["userId"],
		ChannelID: query.Get("channel"),
		Direction: direction,
		Page:      utils.ParseIntParam(query.Get("page"), 1),
		PageSize:  utils.ParseIntParam(query.Get("pageSize"), 10),
		Search:    query.Get("search"),
	})
	if err != nil {
		var rerr *karma.RetrievalError
		if errors.As(err, &rerr) && rerr.Op == "user lookup" {
			utils.Error(w, http.StatusNotFound, "unknown user: "+vars["userId"])
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not build profile: "+err.Error())
		return
	}

	utils.Success(w, profile)
}
