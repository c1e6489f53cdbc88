package handler

import (
	"net/http"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// CreateScoreEvent insère un événement de score brut. Le parsing des
// messages "++/--" appartient au transport Slack; cet endpoint ne fait que
// persister un événement déjà interprété.
func CreateScoreEvent(w http.ResponseWriter, r *http.Request) {
	var ev model.ScoreEvent
	if err := utils.DecodeJSON(r, &ev); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if ev.Item == "" || ev.FromUserID == "" || ev.ChannelID == "" {
		utils.Error(w, http.StatusBadRequest, "item, from_user_id and channel_id are required")
		return
	}
	if ev.Score == 0 {
		utils.Error(w, http.StatusBadRequest, "score must be a non-zero integer")
		return
	}
	if ev.Item == ev.FromUserID {
		utils.Error(w, http.StatusBadRequest, "self karma is not allowed")
		return
	}

	if err := karmaStore.RecordEvent(r.Context(), &ev); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not record score event: "+err.Error())
		return
	}

	utils.Success(w, ev)
}
