package handler

import (
	"net/http"

	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// GetChannels liste les channels où du karma a déjà été donné.
func GetChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := karmaStore.Channels(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query channels: "+err.Error())
		return
	}

	utils.Success(w, channels)
}
