package handler

import (
	"net/http"

	"github.com/AGILEDROP/working-plusplus/internal/middleware"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// InvalidateNameCache vide le cache de résolution des noms. Réservé aux
// admins; utile après un rename massif côté Slack.
func InvalidateNameCache(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if !user.IsAdmin {
		utils.Error(w, http.StatusForbidden, "admin access required")
		return
	}

	karmaStore.InvalidateNames()
	utils.Message(w, "name cache invalidated")
}
