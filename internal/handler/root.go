package handler

import (
	"net/http"

	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "working-plusplus API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion dashboard"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion"},
			},
			"karma": []map[string]string{
				{"method": "GET", "path": "/karma/leaderboard", "description": "Classement (params: channel, from, to, kind, format, limit)"},
				{"method": "GET", "path": "/karma/users/{userId}/profile", "description": "Profil karma (params: channel, fromTo, page, pageSize, search)"},
				{"method": "GET", "path": "/karma/users/{userId}/ledger", "description": "Registre de transactions résolu (params: direction, channel, page, pageSize, search)"},
				{"method": "POST", "path": "/karma/events", "description": "Enregistrer un événement de score"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Récupérer tous les utilisateurs"},
				{"method": "GET", "path": "/users/{id}", "description": "Récupérer un utilisateur (ID, mention ou handle)"},
				{"method": "POST", "path": "/users", "description": "Créer ou mettre à jour un utilisateur (sync Slack)"},
				{"method": "POST", "path": "/users/{id}/avatar", "description": "Upload avatar utilisateur"},
			},
			"channels": []map[string]string{
				{"method": "GET", "path": "/channels", "description": "Channels avec du karma enregistré"},
			},
			"admin": []map[string]string{
				{"method": "POST", "path": "/admin/cache/invalidate", "description": "Vider le cache de résolution des noms"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour working-plusplus - Bot karma Slack",
		},
	}

	utils.Success(w, routes)
}
