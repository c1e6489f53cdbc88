package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AGILEDROP/working-plusplus/internal/config"
	"github.com/AGILEDROP/working-plusplus/internal/database"
	model "github.com/AGILEDROP/working-plusplus/internal/models"
	"github.com/AGILEDROP/working-plusplus/internal/scanner"
	"github.com/AGILEDROP/working-plusplus/internal/services"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// CreateUser enregistre un utilisateur Slack connu du bot (sync annuaire).
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.UserProfile
	if err := utils.DecodeJSON(r, &user); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if user.SlackID == "" || user.Name == "" {
		utils.Error(w, http.StatusBadRequest, "slackId and name are required")
		return
	}

	ctx := r.Context()
	err := database.DB.QueryRow(ctx,
		`INSERT INTO users(slack_id, name, real_name, email, avatar, is_admin, join_date, created_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,NOW(),NOW(),NOW())
		 ON CONFLICT (slack_id) DO UPDATE
		 SET name=EXCLUDED.name, real_name=EXCLUDED.real_name, avatar=EXCLUDED.avatar, updated_at=NOW()
		 RETURNING id, join_date, created_at, updated_at`,
		user.SlackID, user.Name, user.RealName, user.Email, user.Avatar, user.IsAdmin,
	).Scan(&user.ID, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	// La résolution des noms peut maintenant servir des valeurs périmées.
	karmaStore.InvalidateNames()

	utils.Success(w, user)
}

func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rows, err := database.DB.Query(ctx, `
		SELECT
			u.id, u.slack_id, u.name,
			COALESCE(u.real_name,'') AS real_name,
			COALESCE(u.email,'') AS email,
			COALESCE(u.avatar,'') AS avatar,
			u.is_admin, u.join_date, u.created_at, u.updated_at
		FROM users u
		WHERE u.deleted_at IS NULL
		ORDER BY u.name
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users: "+err.Error())
		return
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		user, err := scanner.ScanUserProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row: "+err.Error())
			return
		}
		users = append(users, *user)
	}

	utils.Success(w, users)
}

// GetUser récupère un utilisateur avec la liste des channels où il a reçu du
// karma.
func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := r.Context()

	slackID, err := karmaStore.UserID(ctx, vars["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "unknown user: "+vars["id"])
		return
	}

	row := database.DB.QueryRow(ctx, `
		SELECT
			u.id, u.slack_id, u.name,
			COALESCE(u.real_name,'') AS real_name,
			COALESCE(u.email,'') AS email,
			COALESCE(u.avatar,'') AS avatar,
			u.is_admin, u.join_date, u.created_at, u.updated_at,
			COALESCE(
				(SELECT array_agg(DISTINCT se.channel_id) FROM score_events se WHERE se.item = u.slack_id),
				'{}'
			) AS channels
		FROM users u
		WHERE u.slack_id=$1 AND u.deleted_at IS NULL`,
		slackID,
	)

	user, err := scanner.ScanUserWithChannels(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not get user: "+err.Error())
		return
	}

	utils.Success(w, user)
}

// UploadAvatar gère l'upload d'avatar utilisateur vers Cloudinary
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	// Limiter la taille du fichier à 10MB
	r.ParseMultipartForm(10 << 20)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/jpg" {
		utils.Error(w, http.StatusBadRequest, "only JPEG and PNG images are allowed")
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load config: "+err.Error())
		return
	}

	svc, err := services.NewCloudinaryService(cfg)
	if err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "avatar storage not configured: "+err.Error())
		return
	}

	ctx := r.Context()
	avatarURL, err := svc.UploadAvatar(ctx, file, userID, header.Filename)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar: "+err.Error())
		return
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE users SET avatar=$1, updated_at=NOW() WHERE slack_id=$2 AND deleted_at IS NULL`,
		avatarURL, userID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update avatar: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"avatar": avatarURL})
}
