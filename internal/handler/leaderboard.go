package handler

import (
	"net/http"
	"time"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// parseDate accepte une date ISO (YYYY-MM-DD) ou un timestamp RFC3339.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetLeaderboard récupère le classement d'un channel ou d'une fenêtre de
// dates. Params: channel, from, to, kind (users|things), format
// (display|structured), limit.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := parseDate(query.Get("from"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid 'from' date: "+err.Error())
		return
	}
	end, err := parseDate(query.Get("to"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid 'to' date: "+err.Error())
		return
	}

	kind := karma.KindUser
	if query.Get("kind") == "things" {
		kind = karma.KindNamedItem
	}

	format := karma.FormatDisplay
	if query.Get("format") == "structured" {
		format = karma.FormatStructured
	}

	ctx := r.Context()

	scores, err := karmaStore.TopScores(ctx, start, end, query.Get("channel"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query top scores: "+err.Error())
		return
	}

	ranked, err := engine.Rank(ctx, scores, kind, format)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not rank scores: "+err.Error())
		return
	}

	if limit := utils.ParseIntParam(query.Get("limit"), 0); limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	utils.Success(w, ranked)
}
