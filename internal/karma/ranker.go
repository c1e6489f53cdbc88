package karma

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// Marqueurs ajoutés à la première entrée en format display.
const (
	userWinnerMark  = "👑"
	thingWinnerMark = "🏆"
)

// rankState est l'accumulateur du classement par compétition. Porté
// explicitement d'une itération à l'autre pour que la règle d'égalité reste
// une fonction pure.
type rankState struct {
	lastScore int
	lastRank  int
	emitted   int
}

// next retourne l'état suivant et le rang attribué au score donné: le rang
// précédent en cas d'égalité, sinon le nombre d'entités déjà émises plus un.
func (s rankState) next(score int) (rankState, int) {
	rank := s.emitted + 1
	if s.emitted > 0 && score == s.lastScore {
		rank = s.lastRank
	}
	return rankState{lastScore: score, lastRank: rank, emitted: s.emitted + 1}, rank
}

// Rank transforme une liste de scores agrégés (triée par score décroissant)
// en leaderboard. Seules les entités du kind demandé sont classées; les
// autres sont ignorées sans erreur. Deux scores égaux partagent le même rang
// et le score distinct suivant saute les rangs consommés ([10,10,8] → 1,1,3).
func (e *Engine) Rank(ctx context.Context, scores []model.TopScore, kind EntityKind, format Format) ([]model.RankedItem, error) {
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			return nil, ErrMalformedScoreRow
		}
	}

	st := rankState{}
	ranked := make([]model.RankedItem, 0, len(scores))
	for _, ts := range scores {
		if e.dir.Classify(ts.Item) != kind {
			continue
		}

		var rank int
		st, rank = st.next(ts.Score)

		if format == FormatDisplay {
			line := fmt.Sprintf("%d. %s : %s", rank, e.displayName(ctx, ts.Item, kind), FormatPoints(ts.Score))
			if rank == 1 && st.emitted == 1 {
				if kind == KindUser {
					line += " " + userWinnerMark
				} else {
					line += " " + thingWinnerMark
				}
			}
			ranked = append(ranked, model.RankedItem{Text: line})
			continue
		}

		ranked = append(ranked, model.RankedItem{
			Rank:   rank,
			Item:   e.structuredName(ctx, ts.Item, kind),
			Score:  FormatPoints(ts.Score),
			ItemID: ts.Item,
		})
	}
	return ranked, nil
}

// displayName rend le nom pour le format display: mention Slack pour un
// utilisateur, item avec majuscule initiale sinon.
func (e *Engine) displayName(_ context.Context, id string, kind EntityKind) string {
	if kind == KindUser {
		return "<@" + id + ">"
	}
	return TitleCase(id)
}

// structuredName rend le nom pour le format structured: vrai nom résolu
// (repli sur le handle puis sur UnknownName, géré par le Directory).
func (e *Engine) structuredName(ctx context.Context, id string, kind EntityKind) string {
	if kind == KindUser {
		return e.dir.DisplayName(ctx, id, false)
	}
	return TitleCase(id)
}

// FormatPoints pluralise le compte de points. Singulier seulement quand la
// valeur absolue vaut exactement 1; zéro et tout le reste prennent un "s".
func FormatPoints(score int) string {
	if score == 1 || score == -1 {
		return fmt.Sprintf("%d point", score)
	}
	return fmt.Sprintf("%d points", score)
}

// TitleCase met en majuscule le premier caractère seulement.
func TitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
