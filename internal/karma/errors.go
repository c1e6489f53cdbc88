package karma

import (
	"errors"
	"fmt"
)

// UnknownName est la sentinelle retournée quand un ID ne peut pas être
// résolu vers un nom lisible.
const UnknownName = "(unknown)"

// ErrMalformedScoreRow signale une liste de scores qui viole la précondition
// de tri décroissant. Le moteur échoue tout de suite au lieu de produire un
// classement silencieusement faux.
var ErrMalformedScoreRow = errors.New("malformed score rows: input is not sorted by descending score")

// RetrievalError enveloppe un échec d'un collaborateur de récupération.
// Fatal pour l'appel en cours: aucun profil partiel n'est retourné.
type RetrievalError struct {
	Op  string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("karma: retrieval failed during %s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

func retrievalErr(op string, err error) error {
	return &RetrievalError{Op: op, Err: err}
}
