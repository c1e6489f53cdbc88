// Package karma implémente le moteur de classement et d'agrégation.
//
// Le moteur transforme des collections plates d'événements de score en
// leaderboards (classement par compétition), en registres de transactions
// résolus et en séries d'activité journalières. Il ne fait aucune requête
// SQL et ne garde aucun état entre deux appels: les données viennent de
// collaborateurs (ScoreSource, Directory) injectés à la construction.
package karma
