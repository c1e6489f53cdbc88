package karma

import (
	"context"

	"github.com/AGILEDROP/working-plusplus/internal/logger"
	model "github.com/AGILEDROP/working-plusplus/internal/models"
)

// ResolveLedger transforme les événements bruts en transactions lisibles.
// Quand le receveur est un utilisateur, le donneur, le receveur et le channel
// sont résolus (channel préfixé par #); pour un item nommé les IDs passent
// tels quels. Une ligne de sortie par ligne d'entrée, ordre préservé.
// Un échec de résolution dégrade vers la sentinelle, jamais d'erreur.
func (e *Engine) ResolveLedger(ctx context.Context, events []model.ScoreEvent) []model.UserLedgerRow {
	rows := make([]model.UserLedgerRow, 0, len(events))
	for _, ev := range events {
		row := model.UserLedgerRow{Score: ev.Score}

		if e.dir.Classify(ev.Item) == KindUser {
			row.ToUser = e.dir.DisplayName(ctx, ev.Item, false)
			row.FromUser = e.dir.DisplayName(ctx, ev.FromUserID, false)
			name, err := e.dir.ChannelName(ctx, ev.ChannelID)
			if err != nil {
				name = UnknownName
			}
			row.Channel = "#" + name
		} else {
			row.ToUser = ev.Item
			row.FromUser = ev.FromUserID
			row.Channel = ev.ChannelID
		}

		logger.Debug("ledger: %s -> %s (%d) dans %s", row.FromUser, row.ToUser, row.Score, row.Channel)
		rows = append(rows, row)
	}
	return rows
}
