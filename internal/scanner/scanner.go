package scanner

import (
	"database/sql"

	"github.com/lib/pq"

	model "github.com/AGILEDROP/working-plusplus/internal/models"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

// ScanUserProfile scanne une ligne SQL vers un UserProfile
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile

	err := scanner.Scan(
		&user.ID, &user.SlackID, &user.Name, &user.RealName, &user.Email,
		&user.Avatar, &user.IsAdmin, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ScanUserWithChannels scanne un UserProfile avec la colonne channels
// (text[], via pq.Array)
func ScanUserWithChannels(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile

	err := scanner.Scan(
		&user.ID, &user.SlackID, &user.Name, &user.RealName, &user.Email,
		&user.Avatar, &user.IsAdmin, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
		pq.Array(&user.Channels),
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ScanScoreEvent scanne une ligne SQL vers un ScoreEvent
func ScanScoreEvent(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.ScoreEvent, error) {
	var ev model.ScoreEvent
	var channel sql.NullString

	err := scanner.Scan(
		&ev.ID, &ev.Item, &ev.Score, &ev.FromUserID, &channel, &ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.ChannelID = utils.NullStringToString(channel)

	return &ev, nil
}
