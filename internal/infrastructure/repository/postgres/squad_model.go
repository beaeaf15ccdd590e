package postgres

import (
	"time"
)

type squadTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	FixtureID string    `db:"fixture_public_id"`
	Side      string    `db:"side"`
	Locked    bool      `db:"locked"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Slots for both sections live in one table; position_no 1..15 is the
// starting lineup, 16..30 the bench.
type squadSlotModel struct {
	SquadPublicID string `db:"squad_public_id"`
	PositionNo    int    `db:"position_no"`
	PositionName  string `db:"position_name"`
	PlayerID      string `db:"player_public_id"`
	PlayerName    string `db:"player_name"`
	JerseyNo      int    `db:"jersey_no"`
}

type squadSubstitutionModel struct {
	SquadPublicID string    `db:"squad_public_id"`
	Seq           int       `db:"seq"`
	OccurredAt    time.Time `db:"occurred_at"`
	MatchTimeSec  int       `db:"match_time_sec"`
	PlayerOffID   string    `db:"player_off_public_id"`
	PlayerOffName string    `db:"player_off_name"`
	PlayerOnID    string    `db:"player_on_public_id"`
	PlayerOnName  string    `db:"player_on_name"`
}
