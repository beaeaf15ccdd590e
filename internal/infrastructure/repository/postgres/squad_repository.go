package postgres

import (
	"context"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/kilmacud/teamsheet/internal/domain/squad"
)

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) GetByFixtureAndSide(ctx context.Context, fixtureID string, side squad.Side) (squad.Squad, bool, error) {
	const query = `
SELECT id, public_id, fixture_public_id, side, locked, created_at, updated_at
FROM squads
WHERE fixture_public_id = $1
  AND side = $2
  AND deleted_at IS NULL`

	var row squadTableModel
	if err := r.db.GetContext(ctx, &row, query, fixtureID, string(side)); err != nil {
		if isNotFound(err) {
			return squad.Squad{}, false, nil
		}
		return squad.Squad{}, false, crerr.Wrap(err, "get squad")
	}

	item, err := r.hydrate(ctx, row)
	if err != nil {
		return squad.Squad{}, false, err
	}

	return item, true, nil
}

func (r *SquadRepository) ListByFixture(ctx context.Context, fixtureID string) ([]squad.Squad, error) {
	const query = `
SELECT id, public_id, fixture_public_id, side, locked, created_at, updated_at
FROM squads
WHERE fixture_public_id = $1
  AND deleted_at IS NULL`

	var rows []squadTableModel
	if err := r.db.SelectContext(ctx, &rows, query, fixtureID); err != nil {
		return nil, crerr.Wrap(err, "select squads by fixture")
	}

	squads := make([]squad.Squad, 0, len(rows))
	for _, row := range rows {
		item, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		squads = append(squads, item)
	}

	sort.SliceStable(squads, func(i, j int) bool {
		return squads[i].Side == squad.SideHome && squads[j].Side != squad.SideHome
	})

	return squads, nil
}

// Create inserts a new squad and relies on the unique (fixture, side)
// index to reject a concurrent duplicate.
func (r *SquadRepository) Create(ctx context.Context, item squad.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx for squad create")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertQuery = `
INSERT INTO squads (public_id, fixture_public_id, side, locked, created_at, updated_at)
VALUES (:public_id, :fixture_public_id, :side, :locked, :created_at, :updated_at)`

	if _, err := tx.NamedExecContext(ctx, insertQuery, squadTableModel{
		PublicID:  item.ID,
		FixtureID: item.FixtureID,
		Side:      string(item.Side),
		Locked:    item.Locked,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}); err != nil {
		if isUniqueViolation(err) {
			return crerr.Wrapf(squad.ErrAlreadyExists, "fixture=%s side=%s", item.FixtureID, item.Side)
		}
		return crerr.Wrap(err, "insert squad")
	}

	if err := r.writeSlots(ctx, tx, item); err != nil {
		return err
	}
	if err := r.writeSubstitutions(ctx, tx, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit squad create tx")
	}

	return nil
}

func (r *SquadRepository) Upsert(ctx context.Context, item squad.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx for squad upsert")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertQuery = `
INSERT INTO squads (public_id, fixture_public_id, side, locked, created_at, updated_at)
VALUES (:public_id, :fixture_public_id, :side, :locked, :created_at, :updated_at)
ON CONFLICT (fixture_public_id, side) WHERE deleted_at IS NULL
DO UPDATE SET
    locked = EXCLUDED.locked,
    updated_at = EXCLUDED.updated_at,
    deleted_at = NULL
RETURNING public_id`

	query, args, err := sqlx.Named(upsertQuery, squadTableModel{
		PublicID:  item.ID,
		FixtureID: item.FixtureID,
		Side:      string(item.Side),
		Locked:    item.Locked,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	})
	if err != nil {
		return crerr.Wrap(err, "bind upsert squad query")
	}
	query = tx.Rebind(query)

	var storedID string
	if err := tx.GetContext(ctx, &storedID, query, args...); err != nil {
		return crerr.Wrap(err, "upsert squad")
	}

	// An earlier row for this (fixture, side) keeps its public id.
	item.ID = storedID

	if err := r.writeSlots(ctx, tx, item); err != nil {
		return err
	}
	if err := r.writeSubstitutions(ctx, tx, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit squad upsert tx")
	}

	return nil
}

func (r *SquadRepository) Update(ctx context.Context, item squad.Squad) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx for squad update")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateQuery = `
UPDATE squads
SET locked = :locked,
    updated_at = :updated_at
WHERE public_id = :public_id
  AND deleted_at IS NULL`

	result, err := tx.NamedExecContext(ctx, updateQuery, squadTableModel{
		PublicID:  item.ID,
		Locked:    item.Locked,
		UpdatedAt: item.UpdatedAt,
	})
	if err != nil {
		return crerr.Wrap(err, "update squad")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "read update squad result")
	}
	if affected == 0 {
		return crerr.Newf("squad %s does not exist", item.ID)
	}

	if err := r.writeSlots(ctx, tx, item); err != nil {
		return err
	}
	if err := r.writeSubstitutions(ctx, tx, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit squad update tx")
	}

	return nil
}

func (r *SquadRepository) hydrate(ctx context.Context, row squadTableModel) (squad.Squad, error) {
	const slotsQuery = `
SELECT squad_public_id, position_no, position_name, player_public_id, player_name, jersey_no
FROM squad_slots
WHERE squad_public_id = $1
ORDER BY position_no`

	var slotRows []squadSlotModel
	if err := r.db.SelectContext(ctx, &slotRows, slotsQuery, row.PublicID); err != nil {
		return squad.Squad{}, crerr.Wrapf(err, "select slots for squad %s", row.PublicID)
	}

	var starting, bench []squad.Slot
	for _, s := range slotRows {
		slot := squad.Slot{
			PositionNo:   s.PositionNo,
			PositionName: s.PositionName,
			PlayerID:     s.PlayerID,
			PlayerName:   s.PlayerName,
			JerseyNo:     s.JerseyNo,
		}
		if s.PositionNo >= squad.BenchFirstNo {
			bench = append(bench, slot)
		} else {
			starting = append(starting, slot)
		}
	}

	const subsQuery = `
SELECT squad_public_id, seq, occurred_at, match_time_sec,
       player_off_public_id, player_off_name, player_on_public_id, player_on_name
FROM squad_substitutions
WHERE squad_public_id = $1
ORDER BY seq`

	var subRows []squadSubstitutionModel
	if err := r.db.SelectContext(ctx, &subRows, subsQuery, row.PublicID); err != nil {
		return squad.Squad{}, crerr.Wrapf(err, "select substitutions for squad %s", row.PublicID)
	}

	subs := make([]squad.Substitution, 0, len(subRows))
	for _, s := range subRows {
		subs = append(subs, squad.Substitution{
			OccurredAt:    s.OccurredAt,
			MatchTimeSec:  s.MatchTimeSec,
			PlayerOffID:   s.PlayerOffID,
			PlayerOffName: s.PlayerOffName,
			PlayerOnID:    s.PlayerOnID,
			PlayerOnName:  s.PlayerOnName,
		})
	}

	return squad.Squad{
		ID:        row.PublicID,
		FixtureID: row.FixtureID,
		Side:      squad.Side(row.Side),
		Starting:  starting,
		Bench:     bench,
		Subs:      subs,
		Locked:    row.Locked,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *SquadRepository) writeSlots(ctx context.Context, tx *sqlx.Tx, item squad.Squad) error {
	const clearQuery = `DELETE FROM squad_slots WHERE squad_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearQuery, item.ID); err != nil {
		return crerr.Wrapf(err, "clear slots for squad %s", item.ID)
	}

	const insertQuery = `
INSERT INTO squad_slots (
    squad_public_id,
    position_no,
    position_name,
    player_public_id,
    player_name,
    jersey_no
) VALUES (:squad_public_id, :position_no, :position_name, :player_public_id, :player_name, :jersey_no)`

	slots := append(append([]squad.Slot(nil), item.Starting...), item.Bench...)
	for _, slot := range slots {
		if _, err := tx.NamedExecContext(ctx, insertQuery, squadSlotModel{
			SquadPublicID: item.ID,
			PositionNo:    slot.PositionNo,
			PositionName:  slot.PositionName,
			PlayerID:      slot.PlayerID,
			PlayerName:    slot.PlayerName,
			JerseyNo:      slot.JerseyNo,
		}); err != nil {
			return crerr.Wrapf(err, "insert slot %d for squad %s", slot.PositionNo, item.ID)
		}
	}

	return nil
}

func (r *SquadRepository) writeSubstitutions(ctx context.Context, tx *sqlx.Tx, item squad.Squad) error {
	const clearQuery = `DELETE FROM squad_substitutions WHERE squad_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearQuery, item.ID); err != nil {
		return crerr.Wrapf(err, "clear substitutions for squad %s", item.ID)
	}

	const insertQuery = `
INSERT INTO squad_substitutions (
    squad_public_id,
    seq,
    occurred_at,
    match_time_sec,
    player_off_public_id,
    player_off_name,
    player_on_public_id,
    player_on_name
) VALUES (:squad_public_id, :seq, :occurred_at, :match_time_sec,
          :player_off_public_id, :player_off_name, :player_on_public_id, :player_on_name)`

	for i, sub := range item.Subs {
		if _, err := tx.NamedExecContext(ctx, insertQuery, squadSubstitutionModel{
			SquadPublicID: item.ID,
			Seq:           i + 1,
			OccurredAt:    sub.OccurredAt,
			MatchTimeSec:  sub.MatchTimeSec,
			PlayerOffID:   sub.PlayerOffID,
			PlayerOffName: sub.PlayerOffName,
			PlayerOnID:    sub.PlayerOnID,
			PlayerOnName:  sub.PlayerOnName,
		}); err != nil {
			return crerr.Wrapf(err, "insert substitution %d for squad %s", i+1, item.ID)
		}
	}

	return nil
}
