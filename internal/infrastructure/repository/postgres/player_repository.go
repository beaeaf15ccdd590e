package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/kilmacud/teamsheet/internal/domain/player"
	qb "github.com/kilmacud/teamsheet/internal/platform/querybuilder"
)

type playerTableModel struct {
	PublicID string `db:"public_id"`
	TeamID   string `db:"team_public_id"`
	Name     string `db:"name"`
	JerseyNo int    `db:"jersey_no"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("public_id", "team_public_id", "name", "jersey_no").
		From("players").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build select player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "get player")
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("public_id", "team_public_id", "name", "jersey_no").
		From("players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("jersey_no", "public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players by team")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	const query = `
INSERT INTO players (public_id, team_public_id, name, jersey_no)
VALUES (:public_id, :team_public_id, :name, :jersey_no)`

	if _, err := r.db.NamedExecContext(ctx, query, playerTableModel{
		PublicID: item.ID,
		TeamID:   item.TeamID,
		Name:     item.Name,
		JerseyNo: item.JerseyNo,
	}); err != nil {
		return crerr.Wrapf(err, "insert player %s", item.ID)
	}

	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.PublicID,
		TeamID:   row.TeamID,
		Name:     row.Name,
		JerseyNo: row.JerseyNo,
	}
}
