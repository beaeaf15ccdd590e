package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/kilmacud/teamsheet/internal/domain/fixture"
	qb "github.com/kilmacud/teamsheet/internal/platform/querybuilder"
)

type fixtureTableModel struct {
	PublicID     string    `db:"public_id"`
	TeamID       string    `db:"team_public_id"`
	Competition  string    `db:"competition"`
	HomeTeamName string    `db:"home_team_name"`
	AwayTeamName string    `db:"away_team_name"`
	ThrowInAt    time.Time `db:"throw_in_at"`
	Venue        string    `db:"venue"`
	Status       string    `db:"status"`
}

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(ctx context.Context, id string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select(fixtureColumns()...).From("fixtures").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, crerr.Wrap(err, "build select fixture query")
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, crerr.Wrap(err, "get fixture")
	}

	return fixtureFromRow(row), true, nil
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select(fixtureColumns()...).From("fixtures").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("throw_in_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select fixtures by team query")
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select fixtures by team")
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureFromRow(row))
	}

	return out, nil
}

func fixtureColumns() []string {
	return []string{
		"public_id",
		"team_public_id",
		"competition",
		"home_team_name",
		"away_team_name",
		"throw_in_at",
		"venue",
		"status",
	}
}

func fixtureFromRow(row fixtureTableModel) fixture.Fixture {
	return fixture.Fixture{
		ID:           row.PublicID,
		TeamID:       row.TeamID,
		Competition:  row.Competition,
		HomeTeamName: row.HomeTeamName,
		AwayTeamName: row.AwayTeamName,
		ThrowInAt:    row.ThrowInAt,
		Venue:        row.Venue,
		Status:       fixture.NormalizeStatus(row.Status),
	}
}
