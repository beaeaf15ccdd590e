package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kilmacud/teamsheet/internal/domain/player"
	idgen "github.com/kilmacud/teamsheet/internal/platform/id"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
)

// RosterService serves a club's player pool for teamsheet building.
type RosterService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewRosterService(playerRepo player.Repository, idGen idgen.Generator, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// ListTeamPlayers returns the club roster ordered by jersey number.
func (s *RosterService) ListTeamPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListTeamPlayers")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return players, nil
}

// QuickAddPlayerInput registers a late addition to the roster, typically
// a player drafted in on match day.
type QuickAddPlayerInput struct {
	TeamID   string
	Name     string
	JerseyNo int
}

func (s *RosterService) QuickAddPlayer(ctx context.Context, input QuickAddPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.QuickAddPlayer")
	defer span.End()

	item := player.Player{
		TeamID:   strings.TrimSpace(input.TeamID),
		Name:     strings.TrimSpace(input.Name),
		JerseyNo: input.JerseyNo,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	item.ID = id

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player added to roster",
		"team_id", item.TeamID,
		"player_id", item.ID,
		"jersey_no", item.JerseyNo,
	)

	return item, nil
}
