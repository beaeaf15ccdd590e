package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/kilmacud/teamsheet/internal/domain/fixture"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
)

const defaultStatusWorkers = 8

// TeamStatusService answers the match-day dashboard question "which of
// this club's fixtures have their teamsheets in?" by fanning readiness
// checks across the team's fixtures on a worker pool.
type TeamStatusService struct {
	fixtureRepo fixture.Repository
	squads      *SquadService
	logger      *logging.Logger
	maxWorkers  int
}

func NewTeamStatusService(fixtureRepo fixture.Repository, squads *SquadService, maxWorkers int, logger *logging.Logger) *TeamStatusService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultStatusWorkers
	}

	return &TeamStatusService{
		fixtureRepo: fixtureRepo,
		squads:      squads,
		logger:      logger,
		maxWorkers:  maxWorkers,
	}
}

// FixtureSquadStatus is the readiness row for a single fixture.
type FixtureSquadStatus struct {
	FixtureID    string `json:"fixture_id"`
	Competition  string `json:"competition"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamName string `json:"away_team_name"`
	HomeReady    bool   `json:"home_ready"`
	AwayReady    bool   `json:"away_ready"`
	Error        string `json:"error,omitempty"`
}

// TeamSquadStatus aggregates readiness across every fixture of a team.
type TeamSquadStatus struct {
	TeamID       string               `json:"team_id"`
	FixtureCount int                  `json:"fixture_count"`
	ReadyCount   int                  `json:"ready_count"`
	Fixtures     []FixtureSquadStatus `json:"fixtures"`
}

func (s *TeamStatusService) TeamSquadStatus(ctx context.Context, teamID string) (TeamSquadStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatusService.TeamSquadStatus")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamSquadStatus{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	fixtures, err := s.fixtureRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamSquadStatus{}, fmt.Errorf("list fixtures by team: %w", err)
	}

	result := TeamSquadStatus{
		TeamID:       teamID,
		FixtureCount: len(fixtures),
	}
	if len(fixtures) == 0 {
		return result, nil
	}

	workerCount := s.maxWorkers
	if workerCount <= 0 {
		workerCount = defaultStatusWorkers
	}
	if workerCount > len(fixtures) {
		workerCount = len(fixtures)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return TeamSquadStatus{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan FixtureSquadStatus, len(fixtures))

	var workers sync.WaitGroup
	for _, item := range fixtures {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := FixtureSquadStatus{
				FixtureID:    item.ID,
				Competition:  item.Competition,
				HomeTeamName: item.HomeTeamName,
				AwayTeamName: item.AwayTeamName,
			}

			status, err := s.squads.SquadStatus(ctx, item.ID)
			if err != nil {
				row.Error = err.Error()
			} else {
				row.HomeReady = status.HomeReady
				row.AwayReady = status.AwayReady
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return TeamSquadStatus{}, fmt.Errorf("submit status check to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		if row.HomeReady && row.AwayReady {
			result.ReadyCount++
		}
		result.Fixtures = append(result.Fixtures, row)
	}

	sort.SliceStable(result.Fixtures, func(i, j int) bool {
		return result.Fixtures[i].FixtureID < result.Fixtures[j].FixtureID
	})

	return result, nil
}
