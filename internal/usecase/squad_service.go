package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kilmacud/teamsheet/internal/domain/fixture"
	"github.com/kilmacud/teamsheet/internal/domain/squad"
	idgen "github.com/kilmacud/teamsheet/internal/platform/id"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
	"github.com/kilmacud/teamsheet/internal/platform/resilience"
)

// SquadService orchestrates every teamsheet operation for a fixture's
// two sides. Mutations against the same (fixture, side) aggregate are
// serialized with a keyed mutex; the Locked flag on the squad stays
// pure business state and never doubles as concurrency control.
type SquadService struct {
	fixtureRepo fixture.Repository
	squadRepo   squad.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
	writes      resilience.KeyedMutex
}

func NewSquadService(
	fixtureRepo fixture.Repository,
	squadRepo squad.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SquadService{
		fixtureRepo: fixtureRepo,
		squadRepo:   squadRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// GetSquads loads both squads of a fixture. When the AWAY side has
// never been populated it persists a placeholder squad first, so every
// subsequent read is stable and the match screens never see a hole
// where the opposition should be. HOME may legitimately be absent.
func (s *SquadService) GetSquads(ctx context.Context, fixtureID string) ([]squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetSquads")
	defer span.End()

	fixtureID, err := s.requireFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}

	squads, err := s.squadRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("list squads by fixture: %w", err)
	}

	if !containsSide(squads, squad.SideAway) {
		away, err := s.ensureAwayPlaceholders(ctx, fixtureID)
		if err != nil {
			return nil, err
		}
		squads = append(squads, away)
	}

	orderSquads(squads)
	return squads, nil
}

// ReplaceSquadInput carries a full teamsheet for the unconditional
// overwrite path.
type ReplaceSquadInput struct {
	FixtureID string
	Side      squad.Side
	Starting  []squad.Slot
	Bench     []squad.Slot
}

// ReplaceSquad overwrites the starting and bench slots wholesale,
// creating the squad when absent. It deliberately ignores the Locked
// flag: this is the "force set" entry point, distinct from the guarded
// EditSquad below, and call sites depend on that asymmetry. An empty
// AWAY payload falls through to placeholder generation so callers need
// not special-case the opposition.
func (s *SquadService) ReplaceSquad(ctx context.Context, input ReplaceSquadInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.ReplaceSquad")
	defer span.End()

	fixtureID, err := s.requireFixture(ctx, input.FixtureID)
	if err != nil {
		return squad.Squad{}, err
	}

	if input.Side == squad.SideAway && len(input.Starting) == 0 && len(input.Bench) == 0 {
		return s.ensureAwayPlaceholders(ctx, fixtureID)
	}

	unlock := s.writes.Lock(writeKey(fixtureID, input.Side))
	defer unlock()

	now := s.now().UTC()
	existing, exists, err := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, input.Side)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad before replace: %w", err)
	}

	item := existing
	if !exists {
		item.ID, err = s.idGen.NewID()
		if err != nil {
			return squad.Squad{}, fmt.Errorf("generate squad id: %w", err)
		}
		item.FixtureID = fixtureID
		item.Side = input.Side
		item.CreatedAt = now
	}
	item.Starting = append([]squad.Slot(nil), input.Starting...)
	item.Bench = append([]squad.Slot(nil), input.Bench...)
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return squad.Squad{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.squadRepo.Upsert(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("upsert squad: %w", err)
	}

	s.logger.InfoContext(ctx, "squad replaced",
		"fixture_id", fixtureID,
		"side", item.Side,
		"squad_id", item.ID,
		"created", !exists,
	)

	return item, nil
}

// EditSquadInput carries a partial teamsheet update; nil slices leave
// the corresponding section untouched.
type EditSquadInput struct {
	FixtureID string
	Side      squad.Side
	Starting  []squad.Slot
	Bench     []squad.Slot
}

// EditSquad is the guarded edit path used while a lineup is being
// refined before throw-in. It fails once the squad is locked.
func (s *SquadService) EditSquad(ctx context.Context, input EditSquadInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.EditSquad")
	defer span.End()

	fixtureID := strings.TrimSpace(input.FixtureID)
	if fixtureID == "" {
		return squad.Squad{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if input.Starting == nil && input.Bench == nil {
		return squad.Squad{}, fmt.Errorf("%w: starting slots or bench are required", ErrInvalidInput)
	}

	unlock := s.writes.Lock(writeKey(fixtureID, input.Side))
	defer unlock()

	item, exists, err := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, input.Side)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad before edit: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad fixture=%s side=%s", ErrNotFound, fixtureID, input.Side)
	}
	if item.Locked {
		return squad.Squad{}, fmt.Errorf("%w: fixture=%s side=%s", squad.ErrLocked, fixtureID, input.Side)
	}

	if input.Starting != nil {
		item.Starting = append([]squad.Slot(nil), input.Starting...)
	}
	if input.Bench != nil {
		item.Bench = append([]squad.Slot(nil), input.Bench...)
	}
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return squad.Squad{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.squadRepo.Update(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("update squad: %w", err)
	}

	return item, nil
}

// SubstituteInput identifies the swap for one in-game substitution.
type SubstituteInput struct {
	FixtureID     string
	Side          squad.Side
	PlayerOffID   string
	PlayerOffName string
	PlayerOnID    string
	PlayerOnName  string
	MatchTimeSec  int
}

// Substitute swaps a starting player with a bench player and appends to
// the substitution log. Substitutions are not blocked by the Locked
// flag: they happen during live play, after the teamsheet froze.
func (s *SquadService) Substitute(ctx context.Context, input SubstituteInput) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Substitute")
	defer span.End()

	fixtureID := strings.TrimSpace(input.FixtureID)
	if fixtureID == "" {
		return squad.Squad{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.PlayerOffID) == "" || strings.TrimSpace(input.PlayerOnID) == "" {
		return squad.Squad{}, fmt.Errorf("%w: player off and player on ids are required", ErrInvalidInput)
	}
	if input.MatchTimeSec < 0 {
		return squad.Squad{}, fmt.Errorf("%w: match time cannot be negative", ErrInvalidInput)
	}

	unlock := s.writes.Lock(writeKey(fixtureID, input.Side))
	defer unlock()

	item, exists, err := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, input.Side)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad before substitution: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad fixture=%s side=%s", ErrNotFound, fixtureID, input.Side)
	}

	if err := item.ApplySubstitution(squad.SubstitutionRequest{
		PlayerOffID:   strings.TrimSpace(input.PlayerOffID),
		PlayerOffName: strings.TrimSpace(input.PlayerOffName),
		PlayerOnID:    strings.TrimSpace(input.PlayerOnID),
		PlayerOnName:  strings.TrimSpace(input.PlayerOnName),
		MatchTimeSec:  input.MatchTimeSec,
	}, s.now().UTC()); err != nil {
		return squad.Squad{}, err
	}

	if err := s.squadRepo.Update(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("persist substitution: %w", err)
	}

	s.logger.InfoContext(ctx, "substitution recorded",
		"fixture_id", fixtureID,
		"side", item.Side,
		"player_off", input.PlayerOffID,
		"player_on", input.PlayerOnID,
		"match_time_sec", input.MatchTimeSec,
	)

	return item, nil
}

// Lock freezes a squad's teamsheet once play begins. Locking an already
// locked squad is a no-op returning the current state.
func (s *SquadService) Lock(ctx context.Context, fixtureID string, side squad.Side) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.Lock")
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return squad.Squad{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	unlock := s.writes.Lock(writeKey(fixtureID, side))
	defer unlock()

	item, exists, err := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, side)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get squad before lock: %w", err)
	}
	if !exists {
		return squad.Squad{}, fmt.Errorf("%w: squad fixture=%s side=%s", ErrNotFound, fixtureID, side)
	}
	if item.Locked {
		return item, nil
	}

	item.Locked = true
	item.UpdatedAt = s.now().UTC()

	if err := s.squadRepo.Update(ctx, item); err != nil {
		return squad.Squad{}, fmt.Errorf("lock squad: %w", err)
	}

	s.logger.InfoContext(ctx, "squad locked", "fixture_id", fixtureID, "side", side)

	return item, nil
}

// CreateAwayPlaceholders explicitly provisions the AWAY placeholder
// squad. Unlike the read-side fallback it refuses when one exists.
func (s *SquadService) CreateAwayPlaceholders(ctx context.Context, fixtureID string) (squad.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.CreateAwayPlaceholders")
	defer span.End()

	fixtureID, err := s.requireFixture(ctx, fixtureID)
	if err != nil {
		return squad.Squad{}, err
	}

	unlock := s.writes.Lock(writeKey(fixtureID, squad.SideAway))
	defer unlock()

	_, exists, err := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, squad.SideAway)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get away squad: %w", err)
	}
	if exists {
		return squad.Squad{}, fmt.Errorf("%w: away squad fixture=%s", squad.ErrAlreadyExists, fixtureID)
	}

	return s.createAwayPlaceholders(ctx, fixtureID)
}

// LineupStatus reports whether any squad row exists for a fixture.
type LineupStatus struct {
	HasLineup bool
}

func (s *SquadService) LineupStatus(ctx context.Context, fixtureID string) (LineupStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.LineupStatus")
	defer span.End()

	fixtureID, err := s.requireFixture(ctx, fixtureID)
	if err != nil {
		return LineupStatus{}, err
	}

	squads, err := s.squadRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return LineupStatus{}, fmt.Errorf("list squads by fixture: %w", err)
	}

	return LineupStatus{HasLineup: len(squads) > 0}, nil
}

// SquadStatus reports per-side readiness. A side is ready when its
// squad exists with non-empty starting slots; the check is deliberately
// no stricter than that.
type SquadStatus struct {
	HomeReady bool
	AwayReady bool
}

func (s *SquadService) SquadStatus(ctx context.Context, fixtureID string) (SquadStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.SquadStatus")
	defer span.End()

	fixtureID, err := s.requireFixture(ctx, fixtureID)
	if err != nil {
		return SquadStatus{}, err
	}

	squads, err := s.squadRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return SquadStatus{}, fmt.Errorf("list squads by fixture: %w", err)
	}

	var status SquadStatus
	for _, item := range squads {
		ready := len(item.Starting) > 0
		switch item.Side {
		case squad.SideHome:
			status.HomeReady = ready
		case squad.SideAway:
			status.AwayReady = ready
		}
	}

	return status, nil
}

// ensureAwayPlaceholders creates the AWAY placeholder squad if missing,
// tolerating a concurrent creator winning the race.
func (s *SquadService) ensureAwayPlaceholders(ctx context.Context, fixtureID string) (squad.Squad, error) {
	unlock := s.writes.Lock(writeKey(fixtureID, squad.SideAway))
	defer unlock()

	existing, exists, err := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, squad.SideAway)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get away squad: %w", err)
	}
	if exists {
		return existing, nil
	}

	item, err := s.createAwayPlaceholders(ctx, fixtureID)
	if errors.Is(err, squad.ErrAlreadyExists) {
		// Another request created it between our read and write; the
		// storage uniqueness constraint kept exactly one row.
		created, _, readErr := s.squadRepo.GetByFixtureAndSide(ctx, fixtureID, squad.SideAway)
		if readErr != nil {
			return squad.Squad{}, fmt.Errorf("reload away squad: %w", readErr)
		}
		return created, nil
	}

	return item, err
}

func (s *SquadService) createAwayPlaceholders(ctx context.Context, fixtureID string) (squad.Squad, error) {
	squadID, err := s.idGen.NewID()
	if err != nil {
		return squad.Squad{}, fmt.Errorf("generate squad id: %w", err)
	}

	item := squad.NewPlaceholderSquad(squadID, fixtureID, s.now().UTC())
	if err := s.squadRepo.Create(ctx, item); err != nil {
		return squad.Squad{}, err
	}

	s.logger.InfoContext(ctx, "away placeholder squad created",
		"fixture_id", fixtureID,
		"squad_id", item.ID,
	)

	return item, nil
}

func (s *SquadService) requireFixture(ctx context.Context, fixtureID string) (string, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return "", fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	_, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return "", fmt.Errorf("get fixture by id: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return fixtureID, nil
}

func containsSide(squads []squad.Squad, side squad.Side) bool {
	for _, item := range squads {
		if item.Side == side {
			return true
		}
	}
	return false
}

func orderSquads(squads []squad.Squad) {
	for i, item := range squads {
		if item.Side == squad.SideHome && i != 0 {
			squads[0], squads[i] = squads[i], squads[0]
		}
	}
}

func writeKey(fixtureID string, side squad.Side) string {
	return fixtureID + "::" + string(side)
}
