package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kilmacud/teamsheet/internal/domain/player"
	"github.com/kilmacud/teamsheet/internal/domain/squad"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
	"github.com/kilmacud/teamsheet/internal/usecase"
)

type Handler struct {
	squadService      *usecase.SquadService
	rosterService     *usecase.RosterService
	teamStatusService *usecase.TeamStatusService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	squadService *usecase.SquadService,
	rosterService *usecase.RosterService,
	teamStatusService *usecase.TeamStatusService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		squadService:      squadService,
		rosterService:     rosterService,
		teamStatusService: teamStatusService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPositions exposes the fixed position catalog the lineup editor
// renders its pitch from.
func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions := squad.StartingPositions()
	items := make([]positionDTO, 0, len(positions))
	for _, p := range positions {
		items = append(items, positionDTO{No: p.No, Name: p.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type positionDTO struct {
	No   int    `json:"no"`
	Name string `json:"name"`
}

type slotDTO struct {
	PositionNo   int    `json:"position_no"`
	PositionName string `json:"position_name"`
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	JerseyNo     int    `json:"jersey_no"`
}

type substitutionDTO struct {
	OccurredAt    time.Time `json:"occurred_at"`
	MatchTimeSec  int       `json:"match_time_sec"`
	PlayerOffID   string    `json:"player_off_id"`
	PlayerOffName string    `json:"player_off_name"`
	PlayerOnID    string    `json:"player_on_id"`
	PlayerOnName  string    `json:"player_on_name"`
}

type squadDTO struct {
	ID        string            `json:"id"`
	FixtureID string            `json:"fixture_id"`
	Side      string            `json:"side"`
	Starting  []slotDTO         `json:"starting"`
	Bench     []slotDTO         `json:"bench"`
	Subs      []substitutionDTO `json:"subs"`
	Locked    bool              `json:"locked"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type playerDTO struct {
	ID       string `json:"id"`
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	JerseyNo int    `json:"jersey_no"`
}

func squadToDTO(item squad.Squad) squadDTO {
	return squadDTO{
		ID:        item.ID,
		FixtureID: item.FixtureID,
		Side:      string(item.Side),
		Starting:  slotsToDTO(item.Starting),
		Bench:     slotsToDTO(item.Bench),
		Subs:      subsToDTO(item.Subs),
		Locked:    item.Locked,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func slotsToDTO(slots []squad.Slot) []slotDTO {
	items := make([]slotDTO, 0, len(slots))
	for _, s := range slots {
		items = append(items, slotDTO{
			PositionNo:   s.PositionNo,
			PositionName: s.PositionName,
			PlayerID:     s.PlayerID,
			PlayerName:   s.PlayerName,
			JerseyNo:     s.JerseyNo,
		})
	}
	return items
}

func subsToDTO(subs []squad.Substitution) []substitutionDTO {
	items := make([]substitutionDTO, 0, len(subs))
	for _, s := range subs {
		items = append(items, substitutionDTO{
			OccurredAt:    s.OccurredAt,
			MatchTimeSec:  s.MatchTimeSec,
			PlayerOffID:   s.PlayerOffID,
			PlayerOffName: s.PlayerOffName,
			PlayerOnID:    s.PlayerOnID,
			PlayerOnName:  s.PlayerOnName,
		})
	}
	return items
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:       item.ID,
		TeamID:   item.TeamID,
		Name:     item.Name,
		JerseyNo: item.JerseyNo,
	}
}
