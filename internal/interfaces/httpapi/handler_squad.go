package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/kilmacud/teamsheet/internal/domain/squad"
	"github.com/kilmacud/teamsheet/internal/usecase"
)

type slotRequest struct {
	PositionNo   int    `json:"position_no" validate:"required,min=1,max=30"`
	PositionName string `json:"position_name"`
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	JerseyNo     int    `json:"jersey_no" validate:"min=0,max=99"`
}

type replaceSquadRequest struct {
	Side     string        `json:"side" validate:"required,oneof=HOME AWAY home away"`
	Starting []slotRequest `json:"starting" validate:"omitempty,len=15"`
	Bench    []slotRequest `json:"bench" validate:"omitempty,len=15"`
}

type editSquadRequest struct {
	Starting []slotRequest `json:"starting" validate:"omitempty,len=15"`
	Bench    []slotRequest `json:"bench" validate:"omitempty,len=15"`
}

type substitutionRequest struct {
	PlayerOffID   string `json:"player_off_id" validate:"required"`
	PlayerOffName string `json:"player_off_name"`
	PlayerOnID    string `json:"player_on_id" validate:"required"`
	PlayerOnName  string `json:"player_on_name"`
	MatchTimeSec  int    `json:"match_time_sec" validate:"min=0"`
}

func (h *Handler) GetSquads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquads")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	squads, err := h.squadService.GetSquads(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get squads failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]squadDTO, 0, len(squads))
	for _, item := range squads {
		items = append(items, squadToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ReplaceSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceSquad")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")

	var req replaceSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	side, err := squad.ParseSide(req.Side)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.squadService.ReplaceSquad(ctx, usecase.ReplaceSquadInput{
		FixtureID: fixtureID,
		Side:      side,
		Starting:  slotsFromRequest(req.Starting),
		Bench:     slotsFromRequest(req.Bench),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "replace squad failed", "fixture_id", fixtureID, "side", side, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) EditSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditSquad")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	side, err := squad.ParseSide(r.PathValue("side"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req editSquadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.EditSquadInput{
		FixtureID: fixtureID,
		Side:      side,
	}
	if req.Starting != nil {
		input.Starting = slotsFromRequest(req.Starting)
	}
	if req.Bench != nil {
		input.Bench = slotsFromRequest(req.Bench)
	}

	item, err := h.squadService.EditSquad(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "edit squad failed", "fixture_id", fixtureID, "side", side, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) Substitute(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Substitute")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	side, err := squad.ParseSide(r.PathValue("side"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req substitutionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.squadService.Substitute(ctx, usecase.SubstituteInput{
		FixtureID:     fixtureID,
		Side:          side,
		PlayerOffID:   req.PlayerOffID,
		PlayerOffName: req.PlayerOffName,
		PlayerOnID:    req.PlayerOnID,
		PlayerOnName:  req.PlayerOnName,
		MatchTimeSec:  req.MatchTimeSec,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "substitution failed",
			"fixture_id", fixtureID,
			"side", side,
			"player_off", req.PlayerOffID,
			"player_on", req.PlayerOnID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) LockSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockSquad")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	side, err := squad.ParseSide(r.PathValue("side"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.squadService.Lock(ctx, fixtureID, side)
	if err != nil {
		h.logger.WarnContext(ctx, "lock squad failed", "fixture_id", fixtureID, "side", side, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) CreateAwayPlaceholders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAwayPlaceholders")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	item, err := h.squadService.CreateAwayPlaceholders(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "create away placeholders failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, squadToDTO(item))
}

func (h *Handler) GetLineupStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupStatus")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	status, err := h.squadService.LineupStatus(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "lineup status failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"hasLineup": status.HasLineup})
}

func (h *Handler) GetSquadStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquadStatus")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	status, err := h.squadService.SquadStatus(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "squad status failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{
		"homeReady": status.HomeReady,
		"awayReady": status.AwayReady,
	})
}

func slotsFromRequest(slots []slotRequest) []squad.Slot {
	if slots == nil {
		return nil
	}

	out := make([]squad.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, squad.Slot{
			PositionNo:   s.PositionNo,
			PositionName: s.PositionName,
			PlayerID:     s.PlayerID,
			PlayerName:   s.PlayerName,
			JerseyNo:     s.JerseyNo,
		})
	}
	return out
}
