package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/kilmacud/teamsheet/internal/usecase"
)

type quickAddPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	JerseyNo int    `json:"jersey_no" validate:"min=0,max=99"`
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.rosterService.ListTeamPlayers(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) QuickAddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.QuickAddPlayer")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req quickAddPlayerRequest
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

	item, err := h.rosterService.QuickAddPlayer(ctx, usecase.QuickAddPlayerInput{
		TeamID:   teamID,
		Name:     req.Name,
		JerseyNo: req.JerseyNo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "quick add player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) GetTeamSquadStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSquadStatus")
	defer span.End()

	teamID := r.PathValue("teamID")
	result, err := h.teamStatusService.TeamSquadStatus(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team squad status failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
