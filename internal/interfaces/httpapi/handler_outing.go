package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListOutingsByPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOutingsByPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	items, err := h.outingService.ListOutings(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list outings failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outingsToDTO(items))
}

func (h *Handler) GetOuting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOuting")
	defer span.End()

	outingID := strings.TrimSpace(r.PathValue("outingID"))
	item, err := h.outingService.GetOuting(ctx, outingID)
	if err != nil {
		h.logger.WarnContext(ctx, "get outing failed", "outing_id", outingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outingToDTO(item))
}

func (h *Handler) CreateOuting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateOuting")
	defer span.End()

	var req createOutingRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	in, err := req.toInput(req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.outingService.CreateOuting(ctx, in)
	if err != nil {
		h.logger.WarnContext(ctx, "create outing failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, outingToDTO(item))
}

func (h *Handler) UpdateOuting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateOuting")
	defer span.End()

	outingID := strings.TrimSpace(r.PathValue("outingID"))
	var req outingRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	in, err := req.toInput("")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.outingService.UpdateOuting(ctx, outingID, in)
	if err != nil {
		h.logger.WarnContext(ctx, "update outing failed", "outing_id", outingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outingToDTO(item))
}

func (h *Handler) DeleteOuting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteOuting")
	defer span.End()

	outingID := strings.TrimSpace(r.PathValue("outingID"))
	if err := h.outingService.DeleteOuting(ctx, outingID); err != nil {
		h.logger.WarnContext(ctx, "delete outing failed", "outing_id", outingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": outingID})
}

func (h *Handler) AddAtBat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddAtBat")
	defer span.End()

	outingID := strings.TrimSpace(r.PathValue("outingID"))
	var req atBatRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.outingService.AddAtBat(ctx, outingID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "add at bat failed", "outing_id", outingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, outingToDTO(item))
}

func (h *Handler) CompleteOuting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteOuting")
	defer span.End()

	outingID := strings.TrimSpace(r.PathValue("outingID"))
	item, err := h.outingService.CompleteOuting(ctx, outingID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete outing failed", "outing_id", outingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outingToDTO(item))
}
