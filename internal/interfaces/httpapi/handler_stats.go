package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/hitting-tracker/internal/domain/metrics"
	"github.com/riskibarqy/hitting-tracker/internal/infrastructure/export"
)

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	stats, err := h.statsService.GetPlayerStats(ctx, playerID, statsFilterFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(stats))
}

func (h *Handler) GetPlayerTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerTrends")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	window, err := queryInt(r, "window")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	metric := metrics.TrendMetric(r.URL.Query().Get("metric"))
	series, err := h.statsService.GetTrends(ctx, playerID, statsFilterFromQuery(r), metric, window)
	if err != nil {
		h.logger.WarnContext(ctx, "get player trends failed", "player_id", playerID, "metric", metric, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trendSeriesToDTO(series))
}

func (h *Handler) ExportPlayerTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayerTrends")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	window, err := queryInt(r, "window")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if window < 1 {
		window = metrics.DefaultRollingWindow
	}

	stats, err := h.statsService.GetPlayerStats(ctx, playerID, statsFilterFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "export player trends failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	report := export.TrendReport{
		Player:     stats.Player,
		Points:     stats.Trends,
		Window:     window,
		ReportCard: stats.ReportCard,
	}
	body, err := export.TrendWorkbook(report)
	if err != nil {
		h.logger.ErrorContext(ctx, "render trend workbook failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeAttachment(ctx, w, export.ContentTypeXLSX, report.FileName(), body)
}

func (h *Handler) GetPlayerReportCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerReportCard")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	card, err := h.statsService.GetReportCard(ctx, playerID, statsFilterFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get report card failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportCardToDTO(card))
}

func (h *Handler) ListRosterReportCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRosterReportCards")
	defer span.End()

	rows, err := h.statsService.ListRosterReportCards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list roster report cards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterReportCardDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rosterReportCardDTO{
			Player:     playerToDTO(row.Player),
			Outings:    row.Outings,
			AtBats:     row.AtBats,
			ReportCard: reportCardToDTO(row.ReportCard),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
