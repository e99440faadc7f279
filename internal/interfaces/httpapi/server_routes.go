package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/outings", handler.ListOutingsByPlayer)
}

func registerOutingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/outings", handler.CreateOuting)
	mux.HandleFunc("GET /v1/outings/{outingID}", handler.GetOuting)
	mux.HandleFunc("PUT /v1/outings/{outingID}", handler.UpdateOuting)
	mux.HandleFunc("DELETE /v1/outings/{outingID}", handler.DeleteOuting)
	mux.HandleFunc("POST /v1/outings/{outingID}/at-bats", handler.AddAtBat)
	mux.HandleFunc("POST /v1/outings/{outingID}/complete", handler.CompleteOuting)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/players/{playerID}/trends", handler.GetPlayerTrends)
	// Same rows as /trends, rendered as a workbook with the report card on a second sheet.
	mux.HandleFunc("GET /v1/players/{playerID}/trends/export", handler.ExportPlayerTrends)
	mux.HandleFunc("GET /v1/players/{playerID}/report-card", handler.GetPlayerReportCard)
	mux.HandleFunc("GET /v1/report-cards", handler.ListRosterReportCards)
}
