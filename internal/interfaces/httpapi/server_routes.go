package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/positions", handler.ListPositions)

	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/squads", handler.GetSquads)
	mux.HandleFunc("POST /v1/fixtures/{fixtureID}/squads", handler.ReplaceSquad)
	mux.HandleFunc("PUT /v1/fixtures/{fixtureID}/squads/{side}", handler.EditSquad)
	mux.HandleFunc("POST /v1/fixtures/{fixtureID}/squads/{side}/substitutions", handler.Substitute)
	mux.HandleFunc("POST /v1/fixtures/{fixtureID}/squads/{side}/lock", handler.LockSquad)
	mux.HandleFunc("POST /v1/fixtures/{fixtureID}/squads/away/placeholders", handler.CreateAwayPlaceholders)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/lineup-status", handler.GetLineupStatus)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/squad-status", handler.GetSquadStatus)

	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("POST /v1/teams/{teamID}/players/quick-add", handler.QuickAddPlayer)
	mux.HandleFunc("GET /v1/teams/{teamID}/squad-status", handler.GetTeamSquadStatus)
}
