package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/kilmacud/teamsheet/internal/infrastructure/repository/memory"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
	"github.com/kilmacud/teamsheet/internal/usecase"
)

type sequenceIDGenerator struct {
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
	squadRepo := memory.NewSquadRepository()
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	logger := logging.NewNop()
	idGen := &sequenceIDGenerator{prefix: "test"}

	squadService := usecase.NewSquadService(fixtureRepo, squadRepo, idGen, logger)
	rosterService := usecase.NewRosterService(playerRepo, idGen, logger)
	teamStatusService := usecase.NewTeamStatusService(fixtureRepo, squadService, 4, logger)

	handler := NewHandler(squadService, rosterService, teamStatusService, logger)
	return NewRouter(handler, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body["data"]
}

func startingSlotsJSON() string {
	positions := []string{
		"Goalkeeper", "Right Corner-Back", "Full-Back", "Left Corner-Back",
		"Right Half-Back", "Centre Half-Back", "Left Half-Back",
		"Midfield", "Midfield",
		"Right Half-Forward", "Centre Half-Forward", "Left Half-Forward",
		"Right Corner-Forward", "Full-Forward", "Left Corner-Forward",
	}

	var slots []string
	for i := 1; i <= 15; i++ {
		slots = append(slots, fmt.Sprintf(
			`{"position_no":%d,"position_name":"%s","player_id":"pl-kilmacud-%02d","player_name":"Starter %d","jersey_no":%d}`,
			i, positions[i-1], i, i, i))
	}
	return "[" + strings.Join(slots, ",") + "]"
}

func benchSlotsJSON() string {
	var slots []string
	for i := 16; i <= 30; i++ {
		slots = append(slots, fmt.Sprintf(
			`{"position_no":%d,"position_name":"Bench %d","player_id":"pl-kilmacud-%02d","player_name":"Sub %d","jersey_no":%d}`,
			i, i, i, i-15, i))
	}
	return "[" + strings.Join(slots, ",") + "]"
}

func fullSquadBody(side string) string {
	return fmt.Sprintf(`{"side":"%s","starting":%s,"bench":%s}`,
		side, startingSlotsJSON(), benchSlotsJSON())
}

func TestRouter_GetSquads_AutoCreatesAway(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/fixtures/"+memory.FixtureIDChampionshipR1+"/squads", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	items, ok := decodeData(t, rec).([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 squad in data, got %v", decodeData(t, rec))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["side"].(string); got != "AWAY" {
		t.Fatalf("expected auto-created AWAY squad, got side=%v", first["side"])
	}
}

func TestRouter_GetSquads_UnknownFixture(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/fixtures/fx-nope/squads", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_ReplaceLockEditFlow(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/fixtures/" + memory.FixtureIDChampionshipR1 + "/squads"

	rec := doRequest(t, router, http.MethodPost, base, fullSquadBody("HOME"))
	if rec.Code != http.StatusOK {
		t.Fatalf("replace squad: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPut, base+"/HOME", `{"bench":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("edit with short bench: expected 400, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, base+"/HOME/lock", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("lock: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPut, base+"/HOME", fmt.Sprintf(`{"starting":%s}`, startingSlotsJSON()))
	if rec.Code != http.StatusConflict {
		t.Fatalf("edit locked squad: expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// Force replace still goes through after the lock.
	rec = doRequest(t, router, http.MethodPost, base, fullSquadBody("HOME"))
	if rec.Code != http.StatusOK {
		t.Fatalf("replace after lock: expected 200, got %d", rec.Code)
	}
}

func TestRouter_SubstitutionFlow(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/fixtures/" + memory.FixtureIDChampionshipR1 + "/squads"

	rec := doRequest(t, router, http.MethodPost, base, fullSquadBody("HOME"))
	if rec.Code != http.StatusOK {
		t.Fatalf("replace squad: expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, base+"/HOME/substitutions",
		`{"player_off_id":"pl-kilmacud-14","player_on_id":"pl-kilmacud-20","match_time_sec":2700}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("substitution: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data, _ := decodeData(t, rec).(map[string]any)
	subs, _ := data["subs"].([]any)
	if len(subs) != 1 {
		t.Fatalf("expected 1 substitution in response, got %v", data["subs"])
	}

	// Off player is no longer a valid target for a second swap.
	rec = doRequest(t, router, http.MethodPost, base+"/HOME/substitutions",
		`{"player_off_id":"pl-kilmacud-14","player_on_id":"pl-kilmacud-21","match_time_sec":2800}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("repeat substitution: expected 400, got %d", rec.Code)
	}
}

func TestRouter_AwayPlaceholdersConflict(t *testing.T) {
	router := newTestRouter(t)
	path := "/v1/fixtures/" + memory.FixtureIDChampionshipR1 + "/squads/away/placeholders"

	rec := doRequest(t, router, http.MethodPost, path, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create placeholders: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, path, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate placeholders: expected 409, got %d", rec.Code)
	}
}

func TestRouter_StatusEndpoints(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/fixtures/" + memory.FixtureIDChampionshipR1

	rec := doRequest(t, router, http.MethodGet, base+"/lineup-status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("lineup status: expected 200, got %d", rec.Code)
	}
	data, _ := decodeData(t, rec).(map[string]any)
	if got, _ := data["hasLineup"].(bool); got {
		t.Fatal("expected hasLineup=false before any squad saved")
	}

	if rec := doRequest(t, router, http.MethodPost, base+"/squads", fullSquadBody("HOME")); rec.Code != http.StatusOK {
		t.Fatalf("replace squad: expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, base+"/squad-status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("squad status: expected 200, got %d", rec.Code)
	}
	data, _ = decodeData(t, rec).(map[string]any)
	if got, _ := data["homeReady"].(bool); !got {
		t.Fatal("expected homeReady=true")
	}
	if got, _ := data["awayReady"].(bool); got {
		t.Fatal("expected awayReady=false")
	}
}

func TestRouter_RosterEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/"+memory.TeamIDKilmacud+"/players", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list players: expected 200, got %d", rec.Code)
	}
	items, _ := decodeData(t, rec).([]any)
	if len(items) == 0 {
		t.Fatal("expected seeded players")
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/teams/"+memory.TeamIDKilmacud+"/players/quick-add",
		`{"name":"Late Addition","jersey_no":31}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("quick add: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/teams/"+memory.TeamIDKilmacud+"/players/quick-add", `{"name":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("quick add blank name: expected 400, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/teams/"+memory.TeamIDKilmacud+"/squad-status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("team squad status: expected 200, got %d", rec.Code)
	}
	data, _ := decodeData(t, rec).(map[string]any)
	if got, _ := data["fixture_count"].(float64); int(got) != 3 {
		t.Fatalf("expected 3 fixtures, got %v", data["fixture_count"])
	}
}

func TestRouter_ListPositions(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/positions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items, _ := decodeData(t, rec).([]any)
	if len(items) != 15 {
		t.Fatalf("expected 15 positions, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["name"].(string); got != "Goalkeeper" {
		t.Fatalf("expected position 1 to be Goalkeeper, got %v", first["name"])
	}
}
