package memory

import (
	"fmt"
	"time"

	"github.com/kilmacud/teamsheet/internal/domain/fixture"
	"github.com/kilmacud/teamsheet/internal/domain/player"
)

const (
	TeamIDKilmacud   = "gaa-kilmacud-crokes"
	TeamIDNaFianna   = "gaa-na-fianna"
	TeamIDBallyboden = "gaa-ballyboden"

	FixtureIDChampionshipR1 = "fx-2026-dsfc-r1"
	FixtureIDChampionshipR2 = "fx-2026-dsfc-r2"
	FixtureIDLeagueWeek9    = "fx-2026-afl1-w9"
)

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:           FixtureIDChampionshipR1,
			TeamID:       TeamIDKilmacud,
			Competition:  "Dublin Senior Football Championship",
			HomeTeamName: "Kilmacud Crokes",
			AwayTeamName: "Na Fianna",
			ThrowInAt:    time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC),
			Venue:        "Parnell Park",
			Status:       fixture.StatusScheduled,
		},
		{
			ID:           FixtureIDChampionshipR2,
			TeamID:       TeamIDKilmacud,
			Competition:  "Dublin Senior Football Championship",
			HomeTeamName: "Ballyboden St Enda's",
			AwayTeamName: "Kilmacud Crokes",
			ThrowInAt:    time.Date(2026, 9, 26, 16, 0, 0, 0, time.UTC),
			Venue:        "Pairc Ui Mhurchu",
			Status:       fixture.StatusScheduled,
		},
		{
			ID:           FixtureIDLeagueWeek9,
			TeamID:       TeamIDKilmacud,
			Competition:  "Adult Football League Division 1",
			HomeTeamName: "Kilmacud Crokes",
			AwayTeamName: "Ballyboden St Enda's",
			ThrowInAt:    time.Date(2026, 8, 15, 11, 0, 0, 0, time.UTC),
			Venue:        "Silverpark",
			Status:       fixture.StatusFinished,
		},
	}
}

func SeedPlayers() []player.Player {
	names := []string{
		"Conor Ferris",
		"Dan O'Brien",
		"Theo Clancy",
		"Michael Mullin",
		"Andrew McGowan",
		"Rory O'Carroll",
		"Cian O'Connor",
		"Craig Dias",
		"Ben Shovlin",
		"Tom Fox",
		"Paul Mannion",
		"Dara Mullin",
		"Shane Walsh",
		"Shane Cunningham",
		"Hugh Kenny",
		"Luke Ward",
		"Conor Casey",
		"Brian Sheehy",
		"Aidan Jones",
		"Mark O'Leary",
		"Callum Pearson",
		"Cillian O'Shea",
		"James Murphy",
		"Oisin O'Sullivan",
	}

	players := make([]player.Player, 0, len(names))
	for i, name := range names {
		players = append(players, player.Player{
			ID:       fmt.Sprintf("pl-kilmacud-%02d", i+1),
			TeamID:   TeamIDKilmacud,
			Name:     name,
			JerseyNo: i + 1,
		})
	}

	return players
}
