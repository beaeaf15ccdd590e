package squad

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func validSquad() Squad {
	starting := EmptyStartingSlots()
	for i := range starting {
		starting[i].PlayerID = fmt.Sprintf("pl-%02d", i+1)
		starting[i].PlayerName = fmt.Sprintf("Player %d", i+1)
		starting[i].JerseyNo = i + 1
	}

	bench := EmptyBenchSlots()
	for i := range bench {
		bench[i].PlayerID = fmt.Sprintf("pl-%02d", BenchFirstNo+i)
		bench[i].PlayerName = fmt.Sprintf("Player %d", BenchFirstNo+i)
		bench[i].JerseyNo = BenchFirstNo + i
	}

	return Squad{
		ID:        "squad-1",
		FixtureID: "fx-1",
		Side:      SideHome,
		Starting:  starting,
		Bench:     bench,
	}
}

func TestSquadValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Squad)
		targetErr error
	}{
		{
			name:   "valid squad",
			mutate: func(_ *Squad) {},
		},
		{
			name: "short starting lineup",
			mutate: func(s *Squad) {
				s.Starting = s.Starting[:14]
			},
			targetErr: ErrInvalidSlots,
		},
		{
			name: "short bench",
			mutate: func(s *Squad) {
				s.Bench = s.Bench[:10]
			},
			targetErr: ErrInvalidSlots,
		},
		{
			name: "duplicate starting position",
			mutate: func(s *Squad) {
				s.Starting[1].PositionNo = 1
			},
			targetErr: ErrInvalidSlots,
		},
		{
			name: "starting position out of range",
			mutate: func(s *Squad) {
				s.Starting[0].PositionNo = 16
			},
			targetErr: ErrInvalidSlots,
		},
		{
			name: "bench position below range",
			mutate: func(s *Squad) {
				s.Bench[0].PositionNo = 15
			},
			targetErr: ErrInvalidSlots,
		},
		{
			name: "duplicate bench position",
			mutate: func(s *Squad) {
				s.Bench[1].PositionNo = BenchFirstNo
			},
			targetErr: ErrInvalidSlots,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := validSquad()
			tc.mutate(&item)

			err := item.Validate()
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("expected valid squad, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}

	t.Run("missing fixture id", func(t *testing.T) {
		item := validSquad()
		item.FixtureID = ""
		if err := item.Validate(); err == nil {
			t.Fatal("expected error for missing fixture id")
		}
	})

	t.Run("invalid side", func(t *testing.T) {
		item := validSquad()
		item.Side = Side("NEUTRAL")
		if err := item.Validate(); err == nil {
			t.Fatal("expected error for invalid side")
		}
	})
}

func TestApplySubstitution(t *testing.T) {
	now := time.Date(2026, 5, 17, 15, 42, 0, 0, time.UTC)

	t.Run("swaps players and appends log entry", func(t *testing.T) {
		item := validSquad()
		req := SubstitutionRequest{
			PlayerOffID:   "pl-11",
			PlayerOffName: "Player 11",
			PlayerOnID:    "pl-20",
			PlayerOnName:  "Player 20",
			MatchTimeSec:  41 * 60,
		}

		if err := item.ApplySubstitution(req, now); err != nil {
			t.Fatalf("apply substitution: %v", err)
		}

		// Incoming player inherits the pitch position.
		if item.Starting[10].PlayerID != "pl-20" {
			t.Fatalf("expected pl-20 in slot 11, got %s", item.Starting[10].PlayerID)
		}
		if item.Starting[10].PositionNo != 11 {
			t.Fatalf("slot kept position no 11, got %d", item.Starting[10].PositionNo)
		}
		if item.Bench[4].PlayerID != "pl-11" {
			t.Fatalf("expected pl-11 on bench seat 20, got %s", item.Bench[4].PlayerID)
		}
		if len(item.Subs) != 1 {
			t.Fatalf("expected one log entry, got %d", len(item.Subs))
		}
		entry := item.Subs[0]
		if entry.PlayerOffID != "pl-11" || entry.PlayerOnID != "pl-20" {
			t.Fatalf("unexpected log entry: %+v", entry)
		}
		if !entry.OccurredAt.Equal(now) || entry.MatchTimeSec != 41*60 {
			t.Fatalf("unexpected log timing: %+v", entry)
		}
	})

	t.Run("outgoing player not in lineup", func(t *testing.T) {
		item := validSquad()
		err := item.ApplySubstitution(SubstitutionRequest{
			PlayerOffID: "pl-99",
			PlayerOnID:  "pl-20",
		}, now)
		if !errors.Is(err, ErrPlayerNotInLineup) {
			t.Fatalf("expected ErrPlayerNotInLineup, got %v", err)
		}
		if len(item.Subs) != 0 {
			t.Fatalf("expected no log entry, got %d", len(item.Subs))
		}
	})

	t.Run("incoming player not on bench", func(t *testing.T) {
		item := validSquad()
		err := item.ApplySubstitution(SubstitutionRequest{
			PlayerOffID: "pl-11",
			PlayerOnID:  "pl-99",
		}, now)
		if !errors.Is(err, ErrPlayerNotOnBench) {
			t.Fatalf("expected ErrPlayerNotOnBench, got %v", err)
		}
		if item.Starting[10].PlayerID != "pl-11" {
			t.Fatalf("expected lineup untouched, got %s", item.Starting[10].PlayerID)
		}
	})
}

func TestNewPlaceholderSquad(t *testing.T) {
	now := time.Date(2026, 5, 17, 14, 0, 0, 0, time.UTC)
	item := NewPlaceholderSquad("squad-away", "fx-1", now)

	if item.Side != SideAway {
		t.Fatalf("expected AWAY side, got %s", item.Side)
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("placeholder squad should validate: %v", err)
	}
	if got := item.Starting[0].PlayerName; got != "Away #1" {
		t.Fatalf("unexpected first placeholder name: %s", got)
	}
	if got := item.Bench[BenchSize-1].PlayerName; got != "Away #30" {
		t.Fatalf("unexpected last placeholder name: %s", got)
	}
	if got := item.Starting[0].PositionName; got != "Goalkeeper" {
		t.Fatalf("unexpected first position name: %s", got)
	}
}

func TestParseSide(t *testing.T) {
	if side, err := ParseSide(" home "); err != nil || side != SideHome {
		t.Fatalf("expected HOME, got %s err=%v", side, err)
	}
	if side, err := ParseSide("AWAY"); err != nil || side != SideAway {
		t.Fatalf("expected AWAY, got %s err=%v", side, err)
	}
	if _, err := ParseSide("neutral"); err == nil {
		t.Fatal("expected error for unknown side")
	}
}
