package squad

import (
	"fmt"
	"time"
)

// SubstitutionRequest carries the identities involved in one swap. The
// names travel with the request because the opposition's players may
// not exist in the roster at all.
type SubstitutionRequest struct {
	PlayerOffID   string
	PlayerOffName string
	PlayerOnID    string
	PlayerOnName  string
	MatchTimeSec  int
}

// ApplySubstitution swaps the player occupying a starting slot with a
// player from the bench and appends a log entry. The slots keep their
// own position number and name: the incoming player inherits the
// outgoing player's pitch position, and the bench seat stays the bench
// seat. The squad is left untouched on any precondition failure.
func (s *Squad) ApplySubstitution(req SubstitutionRequest, now time.Time) error {
	offIdx, ok := s.StartingIndexOf(req.PlayerOffID)
	if !ok {
		return fmt.Errorf("%w: player=%s", ErrPlayerNotInLineup, req.PlayerOffID)
	}

	onIdx, ok := s.BenchIndexOf(req.PlayerOnID)
	if !ok {
		return fmt.Errorf("%w: player=%s", ErrPlayerNotOnBench, req.PlayerOnID)
	}

	incoming := s.Bench[onIdx]
	outgoing := s.Starting[offIdx]

	s.Starting[offIdx].PlayerID = incoming.PlayerID
	s.Starting[offIdx].PlayerName = incoming.PlayerName
	s.Starting[offIdx].JerseyNo = incoming.JerseyNo

	s.Bench[onIdx].PlayerID = outgoing.PlayerID
	s.Bench[onIdx].PlayerName = outgoing.PlayerName
	s.Bench[onIdx].JerseyNo = outgoing.JerseyNo

	s.Subs = append(s.Subs, Substitution{
		OccurredAt:    now,
		MatchTimeSec:  req.MatchTimeSec,
		PlayerOffID:   req.PlayerOffID,
		PlayerOffName: req.PlayerOffName,
		PlayerOnID:    req.PlayerOnID,
		PlayerOnName:  req.PlayerOnName,
	})
	s.UpdatedAt = now

	return nil
}
