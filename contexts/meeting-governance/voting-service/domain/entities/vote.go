package entities

import "time"

// Ballot is a single voter's choice on a meeting-level question. At most one
// ballot exists per (meeting, voter) pair; re-casting overwrites the option.
type Ballot struct {
	BallotID  int64
	MeetingID int64
	VoterID   int64
	Option    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MeetingTally is the aggregated view over a meeting's ballots.
type MeetingTally struct {
	MeetingID   int64
	Counts      map[string]int
	TotalVoters int
}

type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
	OutcomeNoQuorum Outcome = "no_quorum"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeApproved, OutcomeRejected, OutcomeNoQuorum:
		return true
	default:
		return false
	}
}

// VoteResult is the authoritative single-row tally for one agenda item.
// Recording a new result replaces the previous row rather than appending.
type VoteResult struct {
	ResultID     int64
	AgendaItemID int64
	VotesFor     int
	VotesAgainst int
	VotesAbstain int
	TotalVotes   int
	Result       Outcome
	VotedAt      time.Time
}

func (r VoteResult) CountSum() int {
	return r.VotesFor + r.VotesAgainst + r.VotesAbstain
}
