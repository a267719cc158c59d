package http

// ErrorResponse is the uniform error body returned by voting endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CastBallotRequest struct {
	Vote string `json:"vote"`
}

type BallotResponse struct {
	ID        int64  `json:"id"`
	MeetingID int64  `json:"meeting_id"`
	UserID    int64  `json:"user_id"`
	Vote      string `json:"vote"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BallotListResponse struct {
	MeetingID int64            `json:"meeting_id"`
	Ballots   []BallotResponse `json:"ballots"`
	Count     int              `json:"count"`
}

type MeetingTallyResponse struct {
	MeetingID   int64          `json:"meeting_id"`
	Counts      map[string]int `json:"counts"`
	TotalVoters int            `json:"total_voters"`
}

type RecordVoteResultRequest struct {
	VotesFor     int    `json:"votes_for"`
	VotesAgainst int    `json:"votes_against"`
	VotesAbstain int    `json:"votes_abstain"`
	TotalVotes   int    `json:"total_votes"`
	Result       string `json:"result"`
}

type VoteResultResponse struct {
	ID           int64  `json:"id"`
	AgendaItemID int64  `json:"agenda_item_id"`
	VotesFor     int    `json:"votes_for"`
	VotesAgainst int    `json:"votes_against"`
	VotesAbstain int    `json:"votes_abstain"`
	TotalVotes   int    `json:"total_votes"`
	Result       string `json:"result"`
	VotedAt      string `json:"voted_at"`
}

// OptionalVoteResultResponse reports has_result false for agenda items that
// were never voted on instead of an error status.
type OptionalVoteResultResponse struct {
	AgendaItemID int64               `json:"agenda_item_id"`
	HasResult    bool                `json:"has_result"`
	Result       *VoteResultResponse `json:"result,omitempty"`
}
