package http

// ErrorResponse is the uniform error body returned by meeting endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCommitteeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CommitteeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type CommitteeListResponse struct {
	Committees []CommitteeResponse `json:"committees"`
}

type CreateMeetingRequest struct {
	CommitteeID int64  `json:"committee_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

type MeetingResponse struct {
	ID          int64  `json:"id"`
	CommitteeID int64  `json:"committee_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Status      string `json:"status"`
	CreatedBy   int64  `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

type UpdateMeetingStatusRequest struct {
	Status string `json:"status"`
}
