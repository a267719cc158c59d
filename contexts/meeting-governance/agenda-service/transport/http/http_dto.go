package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateAgendaItemRequest struct {
	MeetingID         int64  `json:"meeting_id"`
	OrderIndex        int    `json:"order_index"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	Presenter         string `json:"presenter,omitempty"`
	EstimatedDuration int    `json:"estimated_duration,omitempty"`
	Status            string `json:"status,omitempty"`
	IntroductionFile  string `json:"introduction_file,omitempty"`
	DecisionFile      string `json:"decision_file,omitempty"`
}

type AgendaItemResponse struct {
	ItemID            int64  `json:"id"`
	MeetingID         int64  `json:"meeting_id"`
	OrderIndex        int    `json:"order_index"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	Presenter         string `json:"presenter,omitempty"`
	EstimatedDuration int    `json:"estimated_duration,omitempty"`
	Status            string `json:"status"`
	IntroductionFile  string `json:"introduction_file,omitempty"`
	DecisionFile      string `json:"decision_file,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

type AgendaListResponse struct {
	Items []AgendaItemResponse `json:"items"`
}

type UpdateItemStatusRequest struct {
	Status string `json:"status"`
}

type ReorderAgendaRequest struct {
	ItemIDs []int64 `json:"item_ids"`
}

type AddCommentRequest struct {
	Body string `json:"comment"`
}

type AgendaCommentResponse struct {
	CommentID int64  `json:"id"`
	ItemID    int64  `json:"agenda_item_id"`
	AuthorID  int64  `json:"user_id"`
	Body      string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CommentListResponse struct {
	Comments []AgendaCommentResponse `json:"comments"`
}
