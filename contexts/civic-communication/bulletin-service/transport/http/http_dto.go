package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PublishAnnouncementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority,omitempty"`
}

type AnnouncementResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	CreatedBy int64  `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  int64  `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  int64  `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Status      string `json:"status"`
	CreatedBy   int64  `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
