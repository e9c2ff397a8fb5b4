package dto

import (
	"time"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// AttachmentRequest references an uploaded file.
type AttachmentRequest struct {
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
}

// CreateTicketRequest payload. OwnerID is honored only for agents filing
// on behalf of a customer.
type CreateTicketRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	SubCategory string              `json:"sub_category"`
	OwnerID     int64               `json:"owner_id"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// TriageTicketRequest payload.
type TriageTicketRequest struct {
	Priority    domain.TicketPriority `json:"priority"`
	Severity    domain.TicketSeverity `json:"severity"`
	AssigneeIDs []int64               `json:"assignee_ids"`
}

// EngineerUpdateRequest payload.
type EngineerUpdateRequest struct {
	Comment   string               `json:"comment"`
	NewStatus *domain.TicketStatus `json:"new_status"`
}

// ReassignTicketRequest payload.
type ReassignTicketRequest struct {
	NewAssigneeIDs []int64 `json:"new_assignee_ids"`
}

// FeedbackRequest payload.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AttachmentResponse references a stored file.
type AttachmentResponse struct {
	ID         int64     `json:"id"`
	FilePath   string    `json:"file_path"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TicketSummary response.
type TicketSummary struct {
	ID          int64                 `json:"id"`
	TicketUID   string                `json:"ticket_uid"`
	Title       string                `json:"title"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority,omitempty"`
	Severity    domain.TicketSeverity `json:"severity,omitempty"`
	Category    string                `json:"category,omitempty"`
	SLABreachAt *time.Time            `json:"sla_breach_at,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// FeedbackResponse is the ticket's zero-or-one feedback record.
type FeedbackResponse struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	ID               int64                 `json:"id"`
	TicketUID        string                `json:"ticket_uid"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Status           domain.TicketStatus   `json:"status"`
	Priority         domain.TicketPriority `json:"priority,omitempty"`
	Severity         domain.TicketSeverity `json:"severity,omitempty"`
	Category         string                `json:"category,omitempty"`
	SubCategory      string                `json:"sub_category,omitempty"`
	SLADurationHours *int                  `json:"sla_duration_hours,omitempty"`
	SLABreachAt      *time.Time            `json:"sla_breach_at,omitempty"`
	OwnerID          int64                 `json:"owner_id"`
	CreatedByID      int64                 `json:"created_by_id"`
	AssignedByID     *int64                `json:"assigned_by_id,omitempty"`
	AssigneeIDs      []int64               `json:"assignee_ids"`
	Attachments      []AttachmentResponse  `json:"attachments"`
	Feedback         *FeedbackResponse     `json:"feedback,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	ResolvedAt       *time.Time            `json:"resolved_at,omitempty"`
}

// ActivityResponse represents one activity log entry.
type ActivityResponse struct {
	ID           int64               `json:"id"`
	TicketID     int64               `json:"ticket_id"`
	UserID       int64               `json:"user_id"`
	ActivityType domain.ActivityType `json:"activity_type"`
	Description  string              `json:"description"`
	InternalOnly bool                `json:"internal_only"`
	CreatedAt    time.Time           `json:"created_at"`
}

// NewTicketSummary maps a domain ticket to its list representation.
func NewTicketSummary(t *domain.Ticket) TicketSummary {
	return TicketSummary{
		ID:          t.ID,
		TicketUID:   t.TicketUID,
		Title:       t.Title,
		Status:      t.Status,
		Priority:    t.Priority,
		Severity:    t.Severity,
		Category:    t.Category,
		SLABreachAt: t.SLABreachAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTicketSummaries maps a slice of tickets.
func NewTicketSummaries(tickets []domain.Ticket) []TicketSummary {
	items := make([]TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, NewTicketSummary(&tickets[i]))
	}
	return items
}

// NewTicketDetail maps a domain ticket to its detail representation.
func NewTicketDetail(t *domain.Ticket) TicketDetailResponse {
	attachments := make([]AttachmentResponse, 0, len(t.Attachments))
	for _, att := range t.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:         att.ID,
			FilePath:   att.FilePath,
			FileName:   att.FileName,
			UploadedAt: att.UploadedAt,
		})
	}
	var feedback *FeedbackResponse
	if t.Feedback != nil {
		feedback = &FeedbackResponse{
			Rating:    t.Feedback.Rating,
			Comment:   t.Feedback.Comment,
			CreatedAt: t.Feedback.CreatedAt,
		}
	}
	return TicketDetailResponse{
		ID:               t.ID,
		TicketUID:        t.TicketUID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           t.Status,
		Priority:         t.Priority,
		Severity:         t.Severity,
		Category:         t.Category,
		SubCategory:      t.SubCategory,
		SLADurationHours: t.SLADurationHours,
		SLABreachAt:      t.SLABreachAt,
		OwnerID:          t.OwnerID,
		CreatedByID:      t.CreatedByID,
		AssignedByID:     t.AssignedByID,
		AssigneeIDs:      t.AssigneeIDs,
		Attachments:      attachments,
		Feedback:         feedback,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
		ResolvedAt:       t.ResolvedAt,
	}
}

// NewActivityResponses maps activity log entries.
func NewActivityResponses(logs []domain.TicketActivity) []ActivityResponse {
	items := make([]ActivityResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, ActivityResponse{
			ID:           log.ID,
			TicketID:     log.TicketID,
			UserID:       log.UserID,
			ActivityType: log.ActivityType,
			Description:  log.Description,
			InternalOnly: log.InternalOnly,
			CreatedAt:    log.CreatedAt,
		})
	}
	return items
}
