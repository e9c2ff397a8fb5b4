package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/events"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/internal/sla"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// TicketService coordinates the ticket lifecycle: creation, triage,
// engineer updates, team-lead reassignment, and customer feedback.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	teams      repository.TeamRepository
	activities repository.ActivityRepository
	feedback   repository.FeedbackRepository
	tx         repository.TxRunner
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	UserRepo     repository.UserRepository
	TeamRepo     repository.TeamRepository
	ActivityRepo repository.ActivityRepository
	FeedbackRepo repository.FeedbackRepository
	TxRunner     repository.TxRunner
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		teams:      deps.TeamRepo,
		activities: deps.ActivityRepo,
		feedback:   deps.FeedbackRepo,
		tx:         deps.TxRunner,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// AttachmentInput describes an uploaded file reference.
type AttachmentInput struct {
	FilePath string
	FileName string
}

// TicketCreateInput describes ticket creation payload. OwnerID is set
// only when an agent files the ticket on a customer's behalf.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    string
	SubCategory string
	OwnerID     int64
	Attachments []AttachmentInput
}

// TriageInput carries the triage officer's classification decision.
type TriageInput struct {
	Priority    domain.TicketPriority
	Severity    domain.TicketSeverity
	AssigneeIDs []int64
}

// EngineerUpdateInput carries an engineer's progress update.
type EngineerUpdateInput struct {
	Comment   string
	NewStatus *domain.TicketStatus
}

// ReassignInput carries a team lead's reassignment decision.
type ReassignInput struct {
	NewAssigneeIDs []int64
}

// FeedbackInput carries the customer's rating for a fixed ticket.
type FeedbackInput struct {
	Rating  int
	Comment string
}

var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusCreated:       {domain.TicketStatusNeedsTriaging, domain.TicketStatusAssigned},
	domain.TicketStatusNeedsTriaging: {domain.TicketStatusAssigned},
	domain.TicketStatusReopened:      {domain.TicketStatusAssigned},
	domain.TicketStatusAssigned:      {domain.TicketStatusInProgress, domain.TicketStatusFixed},
	domain.TicketStatusInProgress:    {domain.TicketStatusFixed},
	domain.TicketStatusFixed:         {domain.TicketStatusResolved, domain.TicketStatusReopened},
	domain.TicketStatusResolved:      {},
}

func isValidTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// engineerStatuses are the only targets an engineer may move a ticket to.
var engineerStatuses = map[domain.TicketStatus]bool{
	domain.TicketStatusInProgress: true,
	domain.TicketStatusFixed:      true,
}

func validPriority(priority domain.TicketPriority) bool {
	switch priority {
	case domain.TicketPriorityLow,
		domain.TicketPriorityMedium,
		domain.TicketPriorityHigh,
		domain.TicketPriorityUrgent:
		return true
	}
	return false
}

func validSeverity(severity domain.TicketSeverity) bool {
	switch severity {
	case domain.TicketSeverityTrivial,
		domain.TicketSeverityMinor,
		domain.TicketSeverityMajor,
		domain.TicketSeverityCritical:
		return true
	}
	return false
}

// CreateTicket files a new ticket. Customers file for themselves; agents
// may file on behalf of a customer by passing the customer's id.
func (s *TicketService) CreateTicket(ctx context.Context, actor *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, util.NewValidationError("title is required", nil)
	}

	ownerID := actor.ID
	if input.OwnerID != 0 && input.OwnerID != actor.ID {
		if !actor.HasRole(domain.RoleAgent) {
			return nil, util.NewForbidden("only agents can create tickets on behalf of a customer")
		}
		owner, err := s.users.GetByID(ctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, util.NewNotFound("User", nil)
			}
			return nil, util.ToDomainError(err)
		}
		if !owner.HasRole(domain.RoleCustomer) {
			return nil, util.NewBadRequest("tickets can only be created for customers")
		}
		ownerID = owner.ID
	}

	ticket := &domain.Ticket{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      domain.TicketStatusCreated,
		Category:    strings.TrimSpace(input.Category),
		SubCategory: strings.TrimSpace(input.SubCategory),
		OwnerID:     ownerID,
		CreatedByID: actor.ID,
	}
	for _, att := range input.Attachments {
		ticket.Attachments = append(ticket.Attachments, domain.Attachment{
			FilePath: att.FilePath,
			FileName: att.FileName,
		})
	}

	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.tickets.WithTx(tx).Create(ctx, ticket); err != nil {
			return err
		}
		return s.activities.WithTx(tx).Create(ctx, &domain.TicketActivity{
			TicketID:     ticket.ID,
			UserID:       actor.ID,
			ActivityType: domain.ActivityCreation,
			Description:  "Ticket created",
			InternalOnly: false,
		})
	})
	if err != nil {
		return nil, util.ToDomainError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketCreated,
		TicketID:  ticket.ID,
		TicketUID: ticket.TicketUID,
		ActorID:   actor.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			OwnerID:  ticket.OwnerID,
			Category: ticket.Category,
		},
	})
	return ticket, nil
}

// Triage classifies a pending ticket and assigns engineers. Sets the SLA
// deadline from the chosen severity and moves the ticket to ASSIGNED.
func (s *TicketService) Triage(ctx context.Context, actor *domain.User, ticketID int64, input TriageInput) (*domain.Ticket, error) {
	if len(input.AssigneeIDs) == 0 {
		return nil, util.NewValidationError("at least one assignee is required", nil)
	}
	if !validPriority(input.Priority) {
		return nil, util.NewBadRequest("unknown priority: " + string(input.Priority))
	}
	if !validSeverity(input.Severity) {
		return nil, util.NewBadRequest("unknown severity: " + string(input.Severity))
	}

	var ticket *domain.Ticket
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		ticketRepo := s.tickets.WithTx(tx)
		t, err := ticketRepo.GetByIDForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		if !t.Status.IsPendingTriage() {
			return util.NewInvalidState("Ticket is not in a state that can be triaged")
		}

		assignees, err := s.users.WithTx(tx).ListByIDs(ctx, input.AssigneeIDs)
		if err != nil {
			return err
		}
		if len(assignees) != len(uniqueIDs(input.AssigneeIDs)) {
			return util.NewNotFoundMessage("One or more specified engineers could not be found")
		}
		for _, assignee := range assignees {
			if !assigneeEligible(assignee) {
				return util.NewBadRequest(fmt.Sprintf("%s cannot be assigned tickets", assignee.FullName))
			}
		}

		now := time.Now()
		hours := sla.DurationHours(input.Severity)
		breachAt := sla.BreachAt(now, input.Severity)
		t.Priority = input.Priority
		t.Severity = input.Severity
		t.SLADurationHours = &hours
		t.SLABreachAt = &breachAt
		t.Status = domain.TicketStatusAssigned
		t.AssignedByID = &actor.ID

		if err := ticketRepo.Update(ctx, t); err != nil {
			return err
		}
		if err := ticketRepo.ReplaceAssignees(ctx, t.ID, input.AssigneeIDs); err != nil {
			return err
		}
		t.AssigneeIDs = append([]int64{}, input.AssigneeIDs...)

		activityRepo := s.activities.WithTx(tx)
		if err := activityRepo.Create(ctx, &domain.TicketActivity{
			TicketID:     t.ID,
			UserID:       actor.ID,
			ActivityType: domain.ActivityPriorityChange,
			Description:  fmt.Sprintf("Priority changed to %s, severity set to %s", t.Priority, t.Severity),
			InternalOnly: false,
		}); err != nil {
			return err
		}
		if err := activityRepo.Create(ctx, &domain.TicketActivity{
			TicketID:     t.ID,
			UserID:       actor.ID,
			ActivityType: domain.ActivityAssignment,
			Description:  "Assigned to " + joinFullNames(assignees),
			InternalOnly: true,
		}); err != nil {
			return err
		}

		ticket = t
		return nil
	})
	if err != nil {
		return nil, mapTicketErr(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketTriaged,
		TicketID:  ticket.ID,
		TicketUID: ticket.TicketUID,
		ActorID:   actor.ID,
		Payload: events.TicketTriagedPayload{
			Priority:    ticket.Priority,
			Severity:    ticket.Severity,
			AssigneeIDs: ticket.AssigneeIDs,
			SLABreachAt: *ticket.SLABreachAt,
		},
	})
	return ticket, nil
}

// UpdateTicket records an engineer's progress: an optional comment and an
// optional status move to IN_PROGRESS or FIXED. The comment is logged
// before the status change.
func (s *TicketService) UpdateTicket(ctx context.Context, actor *domain.User, ticketID int64, input EngineerUpdateInput) (*domain.Ticket, error) {
	comment := strings.TrimSpace(input.Comment)
	if comment == "" && input.NewStatus == nil {
		return nil, util.NewValidationError("a comment or a status change is required", nil)
	}

	var ticket *domain.Ticket
	var oldStatus domain.TicketStatus
	statusChanged := false

	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		ticketRepo := s.tickets.WithTx(tx)
		t, err := ticketRepo.GetByIDForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		oldStatus = t.Status

		activityRepo := s.activities.WithTx(tx)
		if comment != "" {
			if err := activityRepo.Create(ctx, &domain.TicketActivity{
				TicketID:     t.ID,
				UserID:       actor.ID,
				ActivityType: domain.ActivityComment,
				Description:  comment,
				InternalOnly: false,
			}); err != nil {
				return err
			}
		}

		if input.NewStatus != nil && *input.NewStatus != t.Status {
			next := *input.NewStatus
			if !engineerStatuses[next] || !isValidTransition(t.Status, next) {
				return util.NewInvalidState(fmt.Sprintf("cannot change status from %s to %s", t.Status, next))
			}
			t.Status = next
			if err := ticketRepo.Update(ctx, t); err != nil {
				return err
			}
			if err := activityRepo.Create(ctx, &domain.TicketActivity{
				TicketID:     t.ID,
				UserID:       actor.ID,
				ActivityType: domain.ActivityStatusChange,
				Description:  fmt.Sprintf("Status changed from %s to %s", oldStatus, next),
				InternalOnly: false,
			}); err != nil {
				return err
			}
			statusChanged = true
		}

		ticket = t
		return nil
	})
	if err != nil {
		return nil, mapTicketErr(err)
	}

	if statusChanged {
		s.publishEvent(ctx, events.Event{
			Type:      events.EventTicketStatusChanged,
			TicketID:  ticket.ID,
			TicketUID: ticket.TicketUID,
			ActorID:   actor.ID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
				Comment:   comment,
			},
		})
	}
	return ticket, nil
}

// Reassign moves a ticket to a different set of engineers, all of whom
// must belong to the acting team lead's team. The current assignees must
// also belong to that team.
func (s *TicketService) Reassign(ctx context.Context, actor *domain.User, ticketID int64, input ReassignInput) (*domain.Ticket, error) {
	if len(input.NewAssigneeIDs) == 0 {
		return nil, util.NewValidationError("at least one assignee is required", nil)
	}

	team, err := s.teams.GetByLead(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewBadRequest("No team found for this lead")
		}
		return nil, util.ToDomainError(err)
	}

	var ticket *domain.Ticket
	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		ticketRepo := s.tickets.WithTx(tx)
		userRepo := s.users.WithTx(tx)

		t, err := ticketRepo.GetByIDForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}

		current, err := userRepo.ListByIDs(ctx, t.AssigneeIDs)
		if err != nil {
			return err
		}
		for _, member := range current {
			if !inTeam(member, team.ID) {
				return util.NewForbidden("You can only reassign tickets within your own team.")
			}
		}

		next, err := userRepo.ListByIDs(ctx, input.NewAssigneeIDs)
		if err != nil {
			return err
		}
		if len(next) != len(uniqueIDs(input.NewAssigneeIDs)) {
			return util.NewNotFoundMessage("One or more specified engineers could not be found")
		}
		for _, member := range next {
			if !inTeam(member, team.ID) {
				return util.NewBadRequest(fmt.Sprintf("%s is not a member of your team", member.FullName))
			}
		}

		if err := ticketRepo.ReplaceAssignees(ctx, t.ID, input.NewAssigneeIDs); err != nil {
			return err
		}
		t.AssigneeIDs = append([]int64{}, input.NewAssigneeIDs...)
		t.AssignedByID = &actor.ID
		if err := ticketRepo.Update(ctx, t); err != nil {
			return err
		}

		if err := s.activities.WithTx(tx).Create(ctx, &domain.TicketActivity{
			TicketID:     t.ID,
			UserID:       actor.ID,
			ActivityType: domain.ActivityAssignment,
			Description:  "Re-assigned to " + joinFullNames(next),
			InternalOnly: true,
		}); err != nil {
			return err
		}

		ticket = t
		return nil
	})
	if err != nil {
		return nil, mapTicketErr(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketReassigned,
		TicketID:  ticket.ID,
		TicketUID: ticket.TicketUID,
		ActorID:   actor.ID,
		Payload: events.TicketReassignedPayload{
			TeamID:      team.ID,
			AssigneeIDs: ticket.AssigneeIDs,
		},
	})
	return ticket, nil
}

// AddFeedback records the customer's verdict on a fixed ticket. A rating
// above the negative threshold resolves the ticket; at or below it the
// ticket reopens and returns to the triage queue.
func (s *TicketService) AddFeedback(ctx context.Context, actor *domain.User, ticketID int64, input FeedbackInput) (*domain.Ticket, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, util.NewValidationError("rating must be between 1 and 5", nil)
	}

	var ticket *domain.Ticket
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		ticketRepo := s.tickets.WithTx(tx)
		t, err := ticketRepo.GetByIDForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		if t.Status != domain.TicketStatusFixed {
			return util.NewInvalidState(fmt.Sprintf("Feedback can only be added when the ticket is %s", domain.TicketStatusFixed))
		}
		if !canGiveFeedback(actor, t) {
			return util.NewForbidden("You are not authorized to add feedback to this ticket.")
		}

		feedback := &domain.Feedback{
			TicketID: t.ID,
			Rating:   input.Rating,
			Comment:  strings.TrimSpace(input.Comment),
		}
		if err := s.feedback.WithTx(tx).Create(ctx, feedback); err != nil {
			return err
		}

		activityRepo := s.activities.WithTx(tx)
		if feedback.IsNegative() {
			t.Status = domain.TicketStatusReopened
			if err := activityRepo.Create(ctx, &domain.TicketActivity{
				TicketID:     t.ID,
				UserID:       actor.ID,
				ActivityType: domain.ActivityReopened,
				Description:  fmt.Sprintf("Ticket reopened after negative feedback (rating %d)", input.Rating),
				InternalOnly: false,
			}); err != nil {
				return err
			}
		} else {
			now := time.Now()
			t.Status = domain.TicketStatusResolved
			t.ResolvedAt = &now
			if err := activityRepo.Create(ctx, &domain.TicketActivity{
				TicketID:     t.ID,
				UserID:       actor.ID,
				ActivityType: domain.ActivityResolution,
				Description:  fmt.Sprintf("Ticket resolved after positive feedback (rating %d)", input.Rating),
				InternalOnly: false,
			}); err != nil {
				return err
			}
		}
		if err := ticketRepo.Update(ctx, t); err != nil {
			return err
		}

		t.Feedback = feedback
		ticket = t
		return nil
	})
	if err != nil {
		return nil, mapTicketErr(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventFeedbackReceived,
		TicketID:  ticket.ID,
		TicketUID: ticket.TicketUID,
		ActorID:   actor.ID,
		Payload: events.FeedbackReceivedPayload{
			Rating:    input.Rating,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// GetTicket fetches a ticket with access control: internal staff see any
// ticket, customers only their own.
func (s *TicketService) GetTicket(ctx context.Context, actor *domain.User, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapTicketErr(err)
	}
	if err := checkViewAccess(actor, ticket); err != nil {
		return nil, err
	}
	if err := s.attachFeedback(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// GetTicketByUID resolves a public ticket reference like TK1042.
func (s *TicketService) GetTicketByUID(ctx context.Context, actor *domain.User, uid string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByUID(ctx, uid)
	if err != nil {
		return nil, mapTicketErr(err)
	}
	if err := checkViewAccess(actor, ticket); err != nil {
		return nil, err
	}
	if err := s.attachFeedback(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// attachFeedback loads the ticket's zero-or-one feedback record onto the
// read-model.
func (s *TicketService) attachFeedback(ctx context.Context, ticket *domain.Ticket) error {
	feedback, err := s.feedback.GetByTicket(ctx, ticket.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return util.ToDomainError(err)
	}
	ticket.Feedback = feedback
	return nil
}

// openStatuses are every status short of RESOLVED.
var openStatuses = []domain.TicketStatus{
	domain.TicketStatusCreated,
	domain.TicketStatusNeedsTriaging,
	domain.TicketStatusAssigned,
	domain.TicketStatusInProgress,
	domain.TicketStatusFixed,
	domain.TicketStatusReopened,
}

// ListOwnerActiveTickets lists a customer's unresolved tickets.
func (s *TicketService) ListOwnerActiveTickets(ctx context.Context, ownerID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByOwnerAndStatusIn(ctx, ownerID, openStatuses)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// ListOwnerResolvedTickets lists a customer's resolved tickets.
func (s *TicketService) ListOwnerResolvedTickets(ctx context.Context, ownerID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByOwnerAndStatusIn(ctx, ownerID, []domain.TicketStatus{domain.TicketStatusResolved})
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// ListCreatorActiveTickets lists unresolved tickets an agent filed.
func (s *TicketService) ListCreatorActiveTickets(ctx context.Context, creatorID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByCreatorAndStatusIn(ctx, creatorID, openStatuses)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// ListCreatorResolvedTickets lists resolved tickets an agent filed.
func (s *TicketService) ListCreatorResolvedTickets(ctx context.Context, creatorID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByCreatorAndStatusIn(ctx, creatorID, []domain.TicketStatus{domain.TicketStatusResolved})
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// ListAssignedTickets lists the active tickets assigned to an engineer.
func (s *TicketService) ListAssignedTickets(ctx context.Context, engineerID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByAssigneeAndStatusIn(ctx, engineerID, domain.ActiveStatuses)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// ListTeamTickets lists the active tickets assigned to the lead's team.
func (s *TicketService) ListTeamTickets(ctx context.Context, actor *domain.User) ([]domain.Ticket, error) {
	team, err := s.teams.GetByLead(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewBadRequest("No team found for this lead")
		}
		return nil, util.ToDomainError(err)
	}
	tickets, err := s.tickets.ListByTeamAndStatusIn(ctx, team.ID, domain.ActiveStatuses)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// ListTeamSLARisk lists the lead's team tickets whose SLA deadline is
// inside the risk window.
func (s *TicketService) ListTeamSLARisk(ctx context.Context, actor *domain.User) ([]domain.Ticket, error) {
	team, err := s.teams.GetByLead(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewBadRequest("No team found for this lead")
		}
		return nil, util.ToDomainError(err)
	}
	tickets, err := s.tickets.ListSLARiskByTeam(ctx, team.ID)
	if err != nil {
		return nil, util.ToDomainError(err)
	}
	return tickets, nil
}

// mapTicketErr labels row-absence from ticket fetches as a proper
// not-found before the generic storage mapping runs.
func mapTicketErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return util.NewNotFound("Ticket", nil)
	}
	return util.ToDomainError(err)
}

func checkViewAccess(actor *domain.User, ticket *domain.Ticket) error {
	if actor.IsInternal() {
		return nil
	}
	if ticket.OwnerID == actor.ID || ticket.CreatedByID == actor.ID {
		return nil
	}
	return util.NewForbidden("You are not authorized to view this ticket.")
}

func canGiveFeedback(actor *domain.User, ticket *domain.Ticket) bool {
	if ticket.OwnerID == actor.ID {
		return true
	}
	return actor.HasRole(domain.RoleAgent) && ticket.CreatedByID == actor.ID
}

func assigneeEligible(user domain.User) bool {
	for _, role := range user.Roles {
		if role.IsAssignableEngineer() {
			return true
		}
	}
	return false
}

func inTeam(user domain.User, teamID int64) bool {
	return user.TeamID != nil && *user.TeamID == teamID
}

func joinFullNames(users []domain.User) string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.FullName)
	}
	return strings.Join(names, ", ")
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
