package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// slaRiskWindow is how far ahead of the breach deadline a ticket counts as
// at risk.
const slaRiskWindow = 2 * time.Hour

// TicketCriteria captures the manager search filters. Absent fields
// contribute no constraint; present fields combine with AND.
type TicketCriteria struct {
	Statuses    []domain.TicketStatus
	TeamID      *int64
	City        *string
	SLAAtRisk   bool
	SLABreached bool
}

// VolumePoint is one day of the ticket volume report.
type VolumePoint struct {
	Date  time.Time
	Count int64
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	WithTx(tx pgx.Tx) TicketRepository
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ticket, error)
	GetByUID(ctx context.Context, uid string) (*domain.Ticket, error)
	ReplaceAssignees(ctx context.Context, ticketID int64, userIDs []int64) error
	ListByStatusIn(ctx context.Context, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	ListByOwnerAndStatusIn(ctx context.Context, ownerID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	ListByCreatorAndStatusIn(ctx context.Context, creatorID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	ListByAssigneeAndStatusIn(ctx context.Context, userID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	ListByTeamAndStatusIn(ctx context.Context, teamID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	ListSLARiskByTeam(ctx context.Context, teamID int64) ([]domain.Ticket, error)
	Search(ctx context.Context, criteria TicketCriteria) ([]domain.Ticket, error)
	VolumeByDay(ctx context.Context, since time.Time) ([]VolumePoint, error)
	AverageResolutionHours(ctx context.Context, since time.Time) (float64, error)
}

type ticketRepository struct {
	db DB
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(db DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) WithTx(tx pgx.Tx) TicketRepository {
	return &ticketRepository{db: tx}
}

const ticketColumns = `id, ticket_uid, title, description, status, priority, severity, category, sub_category,
               sla_duration_hours, sla_breach_at, owner_id, created_by_id, assigned_by_id,
               created_at, updated_at, resolved_at`

// Create persists the ticket, stamps the UID once the id is known, and
// stores any attachment references. Runs inside the caller's transaction
// when obtained via WithTx.
func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const insert = `
        INSERT INTO tickets (title, description, status, priority, severity, category, sub_category, owner_id, created_by_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	if err := r.db.QueryRow(ctx, insert,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Severity,
		ticket.Category,
		ticket.SubCategory,
		ticket.OwnerID,
		ticket.CreatedByID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt); err != nil {
		return err
	}

	ticket.TicketUID = domain.TicketUID(ticket.ID)
	if _, err := r.db.Exec(ctx, `UPDATE tickets SET ticket_uid=$1 WHERE id=$2`, ticket.TicketUID, ticket.ID); err != nil {
		return err
	}

	for i := range ticket.Attachments {
		att := &ticket.Attachments[i]
		att.TicketID = ticket.ID
		if err := r.db.QueryRow(ctx,
			`INSERT INTO attachments (ticket_id, file_path, file_name) VALUES ($1,$2,$3) RETURNING id, uploaded_at`,
			att.TicketID, att.FilePath, att.FileName,
		).Scan(&att.ID, &att.UploadedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, status=$3, priority=$4, severity=$5,
            category=$6, sub_category=$7, sla_duration_hours=$8, sla_breach_at=$9,
            assigned_by_id=$10, resolved_at=$11, updated_at=NOW()
        WHERE id=$12`
	cmd, err := r.db.Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Severity,
		ticket.Category,
		ticket.SubCategory,
		ticket.SLADurationHours,
		ticket.SLABreachAt,
		ticket.AssignedByID,
		ticket.ResolvedAt,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return r.fetchSingle(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
}

// GetByIDForUpdate locks the ticket row for the duration of the enclosing
// transaction so racing lifecycle operations serialize instead of losing
// updates.
func (r *ticketRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ticket, error) {
	return r.fetchSingle(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1 FOR UPDATE`, id)
}

func (r *ticketRepository) GetByUID(ctx context.Context, uid string) (*domain.Ticket, error) {
	return r.fetchSingle(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE ticket_uid=$1`, uid)
}

func (r *ticketRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var uid *string
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&ticket.ID,
		&uid,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.Severity,
		&ticket.Category,
		&ticket.SubCategory,
		&ticket.SLADurationHours,
		&ticket.SLABreachAt,
		&ticket.OwnerID,
		&ticket.CreatedByID,
		&ticket.AssignedByID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.ResolvedAt,
	); err != nil {
		return nil, err
	}
	if uid != nil {
		ticket.TicketUID = *uid
	}
	if err := r.loadAssignees(ctx, &ticket); err != nil {
		return nil, err
	}
	if err := r.loadAttachments(ctx, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) loadAssignees(ctx context.Context, ticket *domain.Ticket) error {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM ticket_assignments WHERE ticket_id=$1 ORDER BY user_id`, ticket.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	ticket.AssigneeIDs = ticket.AssigneeIDs[:0]
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return err
		}
		ticket.AssigneeIDs = append(ticket.AssigneeIDs, userID)
	}
	return rows.Err()
}

func (r *ticketRepository) loadAttachments(ctx context.Context, ticket *domain.Ticket) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticket_id, file_path, file_name, uploaded_at FROM attachments WHERE ticket_id=$1 ORDER BY id`, ticket.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	ticket.Attachments = ticket.Attachments[:0]
	for rows.Next() {
		var att domain.Attachment
		if err := rows.Scan(&att.ID, &att.TicketID, &att.FilePath, &att.FileName, &att.UploadedAt); err != nil {
			return err
		}
		ticket.Attachments = append(ticket.Attachments, att)
	}
	return rows.Err()
}

// ReplaceAssignees swaps the join records for a ticket.
func (r *ticketRepository) ReplaceAssignees(ctx context.Context, ticketID int64, userIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM ticket_assignments WHERE ticket_id=$1`, ticketID); err != nil {
		return err
	}
	for _, userID := range userIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO ticket_assignments (ticket_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
			ticketID, userID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *ticketRepository) ListByStatusIn(ctx context.Context, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE status = ANY($1) ORDER BY created_at`, statusStrings(statuses))
}

func (r *ticketRepository) ListByOwnerAndStatusIn(ctx context.Context, ownerID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.list(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE owner_id=$1 AND status = ANY($2) ORDER BY created_at`,
		ownerID, statusStrings(statuses))
}

func (r *ticketRepository) ListByCreatorAndStatusIn(ctx context.Context, creatorID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.list(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE created_by_id=$1 AND status = ANY($2) ORDER BY created_at`,
		creatorID, statusStrings(statuses))
}

func (r *ticketRepository) ListByAssigneeAndStatusIn(ctx context.Context, userID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.list(ctx, `
        SELECT `+ticketColumns+` FROM tickets
        WHERE status = ANY($2)
          AND EXISTS (SELECT 1 FROM ticket_assignments ta WHERE ta.ticket_id = tickets.id AND ta.user_id = $1)
        ORDER BY created_at`,
		userID, statusStrings(statuses))
}

func (r *ticketRepository) ListByTeamAndStatusIn(ctx context.Context, teamID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.list(ctx, `
        SELECT `+ticketColumns+` FROM tickets
        WHERE status = ANY($2)
          AND EXISTS (
              SELECT 1 FROM ticket_assignments ta
              JOIN users u ON u.id = ta.user_id
              WHERE ta.ticket_id = tickets.id AND u.team_id = $1)
        ORDER BY created_at`,
		teamID, statusStrings(statuses))
}

func (r *ticketRepository) ListSLARiskByTeam(ctx context.Context, teamID int64) ([]domain.Ticket, error) {
	now := time.Now()
	return r.list(ctx, `
        SELECT `+ticketColumns+` FROM tickets
        WHERE sla_breach_at IS NOT NULL AND sla_breach_at >= $2 AND sla_breach_at <= $3
          AND EXISTS (
              SELECT 1 FROM ticket_assignments ta
              JOIN users u ON u.id = ta.user_id
              WHERE ta.ticket_id = tickets.id AND u.team_id = $1)
        ORDER BY sla_breach_at`,
		teamID, now, now.Add(slaRiskWindow))
}

// Search composes the manager filter predicates with AND; absent fields
// add no clause.
func (r *ticketRepository) Search(ctx context.Context, criteria TicketCriteria) ([]domain.Ticket, error) {
	base := `SELECT ` + ticketColumns + ` FROM tickets`
	clauses := []string{"1=1"}
	args := []any{}

	if len(criteria.Statuses) > 0 {
		args = append(args, statusStrings(criteria.Statuses))
		clauses = append(clauses, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if criteria.TeamID != nil {
		args = append(args, *criteria.TeamID)
		clauses = append(clauses, fmt.Sprintf(`EXISTS (
            SELECT 1 FROM ticket_assignments ta
            JOIN users u ON u.id = ta.user_id
            WHERE ta.ticket_id = tickets.id AND u.team_id = $%d)`, len(args)))
	}
	if criteria.City != nil && strings.TrimSpace(*criteria.City) != "" {
		args = append(args, strings.TrimSpace(*criteria.City))
		clauses = append(clauses, fmt.Sprintf(`EXISTS (
            SELECT 1 FROM users o WHERE o.id = tickets.owner_id AND o.city = $%d)`, len(args)))
	}
	now := time.Now()
	if criteria.SLAAtRisk {
		args = append(args, now)
		fromIdx := len(args)
		args = append(args, now.Add(slaRiskWindow))
		clauses = append(clauses, fmt.Sprintf("sla_breach_at IS NOT NULL AND sla_breach_at >= $%d AND sla_breach_at <= $%d", fromIdx, len(args)))
	}
	if criteria.SLABreached {
		args = append(args, now)
		clauses = append(clauses, fmt.Sprintf("sla_breach_at IS NOT NULL AND sla_breach_at < $%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at`, base, strings.Join(clauses, " AND "))
	return r.list(ctx, query, args...)
}

// VolumeByDay counts tickets created per calendar day since the cutoff.
// Days without tickets produce no row.
func (r *ticketRepository) VolumeByDay(ctx context.Context, since time.Time) ([]VolumePoint, error) {
	const query = `
        SELECT date_trunc('day', created_at)::date AS day, COUNT(*)
        FROM tickets WHERE created_at >= $1
        GROUP BY day ORDER BY day`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []VolumePoint
	for rows.Next() {
		var point VolumePoint
		if err := rows.Scan(&point.Date, &point.Count); err != nil {
			return nil, err
		}
		result = append(result, point)
	}
	return result, rows.Err()
}

// AverageResolutionHours returns 0.0 when no tickets resolved in the
// window.
func (r *ticketRepository) AverageResolutionHours(ctx context.Context, since time.Time) (float64, error) {
	const query = `
        SELECT AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 3600.0)
        FROM tickets WHERE resolved_at IS NOT NULL AND resolved_at >= $1`
	var avg *float64
	if err := r.db.QueryRow(ctx, query, since).Scan(&avg); err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *ticketRepository) list(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		var uid *string
		if err := rows.Scan(
			&ticket.ID,
			&uid,
			&ticket.Title,
			&ticket.Description,
			&ticket.Status,
			&ticket.Priority,
			&ticket.Severity,
			&ticket.Category,
			&ticket.SubCategory,
			&ticket.SLADurationHours,
			&ticket.SLABreachAt,
			&ticket.OwnerID,
			&ticket.CreatedByID,
			&ticket.AssignedByID,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
			&ticket.ResolvedAt,
		); err != nil {
			return nil, err
		}
		if uid != nil {
			ticket.TicketUID = *uid
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func statusStrings(statuses []domain.TicketStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
