package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// ActivityRepository stores the append-only ticket activity log.
type ActivityRepository interface {
	WithTx(tx pgx.Tx) ActivityRepository
	Create(ctx context.Context, activity *domain.TicketActivity) error
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.TicketActivity, error)
	ListPublicByTicket(ctx context.Context, ticketID int64) ([]domain.TicketActivity, error)
	ListPublicForOwner(ctx context.Context, ownerID int64) ([]domain.TicketActivity, error)
	ListPublicForCreator(ctx context.Context, creatorID int64) ([]domain.TicketActivity, error)
	ListByTypes(ctx context.Context, types []domain.ActivityType) ([]domain.TicketActivity, error)
}

type activityRepository struct {
	db DB
}

// NewActivityRepository instantiates repository.
func NewActivityRepository(db DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) WithTx(tx pgx.Tx) ActivityRepository {
	return &activityRepository{db: tx}
}

const activityColumns = `id, ticket_id, user_id, activity_type, description, internal_only, created_at`

func (r *activityRepository) Create(ctx context.Context, activity *domain.TicketActivity) error {
	const query = `
        INSERT INTO ticket_activities (ticket_id, user_id, activity_type, description, internal_only)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		activity.TicketID,
		activity.UserID,
		activity.ActivityType,
		activity.Description,
		activity.InternalOnly,
	).Scan(&activity.ID, &activity.CreatedAt)
}

func (r *activityRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.TicketActivity, error) {
	return r.list(ctx,
		`SELECT `+activityColumns+` FROM ticket_activities WHERE ticket_id=$1 ORDER BY created_at DESC, id DESC`,
		ticketID)
}

func (r *activityRepository) ListPublicByTicket(ctx context.Context, ticketID int64) ([]domain.TicketActivity, error) {
	return r.list(ctx,
		`SELECT `+activityColumns+` FROM ticket_activities
         WHERE ticket_id=$1 AND internal_only = FALSE ORDER BY created_at DESC, id DESC`,
		ticketID)
}

func (r *activityRepository) ListPublicForOwner(ctx context.Context, ownerID int64) ([]domain.TicketActivity, error) {
	return r.list(ctx, `
        SELECT a.id, a.ticket_id, a.user_id, a.activity_type, a.description, a.internal_only, a.created_at
        FROM ticket_activities a
        JOIN tickets t ON t.id = a.ticket_id
        WHERE t.owner_id=$1 AND a.internal_only = FALSE
        ORDER BY a.created_at DESC, a.id DESC`,
		ownerID)
}

func (r *activityRepository) ListPublicForCreator(ctx context.Context, creatorID int64) ([]domain.TicketActivity, error) {
	return r.list(ctx, `
        SELECT a.id, a.ticket_id, a.user_id, a.activity_type, a.description, a.internal_only, a.created_at
        FROM ticket_activities a
        JOIN tickets t ON t.id = a.ticket_id
        WHERE t.created_by_id=$1 AND a.internal_only = FALSE
        ORDER BY a.created_at DESC, a.id DESC`,
		creatorID)
}

func (r *activityRepository) ListByTypes(ctx context.Context, types []domain.ActivityType) ([]domain.TicketActivity, error) {
	typeStrings := make([]string, 0, len(types))
	for _, t := range types {
		typeStrings = append(typeStrings, string(t))
	}
	return r.list(ctx,
		`SELECT `+activityColumns+` FROM ticket_activities WHERE activity_type = ANY($1) ORDER BY created_at DESC, id DESC`,
		typeStrings)
}

func (r *activityRepository) list(ctx context.Context, query string, args ...any) ([]domain.TicketActivity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketActivity
	for rows.Next() {
		var activity domain.TicketActivity
		if err := rows.Scan(
			&activity.ID,
			&activity.TicketID,
			&activity.UserID,
			&activity.ActivityType,
			&activity.Description,
			&activity.InternalOnly,
			&activity.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, activity)
	}
	return result, rows.Err()
}
