package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// RatingBucket is one row of the satisfaction distribution.
type RatingBucket struct {
	Rating int
	Count  int64
}

// FeedbackRepository stores customer feedback, one record per ticket.
type FeedbackRepository interface {
	WithTx(tx pgx.Tx) FeedbackRepository
	Create(ctx context.Context, feedback *domain.Feedback) error
	GetByTicket(ctx context.Context, ticketID int64) (*domain.Feedback, error)
	SatisfactionDistribution(ctx context.Context) ([]RatingBucket, error)
}

type feedbackRepository struct {
	db DB
}

// NewFeedbackRepository instantiates repository.
func NewFeedbackRepository(db DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) WithTx(tx pgx.Tx) FeedbackRepository {
	return &feedbackRepository{db: tx}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (ticket_id, rating, comment)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		feedback.TicketID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) GetByTicket(ctx context.Context, ticketID int64) (*domain.Feedback, error) {
	var feedback domain.Feedback
	if err := r.db.QueryRow(ctx,
		`SELECT id, ticket_id, rating, comment, created_at FROM feedback WHERE ticket_id=$1`,
		ticketID,
	).Scan(&feedback.ID, &feedback.TicketID, &feedback.Rating, &feedback.Comment, &feedback.CreatedAt); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// SatisfactionDistribution returns rating buckets ascending by rating.
func (r *feedbackRepository) SatisfactionDistribution(ctx context.Context) ([]RatingBucket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rating, COUNT(*) FROM feedback GROUP BY rating ORDER BY rating`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RatingBucket
	for rows.Next() {
		var bucket RatingBucket
		if err := rows.Scan(&bucket.Rating, &bucket.Count); err != nil {
			return nil, err
		}
		result = append(result, bucket)
	}
	return result, rows.Err()
}
