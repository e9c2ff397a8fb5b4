package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
)

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	WithTx(tx pgx.Tx) TeamRepository
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	GetByLead(ctx context.Context, leadID int64) (*domain.Team, error)
	ListAll(ctx context.Context) ([]domain.Team, error)
}

type teamRepository struct {
	db DB
}

// NewTeamRepository constructs repository.
func NewTeamRepository(db DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) WithTx(tx pgx.Tx) TeamRepository {
	return &teamRepository{db: tx}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (name, lead_id)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, team.Name, team.LeadID).
		Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	return r.fetchSingle(ctx, `SELECT id, name, lead_id, created_at, updated_at FROM teams WHERE id=$1`, id)
}

func (r *teamRepository) GetByLead(ctx context.Context, leadID int64) (*domain.Team, error) {
	return r.fetchSingle(ctx, `SELECT id, name, lead_id, created_at, updated_at FROM teams WHERE lead_id=$1`, leadID)
}

func (r *teamRepository) ListAll(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, lead_id, created_at, updated_at FROM teams ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.LeadID, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}

func (r *teamRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Team, error) {
	var team domain.Team
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&team.ID,
		&team.Name,
		&team.LeadID,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &team, nil
}
