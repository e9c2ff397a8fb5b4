package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/repository"
	"github.com/teleassist/ticketing-service/pkg/util"
)

// TeamService manages team rosters. Only the lead of a team may change
// its membership, and a user belongs to at most one team.
type TeamService struct {
	teams repository.TeamRepository
	users repository.UserRepository
	tx    repository.TxRunner
}

func NewTeamService(teams repository.TeamRepository, users repository.UserRepository, tx repository.TxRunner) *TeamService {
	return &TeamService{teams: teams, users: users, tx: tx}
}

// GetOwnTeam resolves the acting lead's team with its members.
func (s *TeamService) GetOwnTeam(ctx context.Context, actor *domain.User) (*domain.Team, []domain.User, error) {
	team, err := s.leadTeam(ctx, actor)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.users.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, nil, util.ToDomainError(err)
	}
	return team, members, nil
}

// AddMember places an engineer on the lead's team. Rejects users already
// rostered elsewhere.
func (s *TeamService) AddMember(ctx context.Context, actor *domain.User, userID int64) error {
	team, err := s.leadTeam(ctx, actor)
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		userRepo := s.users.WithTx(tx)
		user, err := userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.TeamID != nil {
			if *user.TeamID == team.ID {
				return util.NewBadRequest(user.FullName + " is already a member of your team")
			}
			return util.NewConflict(user.FullName+" already belongs to another team", nil)
		}
		if !assigneeEligible(*user) {
			return util.NewBadRequest(user.FullName + " cannot be rostered on an engineering team")
		}
		user.TeamID = &team.ID
		return userRepo.Update(ctx, user)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("User", nil)
		}
		return util.ToDomainError(err)
	}
	return nil
}

// RemoveMember drops an engineer from the lead's team.
func (s *TeamService) RemoveMember(ctx context.Context, actor *domain.User, userID int64) error {
	team, err := s.leadTeam(ctx, actor)
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(tx pgx.Tx) error {
		userRepo := s.users.WithTx(tx)
		user, err := userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.TeamID == nil || *user.TeamID != team.ID {
			return util.NewBadRequest(user.FullName + " is not a member of your team")
		}
		user.TeamID = nil
		return userRepo.Update(ctx, user)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("User", nil)
		}
		return util.ToDomainError(err)
	}
	return nil
}

func (s *TeamService) leadTeam(ctx context.Context, actor *domain.User) (*domain.Team, error) {
	team, err := s.teams.GetByLead(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewBadRequest("No team found for this lead")
		}
		return nil, util.ToDomainError(err)
	}
	return team, nil
}
