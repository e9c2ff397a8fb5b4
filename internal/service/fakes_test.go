package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teleassist/ticketing-service/internal/domain"
	"github.com/teleassist/ticketing-service/internal/repository"
)

// fakeTxRunner invokes the function directly; the fakes below ignore the
// transaction handle.
type fakeTxRunner struct{}

func (fakeTxRunner) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeTicketRepo struct {
	tickets   map[int64]*domain.Ticket
	nextID    int64
	volume    []repository.VolumePoint
	avgHours  float64
	searchLog []repository.TicketCriteria
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[int64]*domain.Ticket), nextID: 1}
}

func (r *fakeTicketRepo) WithTx(tx pgx.Tx) repository.TicketRepository { return r }

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	ticket.ID = r.nextID
	r.nextID++
	ticket.TicketUID = domain.TicketUID(ticket.ID)
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	stored := *ticket
	stored.AssigneeIDs = append([]int64{}, ticket.AssigneeIDs...)
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *ticket
	stored.AssigneeIDs = append([]int64{}, r.tickets[ticket.ID].AssigneeIDs...)
	stored.UpdatedAt = time.Now()
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	stored, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *stored
	copied.AssigneeIDs = append([]int64{}, stored.AssigneeIDs...)
	return &copied, nil
}

func (r *fakeTicketRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ticket, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTicketRepo) GetByUID(ctx context.Context, uid string) (*domain.Ticket, error) {
	for _, t := range r.tickets {
		if t.TicketUID == uid {
			return r.GetByID(ctx, t.ID)
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTicketRepo) ReplaceAssignees(ctx context.Context, ticketID int64, userIDs []int64) error {
	stored, ok := r.tickets[ticketID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.AssigneeIDs = append([]int64{}, userIDs...)
	return nil
}

func (r *fakeTicketRepo) ListByStatusIn(ctx context.Context, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.filter(func(t *domain.Ticket) bool {
		return statusIn(t.Status, statuses)
	}), nil
}

func (r *fakeTicketRepo) ListByOwnerAndStatusIn(ctx context.Context, ownerID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.filter(func(t *domain.Ticket) bool {
		return t.OwnerID == ownerID && statusIn(t.Status, statuses)
	}), nil
}

func (r *fakeTicketRepo) ListByCreatorAndStatusIn(ctx context.Context, creatorID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.filter(func(t *domain.Ticket) bool {
		return t.CreatedByID == creatorID && statusIn(t.Status, statuses)
	}), nil
}

func (r *fakeTicketRepo) ListByAssigneeAndStatusIn(ctx context.Context, userID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.filter(func(t *domain.Ticket) bool {
		if !statusIn(t.Status, statuses) {
			return false
		}
		for _, id := range t.AssigneeIDs {
			if id == userID {
				return true
			}
		}
		return false
	}), nil
}

func (r *fakeTicketRepo) ListByTeamAndStatusIn(ctx context.Context, teamID int64, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	return r.filter(func(t *domain.Ticket) bool {
		return statusIn(t.Status, statuses)
	}), nil
}

func (r *fakeTicketRepo) ListSLARiskByTeam(ctx context.Context, teamID int64) ([]domain.Ticket, error) {
	now := time.Now()
	return r.filter(func(t *domain.Ticket) bool {
		return t.SLABreachAt != nil && t.SLABreachAt.After(now) && t.SLABreachAt.Before(now.Add(2*time.Hour))
	}), nil
}

func (r *fakeTicketRepo) Search(ctx context.Context, criteria repository.TicketCriteria) ([]domain.Ticket, error) {
	r.searchLog = append(r.searchLog, criteria)
	if len(criteria.Statuses) == 0 {
		return r.filter(func(t *domain.Ticket) bool { return true }), nil
	}
	return r.filter(func(t *domain.Ticket) bool {
		return statusIn(t.Status, criteria.Statuses)
	}), nil
}

func (r *fakeTicketRepo) VolumeByDay(ctx context.Context, since time.Time) ([]repository.VolumePoint, error) {
	return r.volume, nil
}

func (r *fakeTicketRepo) AverageResolutionHours(ctx context.Context, since time.Time) (float64, error) {
	return r.avgHours, nil
}

func (r *fakeTicketRepo) filter(keep func(*domain.Ticket) bool) []domain.Ticket {
	var out []domain.Ticket
	for id := int64(1); id < r.nextID; id++ {
		t, ok := r.tickets[id]
		if ok && keep(t) {
			copied := *t
			copied.AssigneeIDs = append([]int64{}, t.AssigneeIDs...)
			out = append(out, copied)
		}
	}
	return out
}

func statusIn(status domain.TicketStatus, statuses []domain.TicketStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) WithTx(tx pgx.Tx) repository.UserRepository { return r }

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = int64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	seen := make(map[int64]bool)
	var out []domain.User
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListByTeam(ctx context.Context, teamID int64) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.TeamID != nil && *u.TeamID == teamID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	teams map[int64]*domain.Team
}

func newFakeTeamRepo(teams ...*domain.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{teams: make(map[int64]*domain.Team)}
	for _, team := range teams {
		r.teams[team.ID] = team
	}
	return r
}

func (r *fakeTeamRepo) WithTx(tx pgx.Tx) repository.TeamRepository { return r }

func (r *fakeTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	team.ID = int64(len(r.teams) + 1)
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return team, nil
}

func (r *fakeTeamRepo) GetByLead(ctx context.Context, leadID int64) (*domain.Team, error) {
	for _, team := range r.teams {
		if team.LeadID == leadID {
			return team, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTeamRepo) ListAll(ctx context.Context) ([]domain.Team, error) {
	var out []domain.Team
	for _, team := range r.teams {
		out = append(out, *team)
	}
	return out, nil
}

type fakeActivityRepo struct {
	entries []domain.TicketActivity
	nextID  int64
	failing bool
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{nextID: 1}
}

var errActivityWrite = pgx.ErrTxClosed

func (r *fakeActivityRepo) WithTx(tx pgx.Tx) repository.ActivityRepository { return r }

func (r *fakeActivityRepo) Create(ctx context.Context, activity *domain.TicketActivity) error {
	if r.failing {
		return errActivityWrite
	}
	activity.ID = r.nextID
	r.nextID++
	activity.CreatedAt = time.Now()
	r.entries = append(r.entries, *activity)
	return nil
}

func (r *fakeActivityRepo) ListByTicket(ctx context.Context, ticketID int64) ([]domain.TicketActivity, error) {
	return r.list(func(a domain.TicketActivity) bool { return a.TicketID == ticketID }), nil
}

func (r *fakeActivityRepo) ListPublicByTicket(ctx context.Context, ticketID int64) ([]domain.TicketActivity, error) {
	return r.list(func(a domain.TicketActivity) bool {
		return a.TicketID == ticketID && !a.InternalOnly
	}), nil
}

func (r *fakeActivityRepo) ListPublicForOwner(ctx context.Context, ownerID int64) ([]domain.TicketActivity, error) {
	return r.list(func(a domain.TicketActivity) bool { return !a.InternalOnly }), nil
}

func (r *fakeActivityRepo) ListPublicForCreator(ctx context.Context, creatorID int64) ([]domain.TicketActivity, error) {
	return r.list(func(a domain.TicketActivity) bool { return !a.InternalOnly }), nil
}

func (r *fakeActivityRepo) ListByTypes(ctx context.Context, types []domain.ActivityType) ([]domain.TicketActivity, error) {
	return r.list(func(a domain.TicketActivity) bool {
		for _, t := range types {
			if a.ActivityType == t {
				return true
			}
		}
		return false
	}), nil
}

// list returns matches newest first, mirroring the SQL ordering.
func (r *fakeActivityRepo) list(keep func(domain.TicketActivity) bool) []domain.TicketActivity {
	var out []domain.TicketActivity
	for i := len(r.entries) - 1; i >= 0; i-- {
		if keep(r.entries[i]) {
			out = append(out, r.entries[i])
		}
	}
	return out
}

func (r *fakeActivityRepo) forTicket(ticketID int64) []domain.TicketActivity {
	var out []domain.TicketActivity
	for _, a := range r.entries {
		if a.TicketID == ticketID {
			out = append(out, a)
		}
	}
	return out
}

type fakeFeedbackRepo struct {
	byTicket map[int64]*domain.Feedback
	buckets  []repository.RatingBucket
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{byTicket: make(map[int64]*domain.Feedback)}
}

func (r *fakeFeedbackRepo) WithTx(tx pgx.Tx) repository.FeedbackRepository { return r }

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *domain.Feedback) error {
	if _, ok := r.byTicket[feedback.TicketID]; ok {
		return pgx.ErrTxClosed
	}
	feedback.ID = int64(len(r.byTicket) + 1)
	feedback.CreatedAt = time.Now()
	r.byTicket[feedback.TicketID] = feedback
	return nil
}

func (r *fakeFeedbackRepo) GetByTicket(ctx context.Context, ticketID int64) (*domain.Feedback, error) {
	feedback, ok := r.byTicket[ticketID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return feedback, nil
}

func (r *fakeFeedbackRepo) SatisfactionDistribution(ctx context.Context) ([]repository.RatingBucket, error) {
	return r.buckets, nil
}
