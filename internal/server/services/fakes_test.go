package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/users"
)

// --- hand-written fakes wired through a fake repository manager ---

type fakeUsersRepo struct {
	createIn  *models.User
	createOut *models.User
	createErr error

	getByNameOut *models.User
	getByNameErr error

	getByIDOut *models.User
	getByIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createIn = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	if f.getByNameErr != nil {
		return nil, f.getByNameErr
	}
	return f.getByNameOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

type fakeSessionsRepo struct {
	created   *models.Session
	createErr error

	getOut *models.Session
	getErr error

	deleted   []string
	deleteErr error

	expiredForUserCalls int
	expiredCalls        int
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *models.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = s
	return nil
}

func (f *fakeSessionsRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSessionsRepo) DeleteExpiredForUser(ctx context.Context, userID int64, now time.Time) error {
	f.expiredForUserCalls++
	return nil
}

func (f *fakeSessionsRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	f.expiredCalls++
	return nil
}

type fakeTasksRepo struct {
	createIn  *models.Task
	createErr error

	listOut   []models.Task
	listErr   error
	listOrder tasks.SortOrder

	lastDelta  int
	mutateErr  error
	deletedIDs []int64
}

func (f *fakeTasksRepo) ListByUser(ctx context.Context, userID int64, order tasks.SortOrder) ([]models.Task, error) {
	f.listOrder = order
	return f.listOut, f.listErr
}

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	f.createIn = t
	if f.createErr != nil {
		return nil, f.createErr
	}
	t.ID = 1
	return t, nil
}

func (f *fakeTasksRepo) ToggleComplete(ctx context.Context, userID, taskID int64) error {
	return f.mutateErr
}

func (f *fakeTasksRepo) AdjustPriority(ctx context.Context, userID, taskID int64, delta int) error {
	f.lastDelta = delta
	return f.mutateErr
}

func (f *fakeTasksRepo) Delete(ctx context.Context, userID, taskID int64) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deletedIDs = append(f.deletedIDs, taskID)
	return nil
}

type fakeManager struct {
	users    users.Repository
	sessions sessions.Repository
	tasks    tasks.Repository
}

func (m *fakeManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *fakeManager) Sessions(db dbx.DBTX) sessions.Repository            { return m.sessions }
func (m *fakeManager) Tasks(db dbx.DBTX) tasks.Repository                  { return m.tasks }
