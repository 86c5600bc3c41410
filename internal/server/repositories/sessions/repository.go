package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpiredForUser drops this user's sessions that expired before now.
	DeleteExpiredForUser(ctx context.Context, userID int64, now time.Time) error
	// DeleteExpired drops every session that expired before now.
	DeleteExpired(ctx context.Context, now time.Time) error
}
