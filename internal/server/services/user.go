// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and the server-stored
// sessions referenced by the signed session cookie.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/common"
	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/auth"
	"github.com/dmitrijs2005/gotasks/internal/server/config"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username does not exist, so the
// login path costs one bcrypt comparison either way and timing does not
// reveal whether an account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gotasks-dummy"), bcrypt.DefaultCost)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and open a session
// - Resolve: turn a session token back into a user
// - Logout: close a session
type UserService struct {
	db                       *sql.DB
	repomanager              repomanager.RepositoryManager
	jwtSecret                []byte
	sessionValidityDuration  time.Duration
	rememberValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                       db,
		repomanager:              m,
		jwtSecret:                []byte(cfg.SecretKey),
		sessionValidityDuration:  cfg.SessionValidityDuration,
		rememberValidityDuration: cfg.RememberValidityDuration,
	}
}

// Register creates a new user with a bcrypt password hash. A taken username
// yields ErrorAlreadyExists, empty username or password ErrorValidation.
func (s *UserService) Register(ctx context.Context, userName, email, password string) (*models.User, error) {

	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		UserName:     userName,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return u, nil
}

// Login verifies the credentials and, on success, opens a session and
// returns the signed token for the cookie together with its expiry. Unknown
// usernames and wrong passwords are indistinguishable: both yield
// ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userName, password string, remember bool) (string, time.Time, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", time.Time{}, common.ErrorUnauthorized
		}
		return "", time.Time{}, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, common.ErrorUnauthorized
	}

	validity := s.sessionValidityDuration
	if remember {
		validity = s.rememberValidityDuration
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(validity),
	}

	// one commit: drop this user's dead sessions and open the new one
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Sessions(tx)
		if err := repoTx.DeleteExpiredForUser(ctx, user.ID, time.Now()); err != nil {
			return err
		}
		return repoTx.Create(ctx, session)
	})
	if err != nil {
		return "", time.Time{}, common.ErrorInternal
	}

	token, err := auth.GenerateToken(session.ID, s.jwtSecret, validity)
	if err != nil {
		return "", time.Time{}, common.ErrorInternal
	}

	return token, session.ExpiresAt, nil
}

// Resolve maps a session token to its user. Tampered tokens, unknown and
// expired sessions all yield ErrorUnauthorized; an expired session row is
// removed on the way out.
func (s *UserService) Resolve(ctx context.Context, token string) (*models.User, error) {

	sessionID, err := auth.GetSessionIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	sessionRepo := s.repomanager.Sessions(s.db)

	session, err := sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if session.Expired(time.Now()) {
		_ = sessionRepo.Delete(ctx, session.ID)
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Logout closes the session referenced by the token. A token whose session
// is already gone is not an error: logout is idempotent.
func (s *UserService) Logout(ctx context.Context, token string) error {

	sessionID, err := auth.GetSessionIDFromToken(token, s.jwtSecret)
	if err != nil {
		return common.ErrInvalidToken
	}

	if err := s.repomanager.Sessions(s.db).Delete(ctx, sessionID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error deleting session: %v", err)
	}

	return nil
}

// SweepExpiredSessions drops every expired session. Called once at startup;
// stale rows are otherwise rejected lazily in Resolve.
func (s *UserService) SweepExpiredSessions(ctx context.Context) error {
	return s.repomanager.Sessions(s.db).DeleteExpired(ctx, time.Now())
}
