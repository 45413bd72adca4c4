package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/mq"
)

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	stored := &domain.User{
		UUID:         userID,
		Email:        "user@example.com",
		PasswordHash: hashOf(t, "secret"),
	}

	repo := &fakeUserRepo{
		FetchUserByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}

	var createdFor domain.UUID
	sess := &fakeSessions{
		CreateFunc: func(ctx context.Context, uid domain.UUID) (string, error) {
			createdFor = uid
			return "tok-123", nil
		},
	}

	svc := NewAuthService(repo, sess)

	t.Run("valid credentials open a session", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "user@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
		assert.Equal(t, userID, createdFor)
	})

	t.Run("unknown email and wrong password are the same failure", func(t *testing.T) {
		_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret")
		_, errWrongPw := svc.Login(context.Background(), "user@example.com", "wrong")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPw)
	})
}

func TestUserService_Register(t *testing.T) {
	repo := &fakeUserRepo{
		CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			out := req
			out.UUID = uuid.New()
			return &out, nil
		},
	}
	q := newFakeQueue()
	svc := NewUserService(repo, q, testCounter())

	t.Run("stores a digest, never the plaintext", func(t *testing.T) {
		u, err := svc.Register(context.Background(), "user@example.com", "secret")
		require.NoError(t, err)
		require.NotNil(t, u.PasswordHash)
		assert.NotEqual(t, "secret", *u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("secret")))
	})

	t.Run("enqueues a welcome job", func(t *testing.T) {
		u, err := svc.Register(context.Background(), "second@example.com", "secret")
		require.NoError(t, err)

		// drain: one job per successful registration
		var jobs []mq.Job
		for len(q.in) > 0 {
			jobs = append(jobs, <-q.in)
		}
		require.NotEmpty(t, jobs)
		last := jobs[len(jobs)-1]
		assert.Equal(t, mq.JobWelcomeNotification, last.Kind)
		assert.Equal(t, u.UUID.String(), last.UserID)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "", "secret")
		assert.ErrorIs(t, err, ErrMissingEmail)
		_, err = svc.Register(context.Background(), "user@example.com", "")
		assert.ErrorIs(t, err, ErrMissingPassword)
	})
}
