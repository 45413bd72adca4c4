package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
	"file-manager-api/internal/interface/api/rest"
)

type stubUserRepo struct {
	count    int64
	countErr error
}

func (s *stubUserRepo) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return nil, errors.New("not used")
}
func (s *stubUserRepo) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.New("not used")
}
func (s *stubUserRepo) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	return nil, errors.New("not used")
}
func (s *stubUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return s.count, s.countErr
}

type stubFileRepo struct {
	count    int64
	countErr error
}

func (s *stubFileRepo) FetchFileByID(ctx context.Context, uuid file.UUID) (*file.File, error) {
	return nil, errors.New("not used")
}
func (s *stubFileRepo) FetchFiles(ctx context.Context, ownerID user.UUID, parentID file.UUID, page int) (file.Files, error) {
	return nil, errors.New("not used")
}
func (s *stubFileRepo) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	return nil, errors.New("not used")
}
func (s *stubFileRepo) SetVisibility(ctx context.Context, uuid file.UUID, isPublic bool) (*file.File, error) {
	return nil, errors.New("not used")
}
func (s *stubFileRepo) CountFiles(ctx context.Context) (int64, error) {
	return s.count, s.countErr
}

func TestStatsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := &App{logger: zap.NewNop()}

	t.Run("reports both counts", func(t *testing.T) {
		r := gin.New()
		r.GET(rest.RouteStats, a.statsHandler(&stubUserRepo{count: 4}, &stubFileRepo{count: 30}))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, rest.RouteStats, nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]int64
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, map[string]int64{"users": 4, "files": 30}, body)
	})

	t.Run("count failure is a 500", func(t *testing.T) {
		r := gin.New()
		r.GET(rest.RouteStats, a.statsHandler(
			&stubUserRepo{countErr: errors.New("connection reset")},
			&stubFileRepo{},
		))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, rest.RouteStats, nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
