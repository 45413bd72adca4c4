package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domain "file-manager-api/internal/domain/user"
)

type fakeSessionStore struct {
	tokens map[string]domain.UUID
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{tokens: map[string]domain.UUID{}}
}

func (f *fakeSessionStore) Create(ctx context.Context, userID domain.UUID) (string, error) {
	token := "tok-" + userID.String()
	f.tokens[token] = userID
	return token, nil
}

func (f *fakeSessionStore) Resolve(ctx context.Context, token string) (domain.UUID, error) {
	return f.tokens[token], nil
}

func (f *fakeSessionStore) Destroy(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeSessionStore) Ping(ctx context.Context) error { return nil }

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	return m
}
