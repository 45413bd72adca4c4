package services

import (
	"context"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	fileDomain "file-manager-api/internal/domain/file"
	userDomain "file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	FetchUserByIDFunc    func(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*userDomain.User, error)
	CreateUserFunc       func(ctx context.Context, req userDomain.User) (*userDomain.User, error)
	CountUsersFunc       func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, uuid userDomain.UUID) (*userDomain.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, uuid)
}
func (f *fakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *fakeUserRepo) CreateUser(ctx context.Context, req userDomain.User) (*userDomain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	if f.CountUsersFunc == nil {
		return 0, errors.New("not used")
	}
	return f.CountUsersFunc(ctx)
}

type fakeFileRepo struct {
	FetchFileByIDFunc func(ctx context.Context, uuid fileDomain.UUID) (*fileDomain.File, error)
	FetchFilesFunc    func(ctx context.Context, ownerID userDomain.UUID, parentID fileDomain.UUID, page int) (fileDomain.Files, error)
	CreateFileFunc    func(ctx context.Context, req *fileDomain.File) (*fileDomain.File, error)
	SetVisibilityFunc func(ctx context.Context, uuid fileDomain.UUID, isPublic bool) (*fileDomain.File, error)
	CountFilesFunc    func(ctx context.Context) (int64, error)
}

func (f *fakeFileRepo) FetchFileByID(ctx context.Context, uuid fileDomain.UUID) (*fileDomain.File, error) {
	if f.FetchFileByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFileByIDFunc(ctx, uuid)
}
func (f *fakeFileRepo) FetchFiles(ctx context.Context, ownerID userDomain.UUID, parentID fileDomain.UUID, page int) (fileDomain.Files, error) {
	if f.FetchFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFilesFunc(ctx, ownerID, parentID, page)
}
func (f *fakeFileRepo) CreateFile(ctx context.Context, req *fileDomain.File) (*fileDomain.File, error) {
	if f.CreateFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFileFunc(ctx, req)
}
func (f *fakeFileRepo) SetVisibility(ctx context.Context, uuid fileDomain.UUID, isPublic bool) (*fileDomain.File, error) {
	if f.SetVisibilityFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SetVisibilityFunc(ctx, uuid, isPublic)
}
func (f *fakeFileRepo) CountFiles(ctx context.Context) (int64, error) {
	if f.CountFilesFunc == nil {
		return 0, errors.New("not used")
	}
	return f.CountFilesFunc(ctx)
}

// fakeBlob keeps blobs in a map and hands out sequential paths.
type fakeBlob struct {
	mu       sync.Mutex
	data     map[string][]byte
	writeErr error
	n        int
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{data: map[string][]byte{}}
}

func (b *fakeBlob) Write(data []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return "", b.writeErr
	}
	b.n++
	path := "/blobs/" + string(rune('a'+b.n-1))
	b.data[path] = data
	return path, nil
}

func (b *fakeBlob) WriteAt(path string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return b.writeErr
	}
	b.data[path] = data
	return nil
}

func (b *fakeBlob) Read(path string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.data[path]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return d, nil
}

func (b *fakeBlob) Exists(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.data[path]
	return ok
}

type fakeQueue struct {
	in chan mq.Job
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{in: make(chan mq.Job, 8)}
}

func (f *fakeQueue) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeQueue) Init() error                                   { return nil }
func (f *fakeQueue) PublisherWorker(ctx context.Context)           {}
func (f *fakeQueue) GetInputChan() chan mq.Job                     { return f.in }
func (f *fakeQueue) GetConn() *amqp091.Connection                  { return nil }

type fakeSessions struct {
	CreateFunc  func(ctx context.Context, userID userDomain.UUID) (string, error)
	ResolveFunc func(ctx context.Context, token string) (userDomain.UUID, error)
	DestroyFunc func(ctx context.Context, token string) error
}

func (f *fakeSessions) Create(ctx context.Context, userID userDomain.UUID) (string, error) {
	if f.CreateFunc == nil {
		return "", errors.New("not used")
	}
	return f.CreateFunc(ctx, userID)
}
func (f *fakeSessions) Resolve(ctx context.Context, token string) (userDomain.UUID, error) {
	if f.ResolveFunc == nil {
		return userDomain.UUID{}, errors.New("not used")
	}
	return f.ResolveFunc(ctx, token)
}
func (f *fakeSessions) Destroy(ctx context.Context, token string) error {
	if f.DestroyFunc == nil {
		return errors.New("not used")
	}
	return f.DestroyFunc(ctx, token)
}
func (f *fakeSessions) Ping(ctx context.Context) error { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}
