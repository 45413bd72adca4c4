package services

import (
	"context"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/mq"
)

type FileService struct {
	fileRepository domain.Repository
	blob           ports.BlobStore
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	fileRepository domain.Repository,
	blob ports.BlobStore,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		fileRepository: fileRepository,
		blob:           blob,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// CreateFile validates, persists bytes, then commits the catalog record.
// The blob write happens first so a record can never reference bytes that
// failed to persist. Image records additionally enqueue thumbnail
// generation; the call returns without waiting on the worker.
func (fs *FileService) CreateFile(
	ctx context.Context,
	ownerID user.UUID,
	name string,
	kind domain.Kind,
	parentID domain.UUID,
	isPublic bool,
	data []byte,
) (*domain.File, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if !kind.Valid() {
		return nil, ErrMissingType
	}
	if kind != domain.KindFolder && len(data) == 0 {
		return nil, ErrMissingData
	}

	if parentID != uuid.Nil {
		parent, err := fs.fileRepository.FetchFileByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.OwnerID != ownerID {
			return nil, ErrParentNotFound
		}
		if !parent.IsFolder() {
			return nil, ErrParentNotFolder
		}
	}

	req := &domain.File{
		OwnerID:  ownerID,
		Name:     name,
		Kind:     kind,
		ParentID: parentID,
		IsPublic: isPublic,
	}

	if kind != domain.KindFolder {
		path, err := fs.blob.Write(data)
		if err != nil {
			return nil, err
		}
		req.StoragePath = path
	}

	out, err := fs.fileRepository.CreateFile(ctx, req)
	if err != nil {
		return nil, err
	}

	if kind == domain.KindImage && out != nil {
		fs.mq.GetInputChan() <- mq.Job{
			Id:     uuid.New(),
			TS:     time.Now(),
			Kind:   mq.JobGenerateThumbnails,
			FileID: out.UUID.String(),
			UserID: ownerID.String(),
		}
	}

	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

func (fs *FileService) FindFile(ctx context.Context, requesterID user.UUID, fileID domain.UUID) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if f == nil || !CanManage(f, requesterID) {
		return nil, ErrNotFound
	}

	return f, nil
}

func (fs *FileService) FindFiles(ctx context.Context, ownerID user.UUID, parentID domain.UUID, page int) (domain.Files, error) {
	fls, err := fs.fileRepository.FetchFiles(ctx, ownerID, parentID, page)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (fs *FileService) SetVisibility(ctx context.Context, requesterID user.UUID, fileID domain.UUID, isPublic bool) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if f == nil || !CanManage(f, requesterID) {
		return nil, ErrNotFound
	}

	out, err := fs.fileRepository.SetVisibility(ctx, fileID, isPublic)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}

	return out, nil
}

func (fs *FileService) ReadContent(ctx context.Context, requesterID user.UUID, fileID domain.UUID, width int) ([]byte, string, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, "", err
	}
	if f == nil || !CanReadContent(f, requesterID) {
		return nil, "", ErrNotFound
	}
	if f.IsFolder() {
		return nil, "", ErrFolderHasNoContent
	}
	if f.StoragePath == "" {
		return nil, "", ErrNotFound
	}

	path := f.StoragePath
	if width > 0 {
		path = f.VariantPath(width)
	}
	if !fs.blob.Exists(path) {
		return nil, "", ErrNotFound
	}

	data, err := fs.blob.Read(path)
	if err != nil {
		return nil, "", err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(f.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return data, mimeType, nil
}
