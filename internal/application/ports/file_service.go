package ports

import (
	"context"

	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
)

type FileService interface {
	CreateFile(ctx context.Context, ownerID user.UUID, name string, kind file.Kind, parentID file.UUID, isPublic bool, data []byte) (*file.File, error)
	FindFile(ctx context.Context, requesterID user.UUID, fileID file.UUID) (*file.File, error)
	FindFiles(ctx context.Context, ownerID user.UUID, parentID file.UUID, page int) (file.Files, error)
	SetVisibility(ctx context.Context, requesterID user.UUID, fileID file.UUID, isPublic bool) (*file.File, error)
	// ReadContent returns the raw bytes and mime type of a record's content.
	// requesterID may be uuid.Nil for anonymous reads of public records.
	// width selects a derived variant (100/250/500); 0 means the original.
	ReadContent(ctx context.Context, requesterID user.UUID, fileID file.UUID, width int) ([]byte, string, error)
}
