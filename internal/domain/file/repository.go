package file

import (
	"context"

	"file-manager-api/internal/domain/user"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 20

type Repository interface {
	FetchFileByID(ctx context.Context, uuid UUID) (*File, error)
	// FetchFiles returns ownerID's records whose parent matches exactly
	// (uuid.Nil for root), in insertion order, PageSize per page, page
	// numbering from 0.
	FetchFiles(ctx context.Context, ownerID user.UUID, parentID UUID, page int) (Files, error)
	CreateFile(ctx context.Context, req *File) (*File, error)
	SetVisibility(ctx context.Context, uuid UUID, isPublic bool) (*File, error)
	CountFiles(ctx context.Context) (int64, error)
}
