package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DB = (*pgxpool.Pool)(nil)

type Repository struct {
	db DB
}

func NewRepository(db DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileByID(ctx context.Context, uuid file.UUID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, uuid.String()).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,
		&f.Name,
		&f.Kind,
		&f.ParentID,
		&f.IsPublic,
		&f.StoragePath,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFiles(ctx context.Context, ownerID user.UUID, parentID file.UUID, page int) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectFiles, ownerID, toDBParent(parentID), page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UUID,
			&f.OwnerID,
			&f.Name,
			&f.Kind,
			&f.ParentID,
			&f.IsPublic,
			&f.StoragePath,

			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.OwnerID, req.Name, string(req.Kind), toDBParent(req.ParentID), req.IsPublic, toDBStoragePath(req.StoragePath),
	).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,
		&f.Name,
		&f.Kind,
		&f.ParentID,
		&f.IsPublic,
		&f.StoragePath,

		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) CountFiles(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, SelectCountFiles).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}

func (r *Repository) SetVisibility(ctx context.Context, uuid file.UUID, isPublic bool) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, UpdateVisibilityByUUID, uuid.String(), isPublic).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerID,
		&f.Name,
		&f.Kind,
		&f.ParentID,
		&f.IsPublic,
		&f.StoragePath,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}
