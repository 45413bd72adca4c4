package file

import (
	"github.com/google/uuid"

	domain "file-manager-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		UUID:     model.UUID,
		OwnerID:  model.OwnerID,
		Name:     model.Name,
		Kind:     domain.Kind(model.Kind),
		IsPublic: model.IsPublic,

		CreatedAt: model.CreatedAt,
	}
	if model.ParentID != nil {
		f.ParentID = *model.ParentID
	}
	if model.StoragePath != nil {
		f.StoragePath = *model.StoragePath
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func toDBParent(parentID domain.UUID) *uuid.UUID {
	if parentID == uuid.Nil {
		return nil
	}
	p := parentID
	return &p
}

func toDBStoragePath(path string) *string {
	if path == "" {
		return nil
	}
	return &path
}
