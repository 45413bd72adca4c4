package file

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/user"
)

type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}

// ThumbnailWidths are the derived variants computed for every image upload,
// written next to the original at "<storagePath>_<width>".
var ThumbnailWidths = []int{500, 250, 100}

type (
	UUID = uuid.UUID

	// File is a catalog record. ParentID == uuid.Nil means the record sits
	// at the root of its owner's namespace. StoragePath is set once at
	// creation for non-folder kinds and never changes afterwards.
	File struct {
		UUID        UUID
		OwnerID     user.UUID
		Name        string
		Kind        Kind
		ParentID    UUID
		IsPublic    bool
		StoragePath string

		CreatedAt time.Time
	}
	Files []*File
)

func (f *File) IsFolder() bool { return f.Kind == KindFolder }

// VariantPath returns the storage path of the derived asset for width.
func (f *File) VariantPath(width int) string {
	return VariantPath(f.StoragePath, width)
}

func VariantPath(storagePath string, width int) string {
	if width <= 0 {
		return storagePath
	}
	return fmt.Sprintf("%s_%d", storagePath, width)
}
