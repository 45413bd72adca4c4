package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	// File mirrors the files table. ParentID and StoragePath are NULL for
	// root-level records and folders respectively.
	File struct {
		ID          uint64
		UUID        uuid.UUID
		OwnerID     uuid.UUID
		Name        string
		Kind        string
		ParentID    *uuid.UUID
		IsPublic    bool
		StoragePath *string

		CreatedAt time.Time
	}
	Files []*File
)
