package services

import (
	"github.com/google/uuid"

	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
)

// Pure access decisions over catalog records. Denials surface to callers
// as ErrNotFound, never as a distinct forbidden signal.

// CanManage gates metadata operations: show, list, publish, unpublish.
// Only the authenticated owner passes.
func CanManage(f *file.File, requesterID user.UUID) bool {
	return requesterID != uuid.Nil && f.OwnerID == requesterID
}

// CanReadContent gates raw content reads, the one operation with a public
// path: a public record is readable without any session.
func CanReadContent(f *file.File, requesterID user.UUID) bool {
	return f.IsPublic || CanManage(f, requesterID)
}
