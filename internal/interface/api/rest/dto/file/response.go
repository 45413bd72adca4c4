package file

import (
	"github.com/google/uuid"
)

type (
	File struct {
		ID       uuid.UUID `json:"id"`
		UserID   uuid.UUID `json:"userId"`
		Name     string    `json:"name"`
		Type     string    `json:"type"`
		IsPublic bool      `json:"isPublic"`
		ParentID string    `json:"parentId"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
)
