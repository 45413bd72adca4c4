package file

import (
	"github.com/google/uuid"

	"file-manager-api/internal/domain/file"
)

// RootParent is how a nil parent id is rendered on the wire.
const RootParent = "0"

func ToResponseFile(fDomain file.File) File {
	var f = File{
		ID:       fDomain.UUID,
		UserID:   fDomain.OwnerID,
		Name:     fDomain.Name,
		Type:     string(fDomain.Kind),
		IsPublic: fDomain.IsPublic,
		ParentID: RootParent,
	}
	if fDomain.ParentID != uuid.Nil {
		f.ParentID = fDomain.ParentID.String()
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
