package file

// Request is the upload body. ParentID is "0" or absent for root; Data is
// the base64-encoded content, required for every kind except folders.
type Request struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}
