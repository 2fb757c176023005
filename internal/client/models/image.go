package models

// UploadedImage is the backend's answer to an image upload.
type UploadedImage struct {
	FileID  string `json:"fileId"`
	FileURL string `json:"fileUrl"`
}

// Recognition holds entities extracted from an uploaded image. Each field may
// carry several candidates; callers use the first one. A non-empty Error means
// the backend failed even though the HTTP status was a success.
type Recognition struct {
	Name    []string `json:"name"`
	Phone   []string `json:"phone"`
	Email   []string `json:"email"`
	URL     []string `json:"url"`
	Address []string `json:"address"`
	Error   string   `json:"error,omitempty"`
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
