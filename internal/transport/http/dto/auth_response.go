package dto

// UserView is the display-safe user payload. The password hash never crosses
// this boundary.
type UserView struct {
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AuthData is returned by register/login.
type AuthData struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// MeData is returned by GET /api/user.
type MeData struct {
	User UserView `json:"user"`
}

// HealthData is returned by GET /api/health.
type HealthData struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// UploadData acknowledges an accepted (validated, not persisted) file.
type UploadData struct {
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}
