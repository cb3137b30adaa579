package models

// Video is the catalog projection shown to clients. It is rebuilt from the
// media store on every listing and never persisted locally.
type Video struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// LoginRequest carries the credentials submitted to the login endpoint
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// UploadResponse is returned on a successful video upload
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Url      string `json:"url"`
}

// ErrorResponse is the JSON body for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
