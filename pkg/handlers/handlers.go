package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/eknkc/pug"

	"video-manager/pkg/auth"
	"video-manager/pkg/models"
	"video-manager/pkg/services"
)

// Fixed client-facing messages. Provider errors are logged server-side only.
const (
	msgBadCredentials = "Invalid username or password."
	msgAdminRequired  = "Admin access required."
	msgListFailed     = "Unable to load video list."
	msgNoFile         = "No video file found."
	msgUploadFailed   = "Upload failed."
	msgUploadOK       = "Video uploaded successfully."
)

// maxUploadMemory bounds the multipart form parse. The whole file is buffered
// in memory before the provider call either way.
const maxUploadMemory = 100 << 20

// Handler serves the HTTP surface of the catalog manager.
type Handler struct {
	catalog       *services.Catalog
	authenticator auth.Authenticator
}

// New creates a handler over the given catalog and authenticator.
func New(catalog *services.Catalog, authenticator auth.Authenticator) *Handler {
	return &Handler{catalog: catalog, authenticator: authenticator}
}

// Routes returns the full route table, CORS-wrapped.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", h.LoginHandler)
	mux.HandleFunc("/api/videos", h.VideosHandler)
	mux.HandleFunc("/api/upload", h.requireAdmin(h.UploadHandler))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("./public"))))
	mux.HandleFunc("/", h.IndexHandler)
	return corsMiddleware(mux)
}

// LoginHandler checks the submitted credentials and issues the admin session.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, ok := h.authenticator.Login(req.Username, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   session.Token,
		Role:    session.Role,
	})
}

// VideosHandler returns the current catalog as a JSON array.
func (h *Handler) VideosHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	videos, err := h.catalog.ListVideos(r.Context())
	if err != nil {
		log.Printf("Listing videos failed: %v", err)
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// UploadHandler buffers the single multipart video file and forwards it to
// the media store. Reachable only through the admin gate.
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}

	file, header, err := r.FormFile("videoFile")
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Reading upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	resource, err := h.catalog.UploadVideo(r.Context(), data, mimeType)
	if err != nil {
		log.Printf("Upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	log.Printf("Uploaded video %s", resource.PublicID)
	writeJSON(w, http.StatusOK, models.UploadResponse{
		Success:  true,
		Message:  msgUploadOK,
		Filename: resource.PublicID,
		Url:      resource.SecureURL,
	})
}

// IndexHandler renders the player page.
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	template, err := pug.CompileFile("./views/index.pug", pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template error: %v", err)
		return
	}

	if err := template.Execute(w, nil); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template execution error: %v", err)
	}
}

// requireAdmin rejects requests whose token header does not authorize admin
// access, before the wrapped handler runs.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticator.Authorize(r.Header.Get(auth.HeaderName)) {
			writeError(w, http.StatusUnauthorized, msgAdminRequired)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Encoding response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Success: false, Message: message})
}
