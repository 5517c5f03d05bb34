package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"wakeguard/go-backend/internal/alert"
	"wakeguard/go-backend/internal/config"
	"wakeguard/go-backend/internal/database"
	"wakeguard/go-backend/internal/models"
	"wakeguard/go-backend/internal/services"
)

// Handler carries the shared dependencies of the REST API.
type Handler struct {
	cfg      *config.Config
	db       *database.DB
	logger   *logrus.Logger
	metrics  *services.Metrics
	facemesh *services.FaceMeshClient

	mu           sync.Mutex
	userSessions map[string]int
}

func New(cfg *config.Config, db *database.DB, facemesh *services.FaceMeshClient, metrics *services.Metrics, logger *logrus.Logger) *Handler {
	return &Handler{
		cfg:          cfg,
		db:           db,
		logger:       logger,
		metrics:      metrics,
		facemesh:     facemesh,
		userSessions: make(map[string]int),
	}
}

// Routes registers every REST endpoint on the mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/register", h.Register)
	mux.HandleFunc("/api/login", h.Login)
	mux.HandleFunc("/api/logout", h.Logout)
	mux.HandleFunc("/api/me", h.GetCurrentUser)
	mux.HandleFunc("/api/sessions", h.Sessions)
	mux.HandleFunc("/api/sessions/end", h.EndSession)
	mux.HandleFunc("/api/sessions/delete", h.DeleteSession)
	mux.HandleFunc("/api/events", h.GetEvents)
	mux.HandleFunc("/api/alert-contact", h.AlertContact)
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/metrics", h.GetMetrics)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func validateEmail(email string) bool {
	return emailRegex.MatchString(email) && len(email) <= 255
}

func validatePassword(password string) bool {
	if len(password) < 8 || len(password) > 72 {
		return false
	}
	hasLetter := false
	hasNumber := false
	for _, char := range password {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') {
			hasLetter = true
		}
		if char >= '0' && char <= '9' {
			hasNumber = true
		}
	}
	return hasLetter && hasNumber
}

func validateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}
	return usernameRegex.MatchString(username)
}

func (h *Handler) enableCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.cfg.CORSOrigin)
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
	w.Header().Set("Content-Type", "application/json")
}

func (h *Handler) userIDFromCookie(r *http.Request) (int, bool) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		return 0, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	userID, exists := h.userSessions[cookie.Value]
	return userID, exists
}

// UserIDForToken resolves a login cookie value; the websocket upgrade uses it
// to attach connections to users.
func (h *Handler) UserIDForToken(token string) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	userID, exists := h.userSessions[token]
	return userID, exists
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.Username == "" {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}
	if !validateEmail(req.Email) {
		http.Error(w, "Invalid email format", http.StatusBadRequest)
		return
	}
	if !validatePassword(req.Password) {
		http.Error(w, "Password must be 8-72 characters with at least one letter and one number", http.StatusBadRequest)
		return
	}
	if !validateUsername(req.Username) {
		http.Error(w, "Username must be 3-30 characters, alphanumeric and underscore only", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Errorf("password hashing error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user, err := h.db.CreateUser(r.Context(), req.Email, req.Username, string(hash))
	if errors.Is(err, database.ErrDuplicate) {
		http.Error(w, "Email or username already registered", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Errorf("registration failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
	h.logger.Infof("user registered: %s", req.Email)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}
	if !validateEmail(req.Email) {
		http.Error(w, "Invalid email format", http.StatusBadRequest)
		return
	}

	user, storedHash, err := h.db.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.Errorf("login error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)) != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token := uuid.NewString()

	h.mu.Lock()
	// One live login per user.
	for key, id := range h.userSessions {
		if id == user.ID {
			delete(h.userSessions, key)
		}
	}
	h.userSessions[token] = user.ID
	h.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    token,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, user)
	h.logger.Infof("user logged in: %s", req.Email)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if cookie, err := r.Cookie("session_id"); err == nil {
		h.mu.Lock()
		delete(h.userSessions, cookie.Value)
		h.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.db.GetUserByID(r.Context(), userID)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Errorf("get current user error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Sessions handles POST (create) and GET (list) on /api/sessions.
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	switch r.Method {
	case http.MethodOptions:
	case http.MethodPost:
		h.createSession(w, r)
	case http.MethodGet:
		h.listSessions(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	session, err := h.db.CreateSession(r.Context(), userID, req.Notes)
	if err != nil {
		h.logger.Errorf("create session error: %v", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, session)
	h.logger.Infof("session created: id=%d user=%d", session.ID, userID)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := h.db.ListSessions(r.Context(), userID)
	if err != nil {
		h.logger.Errorf("list sessions error: %v", err)
		http.Error(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	err = h.db.EndSession(r.Context(), sessionID, userID)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Session not found or does not belong to user", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Errorf("end session error: %v", err)
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
	h.logger.Infof("session ended: %d", sessionID)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	err = h.db.DeleteSession(r.Context(), sessionID, userID)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Errorf("delete session error: %v", err)
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	h.logger.Infof("session deleted: %d", sessionID)
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := strconv.Atoi(r.URL.Query().Get("session_id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	events, err := h.db.ListEvents(r.Context(), sessionID, userID)
	if err != nil {
		h.logger.Errorf("list events error: %v", err)
		http.Error(w, "Failed to fetch events", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// AlertContact handles GET and PUT on /api/alert-contact: the persisted SMS
// recipient for the logged-in user.
func (h *Handler) AlertContact(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	switch r.Method {
	case http.MethodOptions:
	case http.MethodGet:
		h.getAlertContact(w, r)
	case http.MethodPut, http.MethodPost:
		h.updateAlertContact(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) getAlertContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	contact, err := h.db.GetAlertContact(r.Context(), userID)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "No alert contact configured", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Errorf("get alert contact error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) updateAlertContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromCookie(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.UpdateAlertContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	normalized, err := alert.NormalizePhone(req.PhoneNumber)
	if err != nil {
		http.Error(w, "Invalid phone number: "+err.Error(), http.StatusBadRequest)
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	contact := models.AlertContact{
		UserID:      userID,
		PhoneNumber: normalized,
		Enabled:     enabled,
		UpdatedAt:   time.Now(),
	}
	if err := h.db.UpsertAlertContact(r.Context(), contact); err != nil {
		h.logger.Errorf("upsert alert contact error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// New websocket connections resolve the contact at attach time, so the
	// change takes effect on the next monitoring session.
	writeJSON(w, http.StatusOK, contact)
	h.logger.Infof("alert contact updated for user %d", userID)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)

	facemeshUp := h.facemesh != nil && h.facemesh.HealthCheck()
	status := "ok"
	if !facemeshUp {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           status,
		"facemesh_service": facemeshUp,
		"active_clients":   h.metrics.GetActiveClients(),
	})
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.metrics.Snapshot())
}
