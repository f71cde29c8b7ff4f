package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/zapcapta/zapcapta-api/internal/infra/http/middleware"
	"github.com/zapcapta/zapcapta-api/internal/usecase"
)

// SubmissionHandler recebe o form post do script embutido em sites de
// terceiros. É a porta mais exposta da API, por isso o rate limit por IP.
type SubmissionHandler struct {
	submitUC    *usecase.SubmitLeadUseCase
	rateLimiter *RateLimiter
}

func NewSubmissionHandler(submitUC *usecase.SubmitLeadUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		submitUC:    submitUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type SubmissionResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id,omitempty"`
	Origin   string `json:"origin,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (h *SubmissionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeSubmission(w, http.StatusTooManyRequests, SubmissionResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		writeSubmission(w, http.StatusBadRequest, SubmissionResponse{
			Success: false,
			Message: "Formulário inválido",
		})
		return
	}

	input := usecase.SubmitLeadInput{
		SiteID:      r.FormValue("site_id"),
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Message:     r.FormValue("message"),
		PageURL:     r.FormValue("page_url"),
		ReferrerURL: r.FormValue("referrer_url"),
	}
	// Widgets antigos mandam o referrer só no header.
	if input.ReferrerURL == "" {
		input.ReferrerURL = r.Referer()
	}

	output, err := h.submitUC.Execute(ctx, input)
	if err != nil {
		status := http.StatusInternalServerError
		if usecase.IsDomainError(err) {
			status = http.StatusUnprocessableEntity
		}
		writeSubmission(w, status, SubmissionResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	middleware.RecordLeadCaptured(output.Origin)

	writeSubmission(w, http.StatusCreated, SubmissionResponse{
		Success:  true,
		ID:       output.ID,
		Origin:   output.Origin,
		Campaign: output.Campaign,
	})
}

func writeSubmission(w http.ResponseWriter, status int, resp SubmissionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
