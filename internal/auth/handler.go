// stellar-backend | 2026
// handler.go

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/astralhq/stellar-backend/internal/core"
	"github.com/astralhq/stellar-backend/internal/middleware"
)

// Handler exposes the account endpoints. Register and login are public;
// everything else requires a valid session token.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes mounts the auth endpoints, wrapping the protected group in the
// session guard.
func (h *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/profile", h.Profile)
		r.Put("/update", h.UpdateProfile)
		r.Put("/update-password", h.UpdatePassword)
		r.Put("/payment-balance", h.AddBalance)
		r.Put("/activate", h.Activate)
	})

	return r
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.Created(w, toUserResponse(profile))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, TokenResponse{
		Success: true,
		Data:    toUserResponse(profile),
		Token:   token,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, toUserResponse(profile))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, toUserResponse(profile))
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, token, err := h.service.UpdatePassword(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, TokenResponse{
		Success: true,
		Data:    toUserResponse(profile),
		Token:   token,
	})
}

func (h *Handler) AddBalance(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, err := h.service.AddBalance(r.Context(), middleware.GetUserID(r.Context()), *req.Payment)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, toUserResponse(profile))
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	apiKey, err := h.service.Activate(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.JSON(w, http.StatusOK, ActivateResponse{
		Success: true,
		APIKey:  apiKey,
		Message: "Your profile successfully activated",
	})
}

// decode parses the JSON body and runs struct validation, writing the
// failure response itself. Returns false when the request was rejected.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}
	return true
}
