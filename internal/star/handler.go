// stellar-backend | 2026
// handler.go

package star

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/astralhq/stellar-backend/internal/core"
	"github.com/astralhq/stellar-backend/internal/upload"
)

// Handler exposes the star catalog. Writes require an admin session; reads
// require an active API key.
type Handler struct {
	service      *Service
	uploads      *upload.Saver
	validate     *validator.Validate
	defaultLimit int
}

func NewHandler(service *Service, uploads *upload.Saver, defaultLimit int) *Handler {
	return &Handler{
		service:      service,
		uploads:      uploads,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		defaultLimit: defaultLimit,
	}
}

func (h *Handler) Routes(requireAdmin, requireAPIKey func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(requireAPIKey)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	image, err := h.uploads.Save(r, "image")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	req := CreateStarRequest{
		Name:        r.FormValue("name"),
		Temperature: r.FormValue("temperature"),
		Mass:        r.FormValue("mass"),
		Diameter:    r.FormValue("diameter"),
		Image:       image,
	}
	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	star, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.Created(w, star)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := listParams(r, h.defaultLimit)

	stars, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.Paginated(w, stars, params.Page, params.Limit, total)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	star, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, star)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	image, err := h.uploads.Save(r, "image")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req UpdateStarRequest
	req.Name = formValue(r, "name")
	req.Temperature = formValue(r, "temperature")
	req.Mass = formValue(r, "mass")
	req.Diameter = formValue(r, "diameter")
	if image != "" {
		req.Image = &image
	}

	star, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, star)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		core.JSONError(w, err)
		return
	}
	core.OKMessage(w, "Deleted successfully")
}

// formValue returns nil for an absent or empty field so updates can tell
// "not submitted" apart from a real value.
func formValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

func listParams(r *http.Request, defaultLimit int) ListStarsParams {
	var params ListStarsParams
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		params.Limit = v
	}
	params.Normalize(defaultLimit)
	return params
}
