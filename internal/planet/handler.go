// stellar-backend | 2026
// handler.go

package planet

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/astralhq/stellar-backend/internal/core"
	"github.com/astralhq/stellar-backend/internal/upload"
)

// Handler exposes the planet catalog. Writes require an admin session; reads
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

	req := CreatePlanetRequest{
		Name:           r.FormValue("name"),
		DistanceToStar: r.FormValue("distanceToStar"),
		Diameter:       r.FormValue("diameter"),
		YearDuration:   r.FormValue("yearDuration"),
		DayDuration:    r.FormValue("dayDuration"),
		Temperature:    r.FormValue("temperature"),
		Star:           r.FormValue("star"),
		Image:          image,
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"sequenceNumber", &req.SequenceNumber},
		{"satellites", &req.Satellites},
	} {
		v, ok, err := formInt(r, f.name)
		if err != nil {
			core.JSONError(w, err)
			return
		}
		if ok {
			*f.dst = v
		}
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	planet, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.Created(w, planet)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := listParams(r, h.defaultLimit)

	planets, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.Paginated(w, planets, params.Page, params.Limit, total)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	planet, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, planet)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	image, err := h.uploads.Save(r, "image")
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req UpdatePlanetRequest
	req.Name = formValue(r, "name")
	req.DistanceToStar = formValue(r, "distanceToStar")
	req.Diameter = formValue(r, "diameter")
	req.YearDuration = formValue(r, "yearDuration")
	req.DayDuration = formValue(r, "dayDuration")
	req.Temperature = formValue(r, "temperature")
	req.Star = formValue(r, "star")
	if image != "" {
		req.Image = &image
	}
	for _, f := range []struct {
		name string
		dst  **int
	}{
		{"sequenceNumber", &req.SequenceNumber},
		{"satellites", &req.Satellites},
	} {
		v, ok, err := formInt(r, f.name)
		if err != nil {
			core.JSONError(w, err)
			return
		}
		if ok {
			n := v
			*f.dst = &n
		}
	}

	planet, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, planet)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		core.JSONError(w, err)
		return
	}
	core.OKMessage(w, "Deleted successfully")
}

func formValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

func formInt(r *http.Request, name string) (int, bool, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, core.ValidationError(fmt.Sprintf("%s must be a number", name))
	}
	return v, true, nil
}

func listParams(r *http.Request, defaultLimit int) ListPlanetsParams {
	var params ListPlanetsParams
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		params.Limit = v
	}
	params.Normalize(defaultLimit)
	return params
}
