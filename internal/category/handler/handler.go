package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inventaris/internal/category"
	"inventaris/internal/category/dto"
	"inventaris/internal/i18n"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
	"inventaris/pkg/httpapi"
	"inventaris/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

type filterEcho struct {
	Search    string `json:"search"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type listResponse struct {
	listquery.Result[model.CategoryWithCount]
	Filters filterEcho `json:"filters"`
}

// List handles GET /categories. Rows carry per-category item counts.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	p := listquery.Sanitize(r.URL.Query(), listquery.CategorySortFields)

	categories, total, err := h.uc.List(r.Context(), p)
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}

	httpapi.JSON(w, http.StatusOK, listResponse{
		Result: listquery.NewResult(categories, total, p, r.URL.Path),
		Filters: filterEcho{
			Search:    p.Search,
			SortBy:    string(p.SortBy),
			SortOrder: string(p.SortOrder),
		},
	})
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpapi.BadRequest(w, "invalid request body")
		return
	}

	c, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}

	httpapi.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": i18n.T(r.Context(), "category.created"),
		"data":    c,
	})
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpapi.BadRequest(w, "invalid request body")
		return
	}
	input.ID = chi.URLParam(r, "id")

	c, err := h.uc.Update(r.Context(), &input)
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}

	httpapi.JSON(w, http.StatusOK, map[string]interface{}{
		"message": i18n.T(r.Context(), "category.updated"),
		"data":    c,
	})
}

// Delete handles DELETE /categories/{id}. A category that still has items
// is refused with a business-rule conflict, not deleted.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}
	httpapi.JSON(w, http.StatusOK, map[string]string{
		"message": i18n.T(r.Context(), "category.deleted"),
	})
}
