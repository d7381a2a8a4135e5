package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inventaris/internal/i18n"
	"inventaris/internal/item"
	"inventaris/internal/item/dto"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
	"inventaris/pkg/httpapi"
	"inventaris/pkg/logger"
)

type ItemHandler struct {
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: log,
	}
}

type filterEcho struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type listResponse struct {
	listquery.Result[model.Item]
	Categories         []string               `json:"categories"`
	CategoriesDropdown []model.CategoryOption `json:"categories_dropdown"`
	Filters            filterEcho             `json:"filters"`
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	p := listquery.Sanitize(r.URL.Query(), listquery.ItemSortFields)

	page, err := h.uc.List(r.Context(), p)
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}

	httpapi.JSON(w, http.StatusOK, listResponse{
		Result:             listquery.NewResult(page.Items, page.Total, p, r.URL.Path),
		Categories:         page.CategoryNames,
		CategoriesDropdown: page.CategoryOptions,
		Filters: filterEcho{
			Search:    p.Search,
			Category:  p.Category,
			SortBy:    string(p.SortBy),
			SortOrder: string(p.SortOrder),
		},
	})
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	i, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}
	httpapi.JSON(w, http.StatusOK, map[string]interface{}{"data": i})
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpapi.BadRequest(w, "invalid request body")
		return
	}

	i, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}

	httpapi.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": i18n.T(r.Context(), "item.created"),
		"data":    i,
	})
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpapi.BadRequest(w, "invalid request body")
		return
	}
	input.ID = chi.URLParam(r, "id")

	i, err := h.uc.Update(r.Context(), &input)
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}

	httpapi.JSON(w, http.StatusOK, map[string]interface{}{
		"message": i18n.T(r.Context(), "item.updated"),
		"data":    i,
	})
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}
	httpapi.JSON(w, http.StatusOK, map[string]string{
		"message": i18n.T(r.Context(), "item.deleted"),
	})
}
