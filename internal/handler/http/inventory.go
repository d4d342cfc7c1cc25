package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/inventory"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type InventoryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &InventoryHandlerImpl{inventoryService: inventoryService}
}

// Create implements InventoryHandler.
func (h *InventoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create inventory item decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.inventoryService.CreateItem(r.Context(), req)
	if err != nil {
		slog.Error("Create inventory item service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Inventory item created successfully", created)
}

// GetByID implements InventoryHandler.
func (h *InventoryHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventoryService.GetItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, item)
}

// List implements InventoryHandler.
func (h *InventoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := inventory.ItemFilter{
		Company:      company.Company(r.URL.Query().Get("company")),
		BelowMinimum: r.URL.Query().Get("below_minimum") == "true",
		Search:       r.URL.Query().Get("search"),
	}

	items, err := h.inventoryService.ListItems(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// Update implements InventoryHandler.
func (h *InventoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update inventory item decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "itemID")

	if err := h.inventoryService.UpdateItem(r.Context(), req); err != nil {
		slog.Error("Update inventory item service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Inventory item updated successfully", nil)
}

// Delete implements InventoryHandler.
func (h *InventoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Inventory item deleted successfully", nil)
}
