package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/product"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type ProductHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProductHandlerImpl struct {
	productService product.ProductService
}

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &ProductHandlerImpl{productService: productService}
}

// Create implements ProductHandler.
func (h *ProductHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		slog.Error("Create product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created successfully", created)
}

// GetByID implements ProductHandler.
func (h *ProductHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.productService.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// List implements ProductHandler.
func (h *ProductHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := product.ProductFilter{
		Company:     company.Company(r.URL.Query().Get("company")),
		Type:        product.Type(r.URL.Query().Get("type")),
		MarginAlert: r.URL.Query().Get("margin_alert") == "true",
		Search:      r.URL.Query().Get("search"),
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, products)
}

// Update implements ProductHandler.
func (h *ProductHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req product.UpdateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "productID")

	if err := h.productService.UpdateProduct(r.Context(), req); err != nil {
		slog.Error("Update product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated successfully", nil)
}

// Delete implements ProductHandler.
func (h *ProductHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Product deleted successfully", nil)
}
