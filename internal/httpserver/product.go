package httpserver

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adminflow/admin_backend/internal/events"
	"github.com/adminflow/admin_backend/internal/logging"
	"github.com/adminflow/admin_backend/internal/repo"
	"github.com/adminflow/admin_backend/internal/service"
	"github.com/adminflow/admin_backend/internal/transport"
)

type ProductHandler struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func productForm(c echo.Context) transport.ProductForm {
	return transport.ProductForm{
		Name:        c.FormValue("name"),
		Serves:      c.FormValue("serves"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
	}
}

// imageFile returns the uploaded productImage header or nil when the part is
// absent. Presence is enforced by the service where the operation requires it.
func imageFile(c echo.Context) *multipart.FileHeader {
	file, err := c.FormFile("productImage")
	if err != nil {
		return nil
	}
	return file
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "error", err)
	}
}

func (h *ProductHandler) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.add_product")

	prod, err := h.Svc.AddProduct(ctx, productForm(c), imageFile(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_product_failed", "status", 400, "reason", "missing fields")
			return echo.NewHTTPError(http.StatusBadRequest, "missing fields required to add the product")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product")
	}

	event := map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	}
	h.publish(c, event)

	return c.JSON(http.StatusCreated, transport.CreatedResponse{ID: prod.ID, Message: "product added successfully"})
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "reason", "store error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) EditProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.edit_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("edit_product_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	prod, err := h.Svc.EditProduct(ctx, uint(id), productForm(c), imageFile(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("edit_product_failed", "status", 400, "reason", "missing fields")
			return echo.NewHTTPError(http.StatusBadRequest, "missing fields required to edit the product")
		case errors.Is(err, repo.ErrProductNotFound):
			l.Warn("edit_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot edit product")
		}
	}

	event := map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	}
	h.publish(c, event)

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "product updated successfully"})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			l.Warn("delete_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("delete_product_failed", "status", 500, "reason", "store error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	event := map[string]any{
		"type":      "product_deleted",
		"productID": uint(id),
	}
	h.publish(c, event)

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "product deleted successfully"})
}
