package handler

import (
	"net/http"
	"strconv"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// idFromParam validates externally supplied identifiers before they reach
// a lookup.
func idFromParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(id), nil
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	ctx := c.Request().Context()

	search := c.QueryParam("search")
	order := c.QueryParam("order")

	services, err := h.catalogService.ListServices(ctx, search, order)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetService(c echo.Context) error {
	ctx := c.Request().Context()

	serviceID, err := idFromParam(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.catalogService.GetService(ctx, serviceID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, svc)
}
