package handler

import (
	"log/slog"
	"net/http"

	"drugweb/internal/delivery/http/response"
	"drugweb/internal/domain/entity"
	"drugweb/internal/domain/repository"
	"drugweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// MedicineResponse is the public shape of a catalog entry.
type MedicineResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	GenericName string `json:"generic_name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

func toMedicineResponse(medicine *entity.Medicine) *MedicineResponse {
	return &MedicineResponse{
		Code:        medicine.Code,
		Name:        medicine.Name,
		GenericName: medicine.GenericName,
		Category:    medicine.Category,
		Price:       medicine.Price.StringFixed(2),
		Stock:       medicine.Stock,
	}
}

// ListMedicines handles the catalog listing with optional search and sort.
func (h *CatalogHandler) ListMedicines(c echo.Context) error {
	input := &usecase.ListMedicinesInput{
		Search: c.QueryParam("search"),
		SortBy: repository.MedicineSort(c.QueryParam("sort")),
	}

	medicines, err := h.catalogUC.ListMedicines(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]*MedicineResponse, 0, len(medicines))
	for _, medicine := range medicines {
		list = append(list, toMedicineResponse(medicine))
	}

	return response.Success(c, http.StatusOK, list, "Medicines retrieved successfully")
}

// GetMedicine handles a single catalog entry lookup by code.
func (h *CatalogHandler) GetMedicine(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Medicine code is required")
	}

	medicine, err := h.catalogUC.GetMedicine(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMedicineResponse(medicine), "Medicine retrieved successfully")
}
