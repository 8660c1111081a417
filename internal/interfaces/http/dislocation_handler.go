package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vagones-api/internal/application/dislocation"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
)

// DislocationHandler maneja el reporte de dislocación, solo lectura (protegido).
type DislocationHandler struct {
	uc       *dislocation.ReportUseCase
	resolver *identity.Resolver
}

// NewDislocationHandler construye el handler del reporte.
func NewDislocationHandler(uc *dislocation.ReportUseCase, resolver *identity.Resolver) *DislocationHandler {
	return &DislocationHandler{uc: uc, resolver: resolver}
}

// List godoc
// @Summary      Listado filtrado del reporte de dislocación
// @Tags         dislocations
// @Security     Bearer
// @Produce      json
// @Param        wagons        query  string  false  "números de vagón (texto libre)"
// @Param        counterparty  query  string  false  "nombre exacto de contraparte"
// @Param        date_from     query  string  false  "YYYY-MM-DD"
// @Param        date_to       query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.DislocationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dislocations [get]
func (h *DislocationHandler) List(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	var q dto.DislocationQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	rows, err := h.uc.List(c.Context(), scope, q)
	if err != nil {
		return dislocationError(c, err)
	}
	return c.JSON(rows)
}

// Options godoc
// @Summary      Opciones distintas para los selectores de filtro
// @Tags         dislocations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FilterOptionsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dislocations/options [get]
func (h *DislocationHandler) Options(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	opts, err := h.uc.Options(c.Context(), scope)
	if err != nil {
		return dislocationError(c, err)
	}
	return c.JSON(opts)
}

// Summary godoc
// @Summary      Resumen pre-agregado del tablero
// @Tags         dislocations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dislocations/summary [get]
func (h *DislocationHandler) Summary(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	summary, err := h.uc.Summary(c.Context(), scope)
	if err != nil {
		return dislocationError(c, err)
	}
	return c.JSON(summary)
}

func dislocationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUnscoped:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNSCOPED", Message: "no se pudo resolver la empresa del usuario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
