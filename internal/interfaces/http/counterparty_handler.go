package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vagones-api/internal/application/counterparty"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/domain"
)

// CounterpartyHandler maneja el directorio de contrapartes (protegido).
type CounterpartyHandler struct {
	uc       *counterparty.DirectoryUseCase
	resolver *identity.Resolver
}

// NewCounterpartyHandler construye el handler del directorio.
func NewCounterpartyHandler(uc *counterparty.DirectoryUseCase, resolver *identity.Resolver) *CounterpartyHandler {
	return &CounterpartyHandler{uc: uc, resolver: resolver}
}

// List godoc
// @Summary      Contrapartes activas por rol
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Param        role  query  string  true  "tenant | lessor"
// @Success      200   {array}   dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/counterparties [get]
func (h *CounterpartyHandler) List(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	list, err := h.uc.ListActive(c.Context(), scope, c.Query("role"))
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Alta de contraparte
// @Tags         counterparties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCounterpartyRequest  true  "name, role"
// @Success      201   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/counterparties [post]
func (h *CounterpartyHandler) Create(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	var in dto.CreateCounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cp, err := h.uc.Create(c.Context(), scope, in)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cp)
}

func counterpartyError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUnscoped:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNSCOPED", Message: "no se pudo resolver la empresa del usuario"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la contraparte ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
