package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vagones-api/internal/application/dto"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/application/ledger"
	"github.com/jhoicas/vagones-api/internal/domain"
	"github.com/jhoicas/vagones-api/internal/domain/wagon"
	"github.com/shopspring/decimal"
)

// LedgerHandler maneja las operaciones del libro de asignaciones (protegido).
type LedgerHandler struct {
	uc       *ledger.LedgerUseCase
	resolver *identity.Resolver
}

// NewLedgerHandler construye el handler del libro.
func NewLedgerHandler(uc *ledger.LedgerUseCase, resolver *identity.Resolver) *LedgerHandler {
	return &LedgerHandler{uc: uc, resolver: resolver}
}

// Assign godoc
// @Summary      Asignar vagones a una contraparte (lote)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignRequest  true  "wagons (texto libre), role, counterparty_name"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/ledger/assignments [post]
func (h *LedgerHandler) Assign(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	var in dto.AssignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := ledger.AssignInput{
		RawWagons:        in.Wagons,
		Role:             in.Role,
		CounterpartyID:   in.CounterpartyID,
		CounterpartyName: in.CounterpartyName,
		DocumentRef:      in.DocumentRef,
		Notes:            in.Notes,
	}
	if t, ok := parseDateParam(in.LeaseStart); ok {
		input.LeaseStart = t
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lease_start inválido, formato YYYY-MM-DD"})
	}
	if t, ok := parseDateParam(in.LeaseEnd); ok {
		input.LeaseEnd = t
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lease_end inválido, formato YYYY-MM-DD"})
	}
	if in.Rate != nil {
		d, err := decimal.NewFromString(*in.Rate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rate inválido"})
		}
		input.Rate = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	result, err := h.uc.AssignBatch(c.Context(), scope, input)
	if err != nil {
		return ledgerError(c, err, result)
	}
	return c.JSON(toBatchResponse(result))
}

// Exclude godoc
// @Summary      Excluir vagones del libro (lote)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExcludeRequest  true  "wagons (texto libre), role, exclusion_date"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/ledger/exclusions [post]
func (h *LedgerHandler) Exclude(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	var in dto.ExcludeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	exclusionDate, err := time.Parse("2006-01-02", in.ExclusionDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "exclusion_date inválida, formato YYYY-MM-DD"})
	}
	result, err := h.uc.ExcludeBatch(c.Context(), scope, ledger.ExcludeInput{
		RawWagons:     in.Wagons,
		Role:          in.Role,
		ExclusionDate: exclusionDate,
	})
	if err != nil {
		return ledgerError(c, err, result)
	}
	return c.JSON(toBatchResponse(result))
}

// History godoc
// @Summary      Historial completo de un vagón
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        wagon  query  string  true  "número de vagón (8 dígitos)"
// @Param        role   query  string  true  "tenant | lessor"
// @Success      200    {array}   dto.HistoryEntryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/ledger/history [get]
func (h *LedgerHandler) History(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	entries, err := h.uc.History(c.Context(), scope, c.Query("wagon"), c.Query("role"))
	if err != nil {
		return ledgerError(c, err, nil)
	}
	out := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := dto.HistoryEntryResponse{
			ID:               e.ID,
			WagonNumber:      wagon.Format(e.WagonNumber),
			CounterpartyName: e.CounterpartyName,
			CounterpartyID:   e.CounterpartyID,
			Role:             e.Role,
			LeaseStart:       e.LeaseStart,
			LeaseEnd:         e.LeaseEnd,
			IsActive:         e.IsActive,
			IsExclusion:      e.IsExclusion(),
			DocumentRef:      e.DocumentRef,
			Notes:            e.Notes,
			CreatedBy:        e.CreatedBy,
			CreatedByName:    e.CreatedByName,
			CreatedAt:        e.CreatedAt,
		}
		if e.Rate.Valid {
			rate := e.Rate.Decimal
			resp.Rate = &rate
		}
		out = append(out, resp)
	}
	return c.JSON(out)
}

// SoftRemove godoc
// @Summary      Baja suave de un registro del libro de propios
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id del registro"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/owned/{id} [delete]
func (h *LedgerHandler) SoftRemove(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.SoftRemove(c.Context(), scope, c.Params("id")); err != nil {
		return ledgerError(c, err, nil)
	}
	return c.JSON(fiber.Map{"message": "registro dado de baja"})
}

// HardDelete godoc
// @Summary      Borrado físico de un registro del libro de propios (admin)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id del registro"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/owned/{id}/hard [delete]
func (h *LedgerHandler) HardDelete(c *fiber.Ctx) error {
	scope, err := h.resolver.Resolve(c.Context(), SessionFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.uc.HardDelete(c.Context(), scope, c.Params("id")); err != nil {
		return ledgerError(c, err, nil)
	}
	return c.JSON(fiber.Map{"message": "registro eliminado"})
}

// ledgerError mapea errores de dominio del libro a respuestas HTTP.
func ledgerError(c *fiber.Ctx, err error, result *ledger.BatchResult) error {
	switch err {
	case domain.ErrUnscoped:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNSCOPED", Message: "no se pudo resolver la empresa del usuario"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNoValidWagons:
		resp := toBatchResponse(result)
		resp.Items = []dto.ItemResultDTO{}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// toBatchResponse aplana el resultado por lote para el transporte.
func toBatchResponse(result *ledger.BatchResult) dto.BatchResponse {
	resp := dto.BatchResponse{}
	if result == nil {
		return resp
	}
	resp.Invalid = result.Invalid
	resp.Succeeded = result.Succeeded()
	resp.Failed = result.Failed()
	resp.Items = make([]dto.ItemResultDTO, 0, len(result.Items))
	for _, item := range result.Items {
		out := dto.ItemResultDTO{Wagon: item.Wagon, OK: item.OK}
		if item.Err != nil {
			out.Message = item.Err.Error()
		}
		resp.Items = append(resp.Items, out)
	}
	return resp
}

// parseDateParam parsea una fecha opcional YYYY-MM-DD. (nil, true) si no viene.
func parseDateParam(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
