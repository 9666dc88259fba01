package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestaodocs/gestaodocs-api/internal/application/dto"
	"github.com/gestaodocs/gestaodocs-api/internal/application/usecase"
	"github.com/gestaodocs/gestaodocs-api/internal/domain"
)

// EmployeeHandler maneja o CRUD de funcionários (rotas protegidas).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler constrói o handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// CheckCPF godoc
// @Summary      Verificar disponibilidade de CPF
// @Tags         employees
// @Produce      json
// @Param        cpf  query  string  true  "CPF no formato NNN.NNN.NNN-NN"
// @Success      200  {object}  dto.CPFCheckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees/check-cpf [get]
func (h *EmployeeHandler) CheckCPF(c *fiber.Ctx) error {
	cpf := c.Query("cpf")
	if cpf == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cpf é requerido"})
	}
	exists, err := h.uc.CheckCPF(cpf)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.CPFCheckResponse{Exists: exists})
}

// Create godoc
// @Summary      Cadastrar funcionário com documentos
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "funcionário + documentos iniciais"
// @Success      201   {object}  dto.EmployeeCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return employeeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeCreatedResponse{EmployeeID: id})
}

// List godoc
// @Summary      Listar funcionários com status de vencimento
// @Tags         employees
// @Produce      json
// @Success      200  {array}  dto.EmployeeSummary
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Detalhe do funcionário com documentos
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "id do funcionário"
// @Success      200  {object}  dto.EmployeeDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		return employeeError(c, err)
	}
	return c.JSON(detail)
}

// Update godoc
// @Summary      Atualizar funcionário (patch parcial + documentos)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do funcionário"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "campos a alterar"
// @Success      200   {object}  dto.EmployeeDetail
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	detail, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return employeeError(c, err)
	}
	return c.JSON(detail)
}

// Delete godoc
// @Summary      Remover funcionário e seus documentos
// @Tags         employees
// @Param        id  path  string  true  "id do funcionário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return employeeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// employeeError traduz erros de domínio do cadastro para HTTP.
func employeeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
	case errors.Is(err, domain.ErrDocumentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DOCUMENT_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrCPFAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CPF_EXISTS", Message: "já existe funcionário com este CPF"})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return internalError(c, err)
	}
}
