package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/poimap-service/internal/domain"
	apperrors "github.com/poimap-service/internal/pkg/errors"
	"github.com/poimap-service/internal/pkg/utils"
	"github.com/poimap-service/internal/pkg/validator"
	"github.com/poimap-service/internal/usecase"
	"github.com/poimap-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SessionHandler - обработчик сессий просмотра карты
type SessionHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// CreateSession godoc
// @Summary Новая сессия
// @Description Создаёт сессию просмотра и возвращает начальную инструкцию рендера
// @Tags Sessions
// @Accept json
// @Produce json
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Param request body dto.CreateSessionRequest false "Начальные фильтры"
// @Success 201 {object} utils.SuccessResponse{data=dto.RenderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant}/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, apperrors.ErrInvalidRequest)
		}
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.CreateSession(c.UserContext(), domain.Variant(c.Params("variant")), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, renderMeta(result))
}

// GetSession godoc
// @Summary Текущий рендер сессии
// @Tags Sessions
// @Produce json
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RenderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant}/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	result, err := h.mapUC.GetSession(c.UserContext(), domain.Variant(c.Params("variant")), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, renderMeta(result))
}

// DispatchEvent godoc
// @Summary Событие интерфейса
// @Description Применяет событие (search, category, floor, place, sidebar, switch-map) и возвращает новый рендер
// @Tags Sessions
// @Accept json
// @Produce json
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.EventRequest true "Событие"
// @Success 200 {object} utils.SuccessResponse{data=dto.RenderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant}/sessions/{id}/events [post]
func (h *SessionHandler) DispatchEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		if details := validationDetails(err); details != nil && details["Control"] == "oneof" {
			return utils.SendError(c, apperrors.ErrInvalidEvent.WithDetails(map[string]interface{}{"control": req.Control}))
		}
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.Dispatch(c.UserContext(), domain.Variant(c.Params("variant")), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, renderMeta(result))
}

// CloseSession godoc
// @Summary Закрыть сессию
// @Tags Sessions
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Param id path string true "ID сессии (UUID)"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant}/sessions/{id} [delete]
func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.mapUC.CloseSession(c.UserContext(), domain.Variant(c.Params("variant")), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func renderMeta(r *dto.RenderResponse) *utils.Meta {
	return &utils.Meta{
		Total:   len(r.List),
		Markers: len(r.Markers),
	}
}

func validationDetails(err error) map[string]interface{} {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Details
	}
	return nil
}
