package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/poimap-service/internal/domain"
	apperrors "github.com/poimap-service/internal/pkg/errors"
	"github.com/poimap-service/internal/pkg/utils"
	"github.com/poimap-service/internal/pkg/validator"
	"github.com/poimap-service/internal/usecase"
	"github.com/poimap-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapHandler - обработчик запросов к данным карт без сессии
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Description Возвращает статус и список загруженных вариантов карт
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *MapHandler) Health(c *fiber.Ctx) error {
	available := h.mapUC.Available()
	status := "healthy"
	if len(available) < 2 {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status": status,
		"maps":   available,
		"time":   time.Now(),
	})
}

// GetMapConfig godoc
// @Summary Конфигурация карты
// @Description Параметры виджета, фишки категорий, этажи и палитра варианта карты
// @Tags Maps
// @Produce json
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Success 200 {object} utils.SuccessResponse{data=dto.MapConfigResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant} [get]
func (h *MapHandler) GetMapConfig(c *fiber.Ctx) error {
	result, err := h.mapUC.GetMapConfig(domain.Variant(c.Params("variant")))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// ListPlaces godoc
// @Summary Фильтрация мест
// @Description Места варианта по текстовому запросу, категории и этажу с позицией и цветом
// @Tags Maps
// @Produce json
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Param q query string false "Текстовый запрос"
// @Param category query string false "Фишка категории (Todos - все)"
// @Param floor query string false "Этаж (только interno)"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant}/places [get]
func (h *MapHandler) ListPlaces(c *fiber.Ctx) error {
	start := time.Now()

	var q dto.PlacesQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.ListPlaces(domain.Variant(c.Params("variant")), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		Markers:  result.OnMap,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetCategories godoc
// @Summary Категории карты
// @Description Палитра категорий и фишки фильтра в порядке первого появления
// @Tags Maps
// @Produce json
// @Param variant path string true "Вариант карты" Enums(externo, interno)
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/maps/{variant}/categories [get]
func (h *MapHandler) GetCategories(c *fiber.Ctx) error {
	result, err := h.mapUC.GetCategories(domain.Variant(c.Params("variant")))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Chips),
	})
}
