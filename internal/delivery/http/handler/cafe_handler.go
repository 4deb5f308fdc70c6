package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cafe-finder/internal/pkg/errors"
	"github.com/cafe-finder/internal/pkg/utils"
	"github.com/cafe-finder/internal/pkg/validator"
	"github.com/cafe-finder/internal/usecase"
	"github.com/cafe-finder/internal/usecase/dto"
)

// CafeHandler - обработчик поиска кафе
type CafeHandler struct {
	cafeUC *usecase.CafeUseCase
	logger *zap.Logger
}

// NewCafeHandler - создание нового CafeHandler
func NewCafeHandler(cafeUC *usecase.CafeUseCase, logger *zap.Logger) *CafeHandler {
	return &CafeHandler{
		cafeUC: cafeUC,
		logger: logger,
	}
}

// FindCafes godoc
// @Summary Поиск кафе в прямоугольной области
// @Description Возвращает кафе (amenity=cafe) из OpenStreetMap внутри bounding box. Размах области не больше 1.5 градуса по каждой оси, limit ограничивается диапазоном 1..200.
// @Tags Cafes
// @Produce json
// @Param swLat query number true "Широта юго-западного угла"
// @Param swLng query number true "Долгота юго-западного угла"
// @Param neLat query number true "Широта северо-восточного угла"
// @Param neLng query number true "Долгота северо-восточного угла"
// @Param limit query int false "Максимальное количество результатов" default(50)
// @Success 200 {array} domain.Cafe
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/cafes [get]
func (h *CafeHandler) FindCafes(c *fiber.Ctx) error {
	var query dto.CafesQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	if err := validator.Validate(&query); err != nil {
		return utils.SendError(c, err)
	}

	req, err := query.ToRequest()
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	cafes, err := h.cafeUC.FindCafesInBbox(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(cafes)
}
