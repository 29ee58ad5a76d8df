package handler

import (
	"net/http"
	"strconv"

	"shop/internal/app/ds"
	"shop/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ОТЗЫВЫ ============

func reviewToDTO(r ds.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Comment:     r.Comment,
		CommentDate: r.CommentDate,
		Grade:       r.Grade,
		IsActive:    r.IsActive,
	}
}

func reviewListToDTO(reviews []ds.Review) []dto.ReviewResponse {
	response := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		response[i] = reviewToDTO(review)
	}
	return response
}

// GetReviews получает список отзывов
// @Summary Получение списка отзывов
// @Description Возвращает список всех активных отзывов
// @Tags Reviews
// @Produce json
// @Success 200 {array} dto.ReviewResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reviews [get]
func (h *APIHandler) GetReviews(c *gin.Context) {
	reviews, err := h.Repository.GetActiveReviews()
	if err != nil {
		logrus.Error("Error getting reviews: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения отзывов")
		return
	}

	c.JSON(http.StatusOK, reviewListToDTO(reviews))
}

// GetProductReviews получает отзывы товара
// @Summary Получение отзывов товара
// @Description Возвращает активные отзывы указанного товара
// @Tags Reviews
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {array} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/reviews [get]
func (h *APIHandler) GetProductReviews(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID товара")
		return
	}

	reviews, err := h.Repository.GetReviewsByProduct(uint(id))
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reviewListToDTO(reviews))
}

// CreateReview создает отзыв и пересчитывает рейтинг товара
// @Summary Создание отзыва
// @Description Создает отзыв от имени текущего покупателя и пересчитывает рейтинг товара
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Данные отзыва"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /reviews [post]
func (h *APIHandler) CreateReview(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "ошибка авторизации")
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	review, err := h.Repository.CreateReview(userID, req.ProductID, req.Comment, req.Grade)
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, reviewToDTO(*review))
}

// DeleteReview логически удаляет отзыв и пересчитывает рейтинг товара
// @Summary Удаление отзыва
// @Description Помечает отзыв неактивным и пересчитывает рейтинг товара (только для администраторов)
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID отзыва"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *APIHandler) DeleteReview(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID отзыва")
		return
	}

	if err := h.Repository.DeleteReview(uint(id)); err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "отзыв помечен как неактивный", nil)
}
