package handler

import (
	"net/http"
	"strconv"

	"shop/internal/app/ds"
	"shop/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КАТЕГОРИИ ============

func categoryToDTO(c ds.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}

// GetCategories получает список категорий
// @Summary Получение списка категорий
// @Description Возвращает список всех активных категорий
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *APIHandler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetActiveCategories()
	if err != nil {
		logrus.Error("Error getting categories: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения категорий")
		return
	}

	response := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = categoryToDTO(category)
	}

	c.JSON(http.StatusOK, response)
}

// CreateCategory создает новую категорию
// @Summary Создание категории
// @Description Создает новую категорию (только для администраторов)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Данные категории"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories [post]
func (h *APIHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	category, err := h.Repository.CreateCategory(req.Name, req.ParentID)
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, categoryToDTO(*category))
}

// UpdateCategory обновляет категорию
// @Summary Обновление категории
// @Description Обновляет переданные поля категории (только для администраторов)
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Param request body dto.UpdateCategoryRequest true "Данные для обновления"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (h *APIHandler) UpdateCategory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID категории")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	category, err := h.Repository.UpdateCategory(uint(id), req.Name, req.ParentID)
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryToDTO(*category))
}

// DeleteCategory логически удаляет категорию
// @Summary Удаление категории
// @Description Помечает категорию неактивной, не затрагивая товары и дочерние категории
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (h *APIHandler) DeleteCategory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID категории")
		return
	}

	if err := h.Repository.DeleteCategory(uint(id)); err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "категория помечена как неактивная", nil)
}
