package handler

import (
	"io"
	"net/http"
	"strconv"

	"shop/internal/app/ds"
	"shop/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТОВАРЫ ============

func productToDTO(p ds.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		Rating:      p.Rating,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
	}
}

func productListToDTO(products []ds.Product) dto.ProductListResponse {
	dtoProducts := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		dtoProducts[i] = productToDTO(p)
	}
	return dto.ProductListResponse{
		Products: dtoProducts,
		Total:    len(dtoProducts),
	}
}

// requireProductOwner проверяет, что товар принадлежит текущему продавцу.
// Возвращает false, если ответ уже отправлен
func (h *APIHandler) requireProductOwner(c *gin.Context, productID uint) (*ds.Product, bool) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "ошибка авторизации")
		return nil, false
	}

	product, err := h.Repository.GetProductByID(productID)
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return nil, false
	}

	if product.SellerID != userID {
		h.errorResponse(c, http.StatusForbidden, "вы можете изменять только свои товары")
		return nil, false
	}

	return product, true
}

// GetProducts получает список товаров
// @Summary Получение списка товаров
// @Description Возвращает список всех активных товаров
// @Tags Products
// @Produce json
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (h *APIHandler) GetProducts(c *gin.Context) {
	products, err := h.Repository.GetActiveProducts()
	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения товаров")
		return
	}

	c.JSON(http.StatusOK, productListToDTO(products))
}

// GetProduct получает один товар
// @Summary Получение товара по ID
// @Description Возвращает детальную информацию о товаре
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (h *APIHandler) GetProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID товара")
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, productToDTO(*product))
}

// GetProductsByCategory получает товары категории
// @Summary Получение товаров по категории
// @Description Возвращает товары указанной категории и её активных дочерних категорий
// @Tags Products
// @Produce json
// @Param id path int true "ID категории"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/category/{id} [get]
func (h *APIHandler) GetProductsByCategory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID категории")
		return
	}

	products, err := h.Repository.GetProductsByCategory(uint(id))
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, productListToDTO(products))
}

// CreateProduct создает новый товар
// @Summary Создание товара
// @Description Создает новый товар от имени текущего продавца
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Данные товара"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products [post]
func (h *APIHandler) CreateProduct(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "ошибка авторизации")
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	product, err := h.Repository.CreateProduct(userID, req.Name, req.Description, req.Price, req.Stock, req.CategoryID)
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, productToDTO(*product))
}

// UpdateProduct обновляет товар
// @Summary Обновление товара
// @Description Обновляет переданные поля товара (только владелец-продавец)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateProductRequest true "Данные для обновления"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (h *APIHandler) UpdateProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID товара")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	if _, ok := h.requireProductOwner(c, uint(id)); !ok {
		return
	}

	product, err := h.Repository.UpdateProduct(uint(id), req.Name, req.Description, req.Price, req.Stock, req.CategoryID)
	if err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, productToDTO(*product))
}

// DeleteProduct логически удаляет товар
// @Summary Удаление товара
// @Description Помечает товар неактивным (только владелец-продавец)
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (h *APIHandler) DeleteProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID товара")
		return
	}

	if _, ok := h.requireProductOwner(c, uint(id)); !ok {
		return
	}

	if err := h.Repository.DeleteProduct(uint(id)); err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "товар помечен как неактивный", nil)
}

// UploadProductImage загружает изображение для товара
// @Summary Загрузка изображения товара
// @Description Загружает изображение товара в MinIO (только владелец-продавец)
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/image [post]
func (h *APIHandler) UploadProductImage(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID товара")
		return
	}

	product, ok := h.requireProductOwner(c, uint(id))
	if !ok {
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "хранилище изображений недоступно")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "файл изображения не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "ошибка чтения файла")
		return
	}

	filename, err := h.MinIOClient.UploadProductImage(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка загрузки изображения")
		return
	}

	// Старое изображение удаляем после успешной загрузки нового
	if product.ImageURL != nil && *product.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*product.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image from MinIO: %v", err)
		}
	}

	if err := h.Repository.SetProductImage(uint(id), filename); err != nil {
		h.repositoryErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "изображение загружено", gin.H{
		"image_url": filename,
	})
}
