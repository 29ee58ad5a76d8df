package handler

import (
	"shop/internal/app/middleware"
	"shop/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// ============ Категории (Categories) ============
	categories := router.Group("/categories")
	{
		// Публичный эндпоинт (без авторизации)
		categories.GET("", h.GetCategories)

		// Только для администраторов (управление деревом категорий)
		categories.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateCategory)
		categories.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateCategory)
		categories.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteCategory)
	}

	// ============ Товары (Products) ============
	products := router.Group("/products")
	{
		// Публичные эндпоинты
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/category/:id", h.GetProductsByCategory)
		products.GET("/:id/reviews", h.GetProductReviews)

		// Только для продавцов (владение проверяется в обработчике)
		products.POST("", authMiddleware.WithAuthCheck(role.Seller), h.CreateProduct)
		products.PUT("/:id", authMiddleware.WithAuthCheck(role.Seller), h.UpdateProduct)
		products.DELETE("/:id", authMiddleware.WithAuthCheck(role.Seller), h.DeleteProduct)
		products.POST("/:id/image", authMiddleware.WithAuthCheck(role.Seller), h.UploadProductImage)
	}

	// ============ Отзывы (Reviews) ============
	reviews := router.Group("/reviews")
	{
		// Публичный эндпоинт
		reviews.GET("", h.GetReviews)

		// Покупатели создают, администраторы удаляют
		reviews.POST("", authMiddleware.WithAuthCheck(role.Buyer), h.CreateReview)
		reviews.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteReview)
	}

	// ============ Аутентификация ============
	auth := router.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Buyer, role.Seller, role.Admin), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Buyer, role.Seller, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
