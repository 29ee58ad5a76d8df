package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop/internal/app/config"
	"shop/internal/app/ds"
	"shop/internal/app/handler"
	"shop/internal/app/middleware"
	"shop/internal/app/repository"
	"shop/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *repository.Repository, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "test",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	authHandler := handler.NewAuthHandler(repo, nil, cfg)
	apiHandler := handler.NewAPIHandler(repo, nil, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(nil, cfg)

	router := gin.New()
	apiHandler.RegisterAPIRoutes(router, authMiddleware)

	return router, repo, cfg
}

func signToken(t *testing.T, cfg *config.Config, userID uint, userRole role.Role) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(cfg.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(cfg.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "shop-backend",
		},
		UserID: userID,
		Role:   userRole,
	})

	signed, err := token.SignedString([]byte(cfg.JWT.Token))
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := doRequest(router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong"}`, w.Body.String())
}

func TestCategoryRoutesRequireAdmin(t *testing.T) {
	router, repo, cfg := newTestServer(t)

	buyer, err := repo.CreateUser("buyer1", "hash", "Покупатель", role.Buyer)
	require.NoError(t, err)
	admin, err := repo.CreateUser("admin1", "hash", "Администратор", role.Admin)
	require.NoError(t, err)

	body := map[string]interface{}{"name": "Электроника"}

	// Без токена
	w := doRequest(router, http.MethodPost, "/categories", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С ролью покупателя
	w = doRequest(router, http.MethodPost, "/categories", signToken(t, cfg, buyer.ID, role.Buyer), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// С ролью администратора
	w = doRequest(router, http.MethodPost, "/categories", signToken(t, cfg, admin.ID, role.Admin), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateCategorySelfParentRoute(t *testing.T) {
	router, repo, cfg := newTestServer(t)

	admin, err := repo.CreateUser("admin1", "hash", "Администратор", role.Admin)
	require.NoError(t, err)
	category, err := repo.CreateCategory("Электроника", nil)
	require.NoError(t, err)

	token := signToken(t, cfg, admin.ID, role.Admin)
	body := map[string]interface{}{"parent_id": category.ID}

	w := doRequest(router, http.MethodPut, fmt.Sprintf("/categories/%d", category.ID), token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "не может быть родителем")
}

func TestDeleteCategoryRoute(t *testing.T) {
	router, repo, cfg := newTestServer(t)

	admin, err := repo.CreateUser("admin1", "hash", "Администратор", role.Admin)
	require.NoError(t, err)
	category, err := repo.CreateCategory("Электроника", nil)
	require.NoError(t, err)

	token := signToken(t, cfg, admin.ID, role.Admin)

	w := doRequest(router, http.MethodDelete, fmt.Sprintf("/categories/%d", category.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])

	// Категория пропала из публичного списка
	w = doRequest(router, http.MethodGet, "/categories", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Электроника")

	// Повторное удаление: категория уже неактивна
	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/categories/%d", category.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductOwnership(t *testing.T) {
	router, repo, cfg := newTestServer(t)

	category, err := repo.CreateCategory("Электроника", nil)
	require.NoError(t, err)
	seller1, err := repo.CreateUser("seller1", "hash", "Первый продавец", role.Seller)
	require.NoError(t, err)
	seller2, err := repo.CreateUser("seller2", "hash", "Второй продавец", role.Seller)
	require.NoError(t, err)

	token1 := signToken(t, cfg, seller1.ID, role.Seller)
	token2 := signToken(t, cfg, seller2.ID, role.Seller)

	// Первый продавец создает товар
	createBody := map[string]interface{}{
		"name":        "Ноутбук",
		"price":       99990,
		"stock":       10,
		"category_id": category.ID,
	}
	w := doRequest(router, http.MethodPost, "/products", token1, createBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	productID := uint(created["id"].(float64))
	assert.Equal(t, float64(seller1.ID), created["seller_id"])

	updateBody := map[string]interface{}{"price": 89990}

	// Чужой продавец не может изменять товар
	w = doRequest(router, http.MethodPut, fmt.Sprintf("/products/%d", productID), token2, updateBody)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/products/%d", productID), token2, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Владелец может
	w = doRequest(router, http.MethodPut, fmt.Sprintf("/products/%d", productID), token1, updateBody)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/products/%d", productID), token1, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewFlow(t *testing.T) {
	router, repo, cfg := newTestServer(t)

	category, err := repo.CreateCategory("Электроника", nil)
	require.NoError(t, err)
	seller, err := repo.CreateUser("seller1", "hash", "Продавец", role.Seller)
	require.NoError(t, err)
	buyer, err := repo.CreateUser("buyer1", "hash", "Покупатель", role.Buyer)
	require.NoError(t, err)
	admin, err := repo.CreateUser("admin1", "hash", "Администратор", role.Admin)
	require.NoError(t, err)
	product, err := repo.CreateProduct(seller.ID, "Ноутбук", nil, 99990, 10, category.ID)
	require.NoError(t, err)

	buyerToken := signToken(t, cfg, buyer.ID, role.Buyer)
	adminToken := signToken(t, cfg, admin.ID, role.Admin)

	// Продавец не может оставлять отзывы
	reviewBody := map[string]interface{}{
		"product_id": product.ID,
		"comment":    "Отличный товар",
		"grade":      4,
	}
	w := doRequest(router, http.MethodPost, "/reviews", signToken(t, cfg, seller.ID, role.Seller), reviewBody)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Покупатель создает отзыв, рейтинг пересчитывается
	w = doRequest(router, http.MethodPost, "/reviews", buyerToken, reviewBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	reviewID := uint(created["id"].(float64))

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var productResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productResponse))
	assert.Equal(t, 4.0, productResponse["rating"])

	// Оценка вне диапазона отклоняется валидацией
	badBody := map[string]interface{}{
		"product_id": product.ID,
		"comment":    "Супер",
		"grade":      6,
	}
	w = doRequest(router, http.MethodPost, "/reviews", buyerToken, badBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Удалять отзывы может только администратор
	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// После удаления последнего отзыва рейтинг обнуляется
	w = doRequest(router, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productResponse))
	assert.Equal(t, 0.0, productResponse["rating"])
}

func TestGetProductsByCategoryRoute(t *testing.T) {
	router, repo, _ := newTestServer(t)

	parent, err := repo.CreateCategory("Электроника", nil)
	require.NoError(t, err)
	child, err := repo.CreateCategory("Ноутбуки", &parent.ID)
	require.NoError(t, err)
	seller, err := repo.CreateUser("seller1", "hash", "Продавец", role.Seller)
	require.NoError(t, err)

	_, err = repo.CreateProduct(seller.ID, "Телевизор", nil, 49990, 5, parent.ID)
	require.NoError(t, err)
	_, err = repo.CreateProduct(seller.ID, "Ультрабук", nil, 99990, 3, child.ID)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, fmt.Sprintf("/products/category/%d", parent.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2.0, response["total"])

	// Несуществующая категория
	w = doRequest(router, http.MethodGet, "/products/category/42", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	router, _, _ := newTestServer(t)

	registerBody := map[string]interface{}{
		"login":     "buyer1",
		"password":  "secret123",
		"full_name": "Тестовый покупатель",
		"role":      0,
	}
	w := doRequest(router, http.MethodPost, "/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered["data"]) // JWT токен

	// Повторная регистрация с тем же логином
	w = doRequest(router, http.MethodPost, "/auth/register", "", registerBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Вход с верным паролем
	loginBody := map[string]interface{}{
		"login":    "buyer1",
		"password": "secret123",
	}
	w = doRequest(router, http.MethodPost, "/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	assert.Equal(t, "buyer", loggedIn["role"])
	assert.NotEmpty(t, loggedIn["token"])

	// Вход с неверным паролем
	loginBody["password"] = "wrong"
	w = doRequest(router, http.MethodPost, "/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := doRequest(router, http.MethodPost, "/categories", "not-a-jwt", map[string]interface{}{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
