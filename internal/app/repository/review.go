package repository

import (
	"database/sql"
	"fmt"
	"math"

	"shop/internal/app/ds"
)

// Методы для работы с отзывами и пересчёта рейтинга товара

// Получить все активные отзывы
func (r *Repository) GetActiveReviews() ([]ds.Review, error) {
	var reviews []ds.Review
	err := r.db.Where("is_active = ?", true).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Получить активные отзывы товара
func (r *Repository) GetReviewsByProduct(productID uint) ([]ds.Review, error) {
	if _, err := r.GetProductByID(productID); err != nil {
		return nil, fmt.Errorf("товар: %w", err)
	}

	var reviews []ds.Review
	err := r.db.Where("product_id = ? AND is_active = ?", productID, true).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Создать отзыв и пересчитать рейтинг товара.
// Отзыв фиксируется отдельной записью; если пересчёт рейтинга не удался,
// ошибка возвращается, но уже созданный отзыв не откатывается
func (r *Repository) CreateReview(userID, productID uint, comment string, grade int) (*ds.Review, error) {
	if _, err := r.GetProductByID(productID); err != nil {
		return nil, fmt.Errorf("товар: %w", err)
	}

	if grade < 1 || grade > 5 {
		return nil, fmt.Errorf("%w: оценка должна быть от 1 до 5", ErrConflict)
	}

	review := ds.Review{
		UserID:    userID,
		ProductID: productID,
		Comment:   comment,
		Grade:     grade,
		IsActive:  true,
	}
	if err := r.db.Create(&review).Error; err != nil {
		return nil, translateError(err)
	}

	if err := r.recalculateProductRating(productID); err != nil {
		return nil, fmt.Errorf("пересчёт рейтинга товара %d: %w", productID, err)
	}
	return &review, nil
}

// Логически удалить отзыв и пересчитать рейтинг товара
func (r *Repository) DeleteReview(id uint) error {
	var review ds.Review
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&review).Error
	if err != nil {
		return fmt.Errorf("отзыв: %w", translateError(err))
	}

	err = r.db.Model(&ds.Review{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		return err
	}

	if err := r.recalculateProductRating(review.ProductID); err != nil {
		return fmt.Errorf("пересчёт рейтинга товара %d: %w", review.ProductID, err)
	}
	return nil
}

// recalculateProductRating записывает в товар среднюю оценку активных отзывов.
// Если активных отзывов нет, рейтинг равен 0
func (r *Repository) recalculateProductRating(productID uint) error {
	var avg sql.NullFloat64
	row := r.db.Model(&ds.Review{}).
		Where("product_id = ? AND is_active = ?", productID, true).
		Select("AVG(grade)").Row()
	if err := row.Scan(&avg); err != nil {
		return err
	}

	rating := 0.0
	if avg.Valid {
		rating = RoundRating(avg.Float64)
	}

	return r.db.Model(&ds.Product{}).
		Where("id = ?", productID).
		Update("rating", rating).Error
}

// RoundRating округляет средний балл до 2 знаков после запятой
// (половина округляется вверх)
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}
