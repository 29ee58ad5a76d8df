package repository

import (
	"fmt"

	"shop/internal/app/ds"
)

// Методы для работы с товарами

// Получить все активные товары
func (r *Repository) GetActiveProducts() ([]ds.Product, error) {
	var products []ds.Product
	err := r.db.Where("is_active = ?", true).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Получить активный товар по ID
func (r *Repository) GetProductByID(id uint) (*ds.Product, error) {
	var product ds.Product
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&product).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// Получить активные товары категории вместе с её активными дочерними категориями
func (r *Repository) GetProductsByCategory(categoryID uint) ([]ds.Product, error) {
	if _, err := r.GetCategoryByID(categoryID); err != nil {
		return nil, fmt.Errorf("категория: %w", err)
	}

	childIDs, err := r.GetChildCategoryIDs(categoryID)
	if err != nil {
		return nil, err
	}
	categoryIDs := append([]uint{categoryID}, childIDs...)

	var products []ds.Product
	err = r.db.Where("category_id IN ? AND is_active = ?", categoryIDs, true).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Создать товар. Категория должна существовать и быть активной
func (r *Repository) CreateProduct(sellerID uint, name string, description *string, price float64, stock int, categoryID uint) (*ds.Product, error) {
	if _, err := r.GetCategoryByID(categoryID); err != nil {
		return nil, fmt.Errorf("категория: %w", err)
	}

	product := ds.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		IsActive:    true,
		Rating:      0,
		CategoryID:  categoryID,
		SellerID:    sellerID,
	}
	if err := r.db.Create(&product).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// Обновить товар. Меняются только переданные поля.
// Права продавца проверяются в обработчике до вызова
func (r *Repository) UpdateProduct(id uint, name, description *string, price *float64, stock *int, categoryID *uint) (*ds.Product, error) {
	product, err := r.GetProductByID(id)
	if err != nil {
		return nil, fmt.Errorf("товар: %w", err)
	}

	updates := map[string]interface{}{}

	if categoryID != nil {
		if _, err := r.GetCategoryByID(*categoryID); err != nil {
			return nil, fmt.Errorf("категория: %w", err)
		}
		updates["category_id"] = *categoryID
		product.CategoryID = *categoryID
	}
	if name != nil {
		updates["name"] = *name
		product.Name = *name
	}
	if description != nil {
		updates["description"] = *description
		product.Description = description
	}
	if price != nil {
		updates["price"] = *price
		product.Price = *price
	}
	if stock != nil {
		updates["stock"] = *stock
		product.Stock = *stock
	}

	if len(updates) == 0 {
		return product, nil
	}

	err = r.db.Model(&ds.Product{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, translateError(err)
	}
	return product, nil
}

// Логическое удаление товара. Отзывы не затрагиваются
func (r *Repository) DeleteProduct(id uint) error {
	if _, err := r.GetProductByID(id); err != nil {
		return fmt.Errorf("товар: %w", err)
	}

	return r.db.Model(&ds.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// Установить имя файла изображения товара
func (r *Repository) SetProductImage(id uint, imageURL string) error {
	return r.db.Model(&ds.Product{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}
