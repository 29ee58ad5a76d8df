package repository

import (
	"fmt"

	"shop/internal/app/ds"
)

// Методы для работы с категориями (дерево через parent_id)

// Получить все активные категории
func (r *Repository) GetActiveCategories() ([]ds.Category, error) {
	var categories []ds.Category
	err := r.db.Where("is_active = ?", true).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Получить активную категорию по ID
func (r *Repository) GetCategoryByID(id uint) (*ds.Category, error) {
	var category ds.Category
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// Создать категорию. Родитель, если указан, должен существовать и быть активным
func (r *Repository) CreateCategory(name string, parentID *uint) (*ds.Category, error) {
	if parentID != nil {
		if _, err := r.GetCategoryByID(*parentID); err != nil {
			return nil, fmt.Errorf("родительская категория: %w", err)
		}
	}

	category := ds.Category{
		Name:     name,
		ParentID: parentID,
		IsActive: true,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// Обновить категорию. Меняются только переданные поля
func (r *Repository) UpdateCategory(id uint, name *string, parentID *uint) (*ds.Category, error) {
	category, err := r.GetCategoryByID(id)
	if err != nil {
		return nil, fmt.Errorf("категория: %w", err)
	}

	updates := map[string]interface{}{}

	if parentID != nil {
		// При обновлении родитель проверяется без фильтра активности
		var parent ds.Category
		if err := r.db.First(&parent, *parentID).Error; err != nil {
			return nil, fmt.Errorf("родительская категория: %w", translateError(err))
		}
		// Категория не может быть родителем самой себя
		if parent.ID == id {
			return nil, fmt.Errorf("%w: категория не может быть родителем самой себя", ErrInvalidOperation)
		}
		updates["parent_id"] = *parentID
		category.ParentID = parentID
	}

	if name != nil {
		updates["name"] = *name
		category.Name = *name
	}

	if len(updates) == 0 {
		return category, nil
	}

	err = r.db.Model(&ds.Category{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, translateError(err)
	}
	return category, nil
}

// Логическое удаление категории. Товары и дочерние категории не затрагиваются
func (r *Repository) DeleteCategory(id uint) error {
	if _, err := r.GetCategoryByID(id); err != nil {
		return fmt.Errorf("категория: %w", err)
	}

	return r.db.Model(&ds.Category{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// Получить ID активных дочерних категорий (только один уровень вложенности)
func (r *Repository) GetChildCategoryIDs(id uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ds.Category{}).
		Where("parent_id = ? AND is_active = ?", id, true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
