package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Доменные ошибки. Обработчики сопоставляют их с HTTP статусами через errors.Is.
var (
	ErrNotFound         = errors.New("запись не найдена")
	ErrInvalidOperation = errors.New("недопустимая операция")
	ErrConflict         = errors.New("нарушение целостности данных")
)

// translateError приводит ошибки gorm и драйвера БД к доменным
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	// Нарушения ограничений (CHECK, FK, UNIQUE) у postgres и sqlite
	// различаются текстом, но везде содержат слово constraint
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "constraint") || strings.Contains(msg, "duplicate key") {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}

	return err
}
