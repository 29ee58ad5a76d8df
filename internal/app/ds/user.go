package ds

import "shop/internal/app/role"

// 1. Таблица пользователей
type User struct {
	ID       uint      `gorm:"primaryKey"`
	Login    string    `gorm:"type:varchar(50);unique;not null"`
	Password string    `gorm:"type:varchar(255);not null"`
	FullName string    `gorm:"type:varchar(100)"`
	Role     role.Role `gorm:"type:int;default:0;not null"` // 0 - buyer, 1 - seller, 2 - admin
}
