package ds

import "time"

// 4. Таблица отзывов
type Review struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	ProductID   uint      `gorm:"not null;index"`
	Comment     string    `gorm:"type:text;not null"`
	CommentDate time.Time `gorm:"not null;autoCreateTime"`
	Grade       int       `gorm:"type:int;not null;check:grade >= 1 AND grade <= 5"`
	IsActive    bool      `gorm:"type:boolean;default:true;not null"`

	User    User    `gorm:"foreignKey:UserID"`
	Product Product `gorm:"foreignKey:ProductID"`
}
