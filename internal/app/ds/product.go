package ds

// 3. Таблица товаров
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description *string `gorm:"type:varchar(500)"` // Nullable
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	ImageURL    *string `gorm:"type:varchar(200)"` // Nullable
	Stock       int     `gorm:"type:int;not null"`
	IsActive    bool    `gorm:"type:boolean;default:true;not null"`
	Rating      float64 `gorm:"type:decimal(4,2);default:0;not null"` // Вычисляемое поле: средняя оценка активных отзывов
	CategoryID  uint    `gorm:"not null;index"`
	SellerID    uint    `gorm:"not null;index"`

	Category Category `gorm:"foreignKey:CategoryID"`
	Seller   User     `gorm:"foreignKey:SellerID"`
}
