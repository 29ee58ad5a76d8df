package ds

// 2. Таблица категорий (самоссылающееся дерево через parent_id)
type Category struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(50);not null"`
	ParentID *uint  `gorm:"default:null;index"` // NULL для корневых категорий
	IsActive bool   `gorm:"type:boolean;default:true;not null"`

	Parent *Category `gorm:"foreignKey:ParentID"`
}
