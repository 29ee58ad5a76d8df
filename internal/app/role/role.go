package role

// Роли пользователей интернет-магазина
type Role int

const (
	Buyer  Role = iota // 0 - покупатель
	Seller             // 1 - продавец
	Admin              // 2 - администратор
)

// IsValid проверяет, что роль входит в допустимый набор
func (r Role) IsValid() bool {
	switch r {
	case Buyer, Seller, Admin:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case Buyer:
		return "buyer"
	case Seller:
		return "seller"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}
