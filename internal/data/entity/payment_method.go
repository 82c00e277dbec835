package entity

type PaymentMethod struct {
	BaseSimple
	Code     string `db:"code"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}
