package models

import (
	"gorm.io/gorm"
	"time"
)

// PaymentMethod представляет способ оплаты
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "CARD"     // Оплата картой
	PaymentMethodCash     PaymentMethod = "CASH"     // Оплата наличными
	PaymentMethodTransfer PaymentMethod = "TRANSFER" // Банковский перевод
)

// Payment представляет запись об оплате обучения.
// Наличие записи в календарном месяце закрывает этот месяц для ученика;
// уникальность пары (ученик, месяц) обеспечивается индексом в базе
type Payment struct {
	gorm.Model
	StudentID   uint          `gorm:"not null;index"`
	Student     Student       `gorm:"foreignKey:StudentID"`
	PaymentDate time.Time     `gorm:"type:date;not null"` // Дата внесения оплаты
	Amount      int64         `gorm:"not null"`           // Внесенная сумма
	Method      PaymentMethod `gorm:"type:varchar(20);not null;default:'CARD'"`
	Memo        string        `gorm:"size:200"`
}

// TableName возвращает имя таблицы для модели Payment
func (Payment) TableName() string {
	return "payments"
}
