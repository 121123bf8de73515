package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order 采购单表，对应 orders
type Order struct {
	ID          int64           `gorm:"primaryKey"                                  json:"id"`
	Title       string          `gorm:"type:varchar(255);not null"                  json:"title"`
	Description *string         `gorm:"type:text"                                   json:"description,omitempty"`
	Notes       *string         `gorm:"type:text"                                   json:"notes,omitempty"`
	CreatedBy   *string         `gorm:"type:varchar(100)"                           json:"created_by,omitempty"` // 展示用署名，可与用户名重复
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"                 json:"amount"`
	Category    string          `gorm:"type:varchar(100);not null"                  json:"category"`
	Status      Status          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderDate   time.Time       `gorm:"type:date;not null"                          json:"order_date"`
	UserID      int64           `gorm:"not null"                                    json:"user_id"`
	ShiftID     int64           `gorm:"not null"                                    json:"shift_id"`
	Timestamps

	// 关联
	User  *User  `gorm:"foreignKey:UserID"  json:"user,omitempty"`
	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string { return "orders" }

// IsCompleted 是否已完成
func (o *Order) IsCompleted() bool { return o.Status == StatusCompleted }
