package model

import "time"

// Work 维护工作表，对应 works
type Work struct {
	ID          int64        `gorm:"primaryKey"                                    json:"id"`
	Title       string       `gorm:"type:varchar(255);not null"                    json:"title"`
	Description *string      `gorm:"type:text"                                     json:"description,omitempty"`
	Category    WorkCategory `gorm:"type:varchar(20);not null"                     json:"category"`
	Status      Status       `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	WorkDate    time.Time    `gorm:"type:date;not null"                            json:"work_date"`
	UserID      int64        `gorm:"not null"                                      json:"user_id"`
	ShiftID     int64        `gorm:"not null"                                      json:"shift_id"`
	Timestamps

	// 关联
	User  *User  `gorm:"foreignKey:UserID"  json:"user,omitempty"`
	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

// TableName 指定表名
func (Work) TableName() string { return "works" }

// IsCompleted 是否已完成
func (w *Work) IsCompleted() bool { return w.Status == StatusCompleted }
