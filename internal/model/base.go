package model

import "time"

// Timestamps 通用时间戳字段（orders / works / boat_problems 嵌入）
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// DateLayout 日期字段统一格式
const DateLayout = "2006-01-02"
