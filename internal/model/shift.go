package model

import "time"

// Shift 轮次表，对应 shifts
// (season_id, shift_number) 由 unique_season_shift_number 约束保证唯一
type Shift struct {
	ID          int64     `gorm:"primaryKey"                                  json:"id"`
	SeasonID    int64     `gorm:"not null;uniqueIndex:unique_season_shift_number" json:"season_id"`
	ShiftNumber int       `gorm:"not null;uniqueIndex:unique_season_shift_number" json:"shift_number"`
	StartDate   time.Time `gorm:"type:date;not null"                          json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null"                          json:"end_date"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"          json:"created_at"`

	// 关联
	Season *Season `gorm:"foreignKey:SeasonID" json:"season,omitempty"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }
