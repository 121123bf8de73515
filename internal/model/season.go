package model

import "time"

// Season 季节表，对应 seasons（year 唯一）
type Season struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	Year      int       `gorm:"not null;unique"                    json:"year"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 关联
	Shifts []Shift `gorm:"foreignKey:SeasonID" json:"shifts,omitempty"`
}

// TableName 指定表名
func (Season) TableName() string { return "seasons" }
