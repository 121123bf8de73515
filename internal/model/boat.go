package model

import "time"

// Boat 船只表，对应 boats
type Boat struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	Type      BoatType  `gorm:"type:varchar(20);not null"          json:"type"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Boat) TableName() string { return "boats" }

// BoatPart 船只部件参考表，对应 boat_parts（仅用于界面下拉选项）
type BoatPart struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	BoatType  BoatType  `gorm:"type:varchar(20);not null"          json:"boat_type"`
	PartName  string    `gorm:"type:varchar(100);not null"         json:"part_name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (BoatPart) TableName() string { return "boat_parts" }
