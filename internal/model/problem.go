package model

import "time"

// BoatProblem 船只故障表，对应 boat_problems
// ResolvedDate 仅在 closed 状态下有值
type BoatProblem struct {
	ID           int64         `gorm:"primaryKey"                               json:"id"`
	BoatID       int64         `gorm:"not null"                                 json:"boat_id"`
	Description  string        `gorm:"type:text;not null"                       json:"description"`
	PartAffected *string       `gorm:"type:varchar(100)"                        json:"part_affected,omitempty"`
	Status       ProblemStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ReportedBy   int64         `gorm:"not null"                                 json:"reported_by"`
	ReportedDate time.Time     `gorm:"type:date;not null"                       json:"reported_date"`
	ResolvedDate *time.Time    `gorm:"type:date"                                json:"resolved_date,omitempty"`
	ShiftID      int64         `gorm:"not null"                                 json:"shift_id"`
	Timestamps

	// 关联
	Boat  *Boat  `gorm:"foreignKey:BoatID"  json:"boat,omitempty"`
	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

// TableName 指定表名
func (BoatProblem) TableName() string { return "boat_problems" }
