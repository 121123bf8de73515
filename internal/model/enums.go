package model

// BoatType 船只类型
type BoatType string

const (
	BoatTypeGommone   BoatType = "Gommone"
	BoatTypeOptimist  BoatType = "Optimist"
	BoatTypeFly       BoatType = "Fly"
	BoatTypeEquipe    BoatType = "Equipe"
	BoatTypeCaravella BoatType = "Caravella"
	BoatTypeTrident   BoatType = "Trident"
	BoatTypeCanoe     BoatType = "Canoe"
)

// BoatTypes 全部船只类型（有序）
var BoatTypes = []BoatType{
	BoatTypeGommone, BoatTypeOptimist, BoatTypeFly, BoatTypeEquipe,
	BoatTypeCaravella, BoatTypeTrident, BoatTypeCanoe,
}

// Valid 判断是否为合法船只类型
func (t BoatType) Valid() bool {
	for _, v := range BoatTypes {
		if v == t {
			return true
		}
	}
	return false
}

// WorkCategory 维护工作分类
type WorkCategory string

const (
	WorkCategoryCampo    WorkCategory = "Campo"
	WorkCategoryOfficina WorkCategory = "Officina"
	WorkCategoryServizi  WorkCategory = "Servizi"
	WorkCategoryGommoni  WorkCategory = "Gommoni"
	WorkCategoryBarche   WorkCategory = "Barche"
	WorkCategoryVele     WorkCategory = "Vele"
	WorkCategoryAltro    WorkCategory = "Altro"
)

// WorkCategories 全部工作分类（有序）
var WorkCategories = []WorkCategory{
	WorkCategoryCampo, WorkCategoryOfficina, WorkCategoryServizi, WorkCategoryGommoni,
	WorkCategoryBarche, WorkCategoryVele, WorkCategoryAltro,
}

// Valid 判断是否为合法工作分类
func (c WorkCategory) Valid() bool {
	for _, v := range WorkCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Status 采购单与维护工作共用的状态
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid 判断是否为合法状态
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// ProblemStatus 船只故障状态
type ProblemStatus string

const (
	ProblemOpen   ProblemStatus = "open"
	ProblemClosed ProblemStatus = "closed"
)

// Valid 判断是否为合法故障状态
func (s ProblemStatus) Valid() bool {
	return s == ProblemOpen || s == ProblemClosed
}
