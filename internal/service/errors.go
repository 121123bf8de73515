package service

import (
	"fmt"

	pkgerrors "github.com/polidanilo/LNI/pkg/errors"
)

// ── 业务错误 ──
// 消息沿用客户端既有的英文提示

var (
	ErrInvalidCredentials = pkgerrors.Unauthorized(40101, "Incorrect username or password")
	ErrUserNotFound       = pkgerrors.NotFound(40401, "User not found")
	ErrUsernameTaken      = pkgerrors.Conflict(40901, "Username already registered")

	ErrSeasonNotFound  = pkgerrors.NotFound(40402, "Season not found")
	ErrSeasonExists    = pkgerrors.Conflict(40902, "Season already exists")
	ErrSeasonHasShifts = pkgerrors.Conflict(40903, "Season still has shifts")
	ErrSeasonNoShifts  = pkgerrors.Validation(40002, "No shifts in this season")

	ErrShiftNotFound    = pkgerrors.NotFound(40403, "Shift not found")
	ErrShiftDuplicate   = pkgerrors.Conflict(40904, "Shift number already exists in this season")
	ErrShiftDateInvalid = pkgerrors.Validation(40003, "end_date must not be before start_date")
	ErrShiftInUse       = pkgerrors.Conflict(40905, "Shift is referenced by orders, works or problems")

	ErrBoatNotFound = pkgerrors.NotFound(40404, "Boat not found")
	ErrBoatInUse    = pkgerrors.Conflict(40906, "Boat has reported problems")

	ErrOrderNotFound   = pkgerrors.NotFound(40405, "Order not found")
	ErrWorkNotFound    = pkgerrors.NotFound(40406, "Work not found")
	ErrProblemNotFound = pkgerrors.NotFound(40407, "Problem not found")

	ErrInvalidDate     = pkgerrors.Validation(40004, "Invalid date, expected YYYY-MM-DD")
	ErrInvalidShiftIDs = pkgerrors.Validation(40005, "Invalid shift_ids")
	ErrAmountNegative  = pkgerrors.Validation(40006, "amount must not be negative")
	ErrInvalidUserID   = pkgerrors.Validation(40007, "user_id must be greater than 0")

	ErrImportNoData      = pkgerrors.Validation(40010, "The spreadsheet has no data rows")
	ErrImportBadHeader   = pkgerrors.Validation(40011, "The header row lacks required columns (titolo, importo, categoria, data, turno)")
	ErrImportBadFile     = pkgerrors.Validation(40012, "Unable to read the spreadsheet")
	ErrImportTooManyRows = pkgerrors.Validation(40013, fmt.Sprintf("The spreadsheet exceeds %d data rows", maxImportRows))

	ErrNotOwner = pkgerrors.Forbidden(40301, "Not allowed to modify this record")
)
