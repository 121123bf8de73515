package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/polidanilo/LNI/internal/model"
)

// Actor 当前请求的已认证用户
type Actor struct {
	ID       int64
	Username string
}

// ── 日期 ──

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// parseOptionalDate 空串返回 nil
func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// today 取 now 所在时区的日历日期
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── 局部更新 ──
// nil 与空白字符串一律忽略

func patchString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}

func patchOptionalString(dst **string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		v := *src
		*dst = &v
	}
}

func patchDate(dst *time.Time, src *string) error {
	if src == nil || strings.TrimSpace(*src) == "" {
		return nil
	}
	t, err := parseDate(*src)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// ── 筛选参数 ──

// resolveShiftIDs shift_ids（逗号分隔）优先于 shift_id
func resolveShiftIDs(single int64, list string) ([]int64, error) {
	if strings.TrimSpace(list) != "" {
		var ids []int64
		for _, part := range strings.Split(list, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, ErrInvalidShiftIDs
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	if single > 0 {
		return []int64{single}, nil
	}
	return nil, nil
}

// ── 错误映射 ──

// notFoundAs 将 gorm.ErrRecordNotFound 映射为模块哨兵错误
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
