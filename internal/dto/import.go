package dto

// ImportRowError 导入失败行
type ImportRowError struct {
	Row    int    `json:"row"` // Excel 行号（从 1 开始，含表头）
	Reason string `json:"reason"`
}

// ImportResponse 批量导入结果，单行失败不影响其他行
type ImportResponse struct {
	Total   int              `json:"total"`
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors"`
}

// SeedResponse 参考数据初始化结果
type SeedResponse struct {
	Boats   int  `json:"boats"`
	Parts   int  `json:"parts"`
	Skipped bool `json:"skipped"`
}
