package util

import (
	"strconv"
)

// ParsePageParams 解析分页参数，非法或缺省时回落到默认值
func ParsePageParams(pageStr, limitStr string) (int, int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
