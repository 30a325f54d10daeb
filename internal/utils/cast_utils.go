// Package utils
package utils

import (
	"strconv"
	"strings"
)

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return defaultValue
	}
	return result
}

// StrToUint 解析非负整数, 用于控制台读取编号
func StrToUint(str string) (uint, bool) {
	result, err := strconv.ParseUint(strings.TrimSpace(str), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(result), true
}
