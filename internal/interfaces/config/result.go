// Package config
package config

import "fmt"

type validType int

const (
	PASS validType = iota
	FAIL
)

type ValidResult struct {
	validType validType
	err       error
	originErr error
}

func ValidPass() *ValidResult {
	return &ValidResult{validType: PASS, err: nil, originErr: nil}
}

func ValidFail(err error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err}
}

func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err, originErr: originErr}
}

// ValidFailF 以格式化字符串构造校验失败结果
func ValidFailF(format string, v ...interface{}) *ValidResult {
	return ValidFail(fmt.Errorf(format, v...))
}

func (r *ValidResult) IsFail() bool {
	return r.validType == FAIL
}

func (r *ValidResult) Error() error {
	return r.err
}

// OriginErr 返回导致校验失败的底层错误, 没有时返回 Error()
func (r *ValidResult) OriginErr() error {
	if r.originErr == nil {
		return r.err
	}
	return r.originErr
}
