// Package global
package global

import "context"

type Callable interface {
	Invoke(ctx context.Context) error
}

// CallableFunc 允许普通函数作为清理回调注册
type CallableFunc func(ctx context.Context) error

func (f CallableFunc) Invoke(ctx context.Context) error { return f(ctx) }
