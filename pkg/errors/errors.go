package errors

import (
	"errors"
	"fmt"
)

// Kind 错误分类，决定 HTTP 状态码
type Kind int

const (
	KindInternal   Kind = iota // 500
	KindValidation             // 400
	KindNotFound               // 404
	KindConflict               // 409
	KindUnauthorized           // 401
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError 业务错误：Message 可安全返回给客户端
type AppError struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is 同 Kind + Code 视为同一业务错误，便于对 Wrap 后的哨兵错误做 errors.Is
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// New 创建业务错误（通常作为包级哨兵变量）
func New(kind Kind, code int, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Wrap 基于哨兵错误附加底层原因
func Wrap(sentinel *AppError, cause error) *AppError {
	return &AppError{Kind: sentinel.Kind, Code: sentinel.Code, Message: sentinel.Message, Err: cause}
}

// Validation 构造一次性的参数错误
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: 10001, Message: message}
}

// KindOf 返回错误分类，非 AppError 一律视为内部错误
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As 提取 AppError
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
