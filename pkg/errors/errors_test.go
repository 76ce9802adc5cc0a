package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errSample = New(KindConflict, 40001, "邮箱已存在")

func TestAppError_IsThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Wrap(errSample, errors.New("duplicate key")))

	if !errors.Is(wrapped, errSample) {
		t.Error("Wrap 后应仍能匹配哨兵错误")
	}
	if errors.Is(wrapped, New(KindConflict, 40002, "其他")) {
		t.Error("不同 Code 不应匹配")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"业务冲突", errSample, KindConflict},
		{"参数错误", Validation("缺少字段"), KindValidation},
		{"包装后的业务错误", fmt.Errorf("x: %w", errSample), KindConflict},
		{"普通错误", errors.New("boom"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf()=%s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppError_ErrorMessage(t *testing.T) {
	if errSample.Error() != "邮箱已存在" {
		t.Errorf("unexpected message: %s", errSample.Error())
	}
	e := Wrap(errSample, errors.New("pg 23505"))
	if e.Error() != "邮箱已存在: pg 23505" {
		t.Errorf("unexpected wrapped message: %s", e.Error())
	}
}
