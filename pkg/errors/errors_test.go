package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	sentinel := NotFound("公告不存在")
	wrapped := fmt.Errorf("查询失败: %w", sentinel)

	if KindOf(wrapped) != KindNotFound {
		t.Errorf("期望 KindNotFound，实际 %v", KindOf(wrapped))
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Error("普通错误应归类为内部错误")
	}
}

func TestAppError_Is(t *testing.T) {
	sentinel := Forbidden("权限不足")
	if !errors.Is(Forbidden("权限不足"), sentinel) {
		t.Error("同类同消息应匹配")
	}
	if errors.Is(Forbidden("其他消息"), sentinel) {
		t.Error("消息不同不应匹配")
	}

	cause := errors.New("driver failure")
	wrapped := Wrap(KindInternal, "数据库错误", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("Wrap 应保留底层错误")
	}
}

func TestKind_HTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:      http.StatusBadRequest,
		KindUnauthenticated: http.StatusUnauthorized,
		KindForbidden:       http.StatusForbidden,
		KindNotFound:        http.StatusNotFound,
		KindConflict:        http.StatusConflict,
		KindInternal:        http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := kind.HTTPStatus(); got != want {
			t.Errorf("%s: 期望 %d，实际 %d", kind, want, got)
		}
	}
}
