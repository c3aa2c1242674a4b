package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errSentinel = errors.New("sentinel")

func TestError_Unwrap(t *testing.T) {
	err := New(KindNotFound, errSentinel, "Activity not found")

	if !errors.Is(err, errSentinel) {
		t.Error("errors.Is 应能识别哨兵错误")
	}
	if err.Error() != "Activity not found" {
		t.Errorf("期望 Error()=Activity not found，实际=%s", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("signup: %w", New(KindInvalidRequest, errSentinel, "dup"))

	if KindOf(wrapped) != KindInvalidRequest {
		t.Errorf("期望 KindInvalidRequest，实际=%s", KindOf(wrapped))
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Error("普通错误应归为 KindInternal")
	}
}

func TestDetailOf(t *testing.T) {
	if got := DetailOf(New(KindNotFound, errSentinel, "未找到活动"), "x"); got != "未找到活动" {
		t.Errorf("期望 未找到活动，实际=%s", got)
	}
	if got := DetailOf(errors.New("boom"), "fallback"); got != "fallback" {
		t.Errorf("期望 fallback，实际=%s", got)
	}
}

func TestError_FallbackText(t *testing.T) {
	if got := New(KindCapacityExceeded, nil, "").Error(); got != "capacity_exceeded" {
		t.Errorf("期望 capacity_exceeded，实际=%s", got)
	}
	if got := New(KindNotFound, errSentinel, "").Error(); got != "sentinel" {
		t.Errorf("期望 sentinel，实际=%s", got)
	}
}
