package service

import (
	"context"
	"errors"
	"testing"
)

func TestNewsletterSubscribe(t *testing.T) {
	repos := setupRepos(t)
	svc := NewNewsletterService(repos.newsletter)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "Buyer@Example.COM ")
	if err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	if sub.Email != "buyer@example.com" {
		t.Errorf("邮箱应归一化为小写去空白，实际 %s", sub.Email)
	}
	if !sub.IsActive {
		t.Error("新订阅者应为活跃状态")
	}

	// 同一邮箱换大小写重复订阅
	_, err = svc.Subscribe(ctx, "buyer@example.com")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("重复邮箱应返回 ErrDuplicateEmail，实际: %v", err)
	}
}

func TestNewsletterSetActive(t *testing.T) {
	repos := setupRepos(t)
	svc := NewNewsletterService(repos.newsletter)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("订阅失败: %v", err)
	}

	updated, err := svc.SetActive(ctx, sub.ID, false)
	if err != nil {
		t.Fatalf("停用失败: %v", err)
	}
	if updated.IsActive {
		t.Error("应已停用")
	}

	if _, err := svc.SetActive(ctx, "missing-id", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("不存在的订阅者应返回 ErrNotFound，实际: %v", err)
	}
}
