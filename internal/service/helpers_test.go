package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// seedDepartment 写入一个部门并返回其 ID
func seedDepartment(db *memDB, name string) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.id()
	db.departments[id] = &model.Department{ID: id, Name: name, CreatedAt: time.Now()}
	return id
}

// seedAccount 写入用户及其社员档案，返回调用者身份与社员 ID
func seedAccount(t *testing.T, db *memDB, username string, role policy.Role, deptID *int64) (*policy.Identity, int64) {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x", Role: string(role), IsActive: true}
	member := &model.Member{Name: username, DepartmentID: deptID, Status: model.MemberStatusActive}
	repo := &mockUserRepo{db}
	if err := repo.CreateWithMember(context.Background(), user, member); err != nil {
		t.Fatalf("准备测试账号失败: %v", err)
	}
	return &policy.Identity{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         role,
		DepartmentID: deptID,
	}, member.ID
}

func testLogger() *zap.Logger { return zap.NewNop() }
