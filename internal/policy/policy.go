// Package policy 集中定义角色、操作与权限规则表。
//
// 每一次写操作都在加载目标资源之后调用 Authorize，
// 由规则表决定角色是否允许、是否受部门范围约束、资源所有者是否可以自行操作。
package policy

import (
	apperrors "club-portal/backend/pkg/errors"
)

// Role 用户角色（封闭集合）
type Role string

const (
	RolePresident Role = "president"
	RoleAdvisor   Role = "advisor"
	RoleOfficer   Role = "officer"
	RoleMember    Role = "member"
	RoleAlumni    Role = "alumni"
)

// AllRoles 全部合法角色
var AllRoles = []Role{RolePresident, RoleAdvisor, RoleOfficer, RoleMember, RoleAlumni}

// ParseRole 将字符串解析为角色
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// HasFullAccess 社长与指导老师拥有全部权限，不受部门范围约束
func (r Role) HasFullAccess() bool {
	return r == RolePresident || r == RoleAdvisor
}

// Action 受控的写操作
type Action string

const (
	AnnouncementCreate Action = "announcement.create"
	AnnouncementUpdate Action = "announcement.update"
	AnnouncementDelete Action = "announcement.delete"

	CommentCreate Action = "comment.create"

	EventCreate Action = "event.create"
	EventUpdate Action = "event.update"
	EventDelete Action = "event.delete"

	RegistrationCreate Action = "registration.create"
	RegistrationCancel Action = "registration.cancel"

	FileCreate Action = "file.create"
	FileUpdate Action = "file.update"
	FileDelete Action = "file.delete"

	FileCategoryCreate Action = "file_category.create"

	MemberUpdate Action = "member.update"
	MemberDelete Action = "member.delete"
	MemberExport Action = "member.export"
)

// Identity 已验证的调用者身份（来自 Token 声明）
type Identity struct {
	UserID       int64
	Username     string
	Role         Role
	DepartmentID *int64
}

// Target 被操作的资源
//
// DepartmentID 为资源当前（或创建时请求）的部门；
// NewDepartmentID 非空表示本次更新要把资源移到另一个部门；
// OwnerUserID 为资源所属用户，仅对允许所有者操作的规则有意义。
type Target struct {
	DepartmentID    *int64
	NewDepartmentID *int64
	OwnerUserID     int64
}

// InDepartment 构造部门范围内的目标
func InDepartment(departmentID *int64) Target {
	return Target{DepartmentID: departmentID}
}

// OwnedBy 构造归属某用户的目标
func OwnedBy(userID int64) Target {
	return Target{OwnerUserID: userID}
}

type rule struct {
	roles            []Role
	departmentScoped bool
	ownerMay         bool
}

var (
	staffRoles      = []Role{RolePresident, RoleAdvisor, RoleOfficer}
	fullAccessRoles = []Role{RolePresident, RoleAdvisor}
)

var rules = map[Action]rule{
	AnnouncementCreate: {roles: staffRoles, departmentScoped: true},
	AnnouncementUpdate: {roles: staffRoles, departmentScoped: true},
	AnnouncementDelete: {roles: staffRoles, departmentScoped: true},

	CommentCreate: {roles: AllRoles},

	EventCreate: {roles: staffRoles, departmentScoped: true},
	EventUpdate: {roles: staffRoles, departmentScoped: true},
	EventDelete: {roles: staffRoles, departmentScoped: true},

	RegistrationCreate: {roles: AllRoles},
	RegistrationCancel: {roles: AllRoles},

	FileCreate: {roles: staffRoles, departmentScoped: true},
	FileUpdate: {roles: staffRoles, departmentScoped: true},
	FileDelete: {roles: staffRoles, departmentScoped: true},

	FileCategoryCreate: {roles: fullAccessRoles},

	MemberUpdate: {roles: fullAccessRoles, ownerMay: true},
	MemberDelete: {roles: fullAccessRoles},
	MemberExport: {roles: staffRoles},
}

var (
	ErrUnauthenticated = apperrors.New(apperrors.KindUnauthenticated, "未登录或登录已过期")
	ErrForbidden       = apperrors.Forbidden("权限不足")
	ErrDepartmentScope = apperrors.Forbidden("只能操作本部门的资源")
	ErrUnknownAction   = apperrors.New(apperrors.KindInternal, "未定义的操作")
)

// Authorize 判定身份能否对目标执行操作，返回 nil 表示允许
//
// 判定顺序：未认证 → 角色（或所有者） → 干部部门范围
func Authorize(id *Identity, action Action, target Target) error {
	if id == nil {
		return ErrUnauthenticated
	}

	r, ok := rules[action]
	if !ok {
		return ErrUnknownAction
	}

	if !hasRole(r.roles, id.Role) {
		if r.ownerMay && target.OwnerUserID != 0 && target.OwnerUserID == id.UserID {
			return nil
		}
		return ErrForbidden
	}

	if r.departmentScoped && id.Role == RoleOfficer {
		if !sameDepartment(id.DepartmentID, target.DepartmentID) {
			return ErrDepartmentScope
		}
		if target.NewDepartmentID != nil && !sameDepartment(id.DepartmentID, target.NewDepartmentID) {
			return ErrDepartmentScope
		}
	}

	return nil
}

// Allows 仅做角色判定（用于路由层的快速拒绝，不替代 Authorize）
func Allows(role Role, action Action) bool {
	r, ok := rules[action]
	return ok && hasRole(r.roles, role)
}

func hasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// 任一侧为空都视为不同部门
func sameDepartment(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}
