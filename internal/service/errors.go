package service

import (
	"go.uber.org/zap"

	"club-portal/backend/pkg/database"
	apperrors "club-portal/backend/pkg/errors"
)

// ── 跨模块共用的业务错误 ──

var (
	ErrNoProfile          = apperrors.NotFound("找不到社员资料")
	ErrDepartmentNotFound = apperrors.Validation("部门不存在")
)

// storeError 处理数据访问错误：记录未找到时返回 notFound（可为 nil），
// 其余错误记录日志后包装为内部错误
func storeError(logger *zap.Logger, msg string, err error, notFound error, fields ...zap.Field) error {
	if notFound != nil && database.IsNotFound(err) {
		return notFound
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
	return apperrors.Wrap(apperrors.KindInternal, msg, err)
}
