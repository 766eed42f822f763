package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// IsUniqueViolation 判断是否为唯一约束冲突
// constraint 为空时匹配任意唯一约束
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	// 开启 TranslateError 时 gorm 会把 23505 转换为 ErrDuplicatedKey，此时已丢失约束名
	return constraint == "" && errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation 判断是否为外键约束冲突（引用的记录不存在）
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolationCode
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsNotFound 判断是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
