package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// pgError 提取底层 pgx 错误
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsNotFound 记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation 唯一约束冲突
func IsUniqueViolation(err error) bool {
	e, ok := pgError(err)
	return ok && e.Code == codeUniqueViolation
}

// IsForeignKeyViolation 外键约束冲突（引用不存在 或 被引用时删除）
func IsForeignKeyViolation(err error) bool {
	e, ok := pgError(err)
	return ok && e.Code == codeForeignKeyViolation
}

// IsCheckViolation CHECK 约束失败
func IsCheckViolation(err error) bool {
	e, ok := pgError(err)
	return ok && e.Code == codeCheckViolation
}

// ConstraintName 返回违反的约束名，非约束错误返回空串
func ConstraintName(err error) string {
	if e, ok := pgError(err); ok {
		return e.ConstraintName
	}
	return ""
}
