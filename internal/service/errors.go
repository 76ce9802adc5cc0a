package service

import (
	"go.uber.org/zap"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/database"
	pkgerrors "github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/errors"
)

// ── 通用业务错误 ──

var (
	ErrInternal = pkgerrors.New(pkgerrors.KindInternal, 50000, "服务器内部错误，请稍后重试")

	ErrEmailExists      = pkgerrors.New(pkgerrors.KindConflict, 10101, "邮箱已被注册")
	ErrRollNumberExists = pkgerrors.New(pkgerrors.KindConflict, 10102, "学号已存在")
	ErrTeacherIDExists  = pkgerrors.New(pkgerrors.KindConflict, 10103, "教师工号已存在")
	ErrSubjectExists    = pkgerrors.New(pkgerrors.KindConflict, 10301, "该课程下已存在同名科目")
	ErrAlreadyAssigned  = pkgerrors.New(pkgerrors.KindConflict, 10401, "该教师已分配此科目")
	ErrDuplicateRecord  = pkgerrors.New(pkgerrors.KindConflict, 10002, "数据已存在")
	ErrReferenceInUse   = pkgerrors.New(pkgerrors.KindConflict, 10003, "数据被引用或引用的数据不存在")
)

// uniqueConstraintErrors 唯一约束名 → 可安全返回给客户端的业务错误
var uniqueConstraintErrors = map[string]*pkgerrors.AppError{
	"admins_email_key":                     ErrEmailExists,
	"teachers_email_key":                   ErrEmailExists,
	"students_email_key":                   ErrEmailExists,
	"students_roll_number_key":             ErrRollNumberExists,
	"teachers_pkey":                        ErrTeacherIDExists,
	"subjects_course_name_key":             ErrSubjectExists,
	"teacher_subjects_teacher_subject_key": ErrAlreadyAssigned,
}

// translateStoreError 将存储层错误归类为业务错误
//   - 已是 AppError：原样返回（事务回调内部产生的业务错误）
//   - 唯一约束：按约束名映射，未知约束归为 ErrDuplicateRecord
//   - 外键约束：ErrReferenceInUse
//   - 其余：记录日志后返回 ErrInternal，原始错误不外泄
func translateStoreError(logger *zap.Logger, msg string, err error, fields ...zap.Field) error {
	if err == nil {
		return nil
	}
	if _, ok := pkgerrors.As(err); ok {
		return err
	}
	switch {
	case database.IsUniqueViolation(err):
		if appErr, ok := uniqueConstraintErrors[database.ConstraintName(err)]; ok {
			return pkgerrors.Wrap(appErr, err)
		}
		return pkgerrors.Wrap(ErrDuplicateRecord, err)
	case database.IsForeignKeyViolation(err):
		return pkgerrors.Wrap(ErrReferenceInUse, err)
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
	return pkgerrors.Wrap(ErrInternal, err)
}

// dedupeIDs 去重并保持首次出现的顺序
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
