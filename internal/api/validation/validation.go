// Package validation 在 gin 的 binding 引擎上注册自定义校验规则与中文错误信息
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/internal/model"
)

// 自定义校验 tag 与中文提示
const (
	notBlankTag         = "notblank"
	attendanceStatusTag = "attendance_status"
	ymdTag              = "ymd"
)

var customTexts = map[string]string{
	notBlankTag:         "{0}不能为空白",
	attendanceStatusTag: "{0}必须是 present、absent 或 late",
	ymdTag:              "{0}必须是 YYYY-MM-DD 格式的日期",
}

var (
	once       sync.Once
	setupErr   error
	translator ut.Translator
)

// Setup 注册到 gin 默认校验器，可重复调用
func Setup() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin binding 引擎不是 validator/v10")
			return
		}
		setupErr = register(v)
	})
	return setupErr
}

func register(v *validator.Validate) error {
	_zh := zh.New()
	uni := ut.New(_zh, _zh)
	translator, _ = uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(v, translator); err != nil {
		return err
	}

	// 错误字段名使用 json / form tag
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	rules := map[string]validator.Func{
		notBlankTag:         notBlank,
		attendanceStatusTag: attendanceStatus,
		ymdTag:              ymdDate,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
		if err := registerTranslation(v, tag, customTexts[tag]); err != nil {
			return err
		}
	}
	return nil
}

func registerTranslation(v *validator.Validate, tag, text string) error {
	return v.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ── 自定义规则 ──

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func attendanceStatus(fl validator.FieldLevel) bool {
	return model.AttendanceStatus(fl.Field().String()).Valid()
}

func ymdDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// ── 错误翻译 ──

// Details 将绑定错误转为 字段 → 中文提示；非校验错误（如 JSON 语法错误）返回 false
func Details(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if translator != nil {
			out[fe.Namespace()] = fe.Translate(translator)
		} else {
			out[fe.Namespace()] = fe.Error()
		}
	}
	return out, true
}
