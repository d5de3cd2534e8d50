package author

import (
	"time"
)

// 校验管道，与图书侧保持同一形态：
// 纯函数按固定顺序执行，字段错误合并后一次性返回

// FieldErrors 字段名 → 错误消息列表
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) merge(other FieldErrors) {
	for field, messages := range other {
		fe[field] = append(fe[field], messages...)
	}
}

// Validator 作者校验器
type Validator func(a *Author) FieldErrors

var validators = []Validator{
	validateName,
	validateBirthDate,
}

// Validate 执行完整校验管道
func Validate(a *Author) FieldErrors {
	errs := FieldErrors{}
	for _, v := range validators {
		errs.merge(v(a))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateName(a *Author) FieldErrors {
	errs := FieldErrors{}
	if a.Name == "" {
		errs.add("name", "姓名不能为空")
	}
	if len(a.Name) > 50 {
		errs.add("name", "姓名不能超过50个字符")
	}
	return errs
}

func validateBirthDate(a *Author) FieldErrors {
	errs := FieldErrors{}
	if a.BirthDate != nil && a.BirthDate.After(time.Now()) {
		errs.add("birth_date", "出生日期不能晚于当前时间")
	}
	return errs
}
