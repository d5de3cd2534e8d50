package book

import (
	"regexp"
	"time"
)

// 校验管道
// 设计说明：
// 1. 校验器是纯函数：(候选实体) → 字段级错误，不产生任何副作用
// 2. 按固定顺序执行全部校验器，错误按字段名合并后一次性返回
// 3. 任何持久化操作之前必须先跑完整个管道，保证不会出现半合法写入

// FieldErrors 字段名 → 错误消息列表
type FieldErrors map[string][]string

// add 追加一条字段错误
func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// merge 合并另一组字段错误
func (fe FieldErrors) merge(other FieldErrors) {
	for field, messages := range other {
		fe[field] = append(fe[field], messages...)
	}
}

// Validator 图书校验器
type Validator func(b *Book) FieldErrors

// isbnPattern ISBN必须是13位数字
var isbnPattern = regexp.MustCompile(`^\d{13}$`)

// validators 校验器执行顺序固定
var validators = []Validator{
	validateTitle,
	validatePrice,
	validateGenre,
	validateYear,
	validateQuantity,
	validateRating,
	validateISBN,
}

// Validate 执行完整校验管道
// 返回nil表示通过；否则返回按字段分组的全部错误
func Validate(b *Book) FieldErrors {
	errs := FieldErrors{}
	for _, v := range validators {
		errs.merge(v(b))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateTitle(b *Book) FieldErrors {
	errs := FieldErrors{}
	if b.Title == "" {
		errs.add("title", "书名不能为空")
	}
	if len(b.Title) > 255 {
		errs.add("title", "书名不能超过255个字符")
	}
	return errs
}

func validatePrice(b *Book) FieldErrors {
	errs := FieldErrors{}
	if b.Price <= 0 {
		errs.add("price", "价格必须大于0")
	}
	return errs
}

func validateGenre(b *Book) FieldErrors {
	errs := FieldErrors{}
	if !b.Genre.IsValid() {
		errs.add("genre", "不支持的图书分类")
	}
	return errs
}

func validateYear(b *Book) FieldErrors {
	errs := FieldErrors{}
	if b.Year != nil {
		currentYear := time.Now().Year()
		if *b.Year < 1800 || *b.Year > currentYear {
			errs.add("year", "出版年份必须在1800到当前年份之间")
		}
	}
	return errs
}

func validateQuantity(b *Book) FieldErrors {
	errs := FieldErrors{}
	if b.Quantity < 0 {
		errs.add("quantity", "库存不能为负数")
	}
	return errs
}

func validateRating(b *Book) FieldErrors {
	errs := FieldErrors{}
	if b.Rating < 0 || b.Rating > 10 {
		errs.add("rating", "评分必须在0到10之间")
	}
	return errs
}

func validateISBN(b *Book) FieldErrors {
	errs := FieldErrors{}
	if !isbnPattern.MatchString(b.ISBN) {
		errs.add("isbn", "ISBN必须是13位数字")
	}
	return errs
}
