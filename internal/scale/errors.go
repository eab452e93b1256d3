package scale

import (
	"errors"
	"fmt"
)

// ErrUnvalidatedResponses 评分被传入了未经 Validate 产生的输入，属于集成层的程序错误
var ErrUnvalidatedResponses = errors.New("scale: responses were not produced by Validate for this scale")

// UnknownScaleError 目录中不存在该量表编码（配置类错误）
type UnknownScaleError struct {
	Code string
}

func (e *UnknownScaleError) Error() string {
	return fmt.Sprintf("scale: unknown scale code %q", e.Code)
}

// MissingResponseError 答卷缺少某道题（输入类错误，按题号升序报告第一个缺失）
type MissingResponseError struct {
	ScaleCode string
	Question  int
}

func (e *MissingResponseError) Error() string {
	return fmt.Sprintf("scale: %s is missing a response for question %d", e.ScaleCode, e.Question)
}

// UnknownQuestionError 答卷引用了量表中不存在的题号（输入类错误）
type UnknownQuestionError struct {
	ScaleCode string
	Question  int
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("scale: %s has no question %d", e.ScaleCode, e.Question)
}

// InvalidOptionValueError 所选值不在该题的选项值域内（输入类错误）
type InvalidOptionValueError struct {
	ScaleCode string
	Question  int
	Value     int
}

func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf("scale: value %d is not a valid option for %s question %d", e.Value, e.ScaleCode, e.Question)
}

// UnclassifiableScoreError 归一化得分落在所有分段之外，说明目录数据有缺口（配置类错误）
type UnclassifiableScoreError struct {
	ScaleCode string
	Score     float64
}

func (e *UnclassifiableScoreError) Error() string {
	return fmt.Sprintf("scale: score %g of %s does not fall into any severity band", e.Score, e.ScaleCode)
}

// IsInputError 输入类错误可由调用方提示用户后重试，配置类错误则应告警
func IsInputError(err error) bool {
	var missing *MissingResponseError
	var unknown *UnknownQuestionError
	var invalid *InvalidOptionValueError
	return errors.As(err, &missing) || errors.As(err, &unknown) || errors.As(err, &invalid)
}
