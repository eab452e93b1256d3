package scale

import "sort"

type resolvedResponse struct {
	question Question
	option   Option
}

// ValidatedResponses 校验通过的答卷，每道题都已解析到具体选项，评分阶段不再重查值域。
// 只能由 Validate 产生，零值对评分无效。
type ValidatedResponses struct {
	scaleCode string
	entries   []resolvedResponse
}

// Validate 按顺序执行三类检查，第一处失败即返回：
//  1. 量表的每道题都恰有一条回答（按题号升序报告第一个缺失）
//  2. 回答没有引用量表之外的题号
//  3. 每条回答的值都落在该题的选项值域内
//
// 纯函数，不修改入参。
func Validate(s *Scale, responses map[int]int) (ValidatedResponses, error) {
	for _, q := range s.Questions {
		if _, ok := responses[q.Number]; !ok {
			return ValidatedResponses{}, &MissingResponseError{ScaleCode: s.Code, Question: q.Number}
		}
	}

	if len(responses) > len(s.Questions) {
		extra := make([]int, 0, len(responses))
		for number := range responses {
			if number < 1 || number > len(s.Questions) {
				extra = append(extra, number)
			}
		}
		sort.Ints(extra)
		return ValidatedResponses{}, &UnknownQuestionError{ScaleCode: s.Code, Question: extra[0]}
	}

	entries := make([]resolvedResponse, 0, len(s.Questions))
	for _, q := range s.Questions {
		value := responses[q.Number]
		option, ok := resolveOption(q, value)
		if !ok {
			return ValidatedResponses{}, &InvalidOptionValueError{ScaleCode: s.Code, Question: q.Number, Value: value}
		}
		entries = append(entries, resolvedResponse{question: q, option: option})
	}

	return ValidatedResponses{scaleCode: s.Code, entries: entries}, nil
}

func resolveOption(q Question, value int) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
