package scale

import "math"

// contribution 该选项对归一化得分的贡献。
// 反向计分题先在本题自己的值域内取反（maxValue - value），再乘权重。
func (q Question) contribution(o Option) float64 {
	value := o.Value
	if q.ReverseScored {
		value = q.maxOptionValue() - o.Value
	}
	return float64(value) * o.Weight
}

// scoreResponses 把校验过的答卷折算成原始分与归一化分。
// 原始分始终累加未反转的选项值，仅用于审计；归一化分才参与分级。
// 纯函数：相同输入必然得到相同输出。
func scoreResponses(s *Scale, vr ValidatedResponses) (int, float64, []Contribution, error) {
	if vr.scaleCode != s.Code || len(vr.entries) != len(s.Questions) {
		return 0, 0, nil, ErrUnvalidatedResponses
	}

	rawScore := 0
	var normalized float64
	contributions := make([]Contribution, 0, len(vr.entries))

	for _, entry := range vr.entries {
		c := entry.question.contribution(entry.option)
		rawScore += entry.option.Value
		normalized += c
		contributions = append(contributions, Contribution{
			Question:      entry.question.Number,
			SelectedValue: entry.option.Value,
			Contribution:  c,
		})
	}

	return rawScore, roundTo(normalized, s.Precision), contributions, nil
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
