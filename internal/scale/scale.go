// Package scale 实现临床量表的评分核心：量表目录、答卷校验、加权/反向计分与严重程度分级。
// 本包是纯计算层，不做任何 I/O，持久化和传输由外层 service/controller 负责。
package scale

// Option 单个题目的一个备选回答
type Option struct {
	Text         string  `json:"text"`
	Value        int     `json:"value"`
	Weight       float64 `json:"weight"`
	DisplayOrder int     `json:"displayOrder"`
}

// Question 量表中的一道题，Number 从 1 开始，同时也是对外的题目标识
type Question struct {
	Number        int      `json:"number"`
	Text          string   `json:"text"`
	ReverseScored bool     `json:"reverseScored"`
	Options       []Option `json:"options"`
}

// maxOptionValue 反向计分的上界取该题自身的最大选项值，不是量表级常量
func (q Question) maxOptionValue() int {
	max := q.Options[0].Value
	for _, o := range q.Options[1:] {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

func (q Question) minOptionValue() int {
	min := q.Options[0].Value
	for _, o := range q.Options[1:] {
		if o.Value < min {
			min = o.Value
		}
	}
	return min
}

// Band 严重程度分段，MinScore/MaxScore 为闭区间
type Band struct {
	MinScore       int    `json:"minScore"`
	MaxScore       int    `json:"maxScore"`
	Level          string `json:"level"`
	Label          string `json:"label"`
	Interpretation string `json:"interpretation"`
	Recommendation string `json:"recommendation"`
	ColorCode      string `json:"colorCode"`
	Priority       int    `json:"priority"`
}

func (b Band) contains(score float64) bool {
	return float64(b.MinScore) <= score && score <= float64(b.MaxScore)
}

// Scale 一份完整的量表定义，构建进 Catalog 后只读
type Scale struct {
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Precision   int        `json:"precision"` // 归一化得分保留的小数位数
	Questions   []Question `json:"questions"`
	Bands       []Band     `json:"bands"`
}

// MinPossibleScore 可达到的最低归一化得分（含反向计分与权重）
func (s *Scale) MinPossibleScore() int {
	var sum float64
	for _, q := range s.Questions {
		sum += q.contributionBound(false)
	}
	return int(roundTo(sum, s.Precision))
}

// MaxPossibleScore 可达到的最高归一化得分
func (s *Scale) MaxPossibleScore() int {
	var sum float64
	for _, q := range s.Questions {
		sum += q.contributionBound(true)
	}
	return int(roundTo(sum, s.Precision))
}

// contributionBound 该题可贡献的最大/最小分值
func (q Question) contributionBound(max bool) float64 {
	bound := q.contribution(q.Options[0])
	for _, o := range q.Options[1:] {
		c := q.contribution(o)
		if (max && c > bound) || (!max && c < bound) {
			bound = c
		}
	}
	return bound
}

// Summary 目录列表项，只携带渲染列表所需的字段
type Summary struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
}

// Contribution 单题得分明细，用于审计回溯
type Contribution struct {
	Question      int     `json:"question"`
	SelectedValue int     `json:"selectedValue"`
	Contribution  float64 `json:"contribution"`
}

// ScoredResult 一次评分的完整结果，构建后不再修改。
// 量表元数据一并带出，调用方无需回查目录（快照可能已被热替换）。
type ScoredResult struct {
	ScaleCode       string         `json:"scaleCode"`
	ScaleName       string         `json:"scaleName"`
	Category        string         `json:"category"`
	MaxScore        int            `json:"maxScore"`
	RawScore        int            `json:"rawScore"`
	NormalizedScore float64        `json:"normalizedScore"`
	Band            Band           `json:"band"`
	Contributions   []Contribution `json:"contributions"`
}
