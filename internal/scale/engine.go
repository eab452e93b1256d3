package scale

import "iter"

// Engine 对外暴露的评分门面：查定义、列目录、一次性的 validate → score → classify 流水线。
// 自身无状态，同一 Engine 可被任意多个请求并发使用。
type Engine struct {
	holder *Holder
}

func NewEngine(holder *Holder) *Engine {
	return &Engine{holder: holder}
}

// GetScale 返回量表完整定义，用于向终端用户渲染题目和选项
func (e *Engine) GetScale(code string) (*Scale, error) {
	return e.holder.Catalog().GetScale(code)
}

// ListScales 当前快照的量表摘要序列
func (e *Engine) ListScales(category string) iter.Seq[Summary] {
	return e.holder.Catalog().ListScales(category)
}

// Categories 当前快照的全部分类
func (e *Engine) Categories() []string {
	return e.holder.Catalog().Categories()
}

// Score 对一份答卷完成整条流水线。流水线单遍执行，任何一步失败都整体中止，
// 不会产生部分结果；错误只会是既定分类之一，由调用方负责日志与用户提示。
func (e *Engine) Score(code string, responses map[int]int) (*ScoredResult, error) {
	// 整条流水线固定在同一个目录快照上，热加载不会影响进行中的评分
	catalog := e.holder.Catalog()

	s, err := catalog.GetScale(code)
	if err != nil {
		return nil, err
	}

	vr, err := Validate(s, responses)
	if err != nil {
		return nil, err
	}

	rawScore, normalized, contributions, err := scoreResponses(s, vr)
	if err != nil {
		return nil, err
	}

	band, err := classify(s, normalized)
	if err != nil {
		return nil, err
	}

	return &ScoredResult{
		ScaleCode:       s.Code,
		ScaleName:       s.Name,
		Category:        s.Category,
		MaxScore:        s.MaxPossibleScore(),
		RawScore:        rawScore,
		NormalizedScore: normalized,
		Band:            band,
		Contributions:   contributions,
	}, nil
}
