package scale

import (
	"fmt"
	"iter"
	"sync/atomic"
)

// Catalog 量表目录的一个不可变快照，构建完成后并发读取无需加锁
type Catalog struct {
	scales map[string]*Scale
	order  []string
}

// NewCatalog 构建目录并校验每份量表的结构不变量，任何一条不满足都拒绝整个快照
func NewCatalog(scales []Scale) (*Catalog, error) {
	c := &Catalog{scales: make(map[string]*Scale, len(scales))}

	for i := range scales {
		s := scales[i]
		if err := validateScale(&s); err != nil {
			return nil, err
		}
		if _, dup := c.scales[s.Code]; dup {
			return nil, fmt.Errorf("scale: duplicate scale code %q", s.Code)
		}
		c.scales[s.Code] = &s
		c.order = append(c.order, s.Code)
	}

	return c, nil
}

func validateScale(s *Scale) error {
	if s.Code == "" {
		return fmt.Errorf("scale: scale has empty code")
	}
	if len(s.Questions) == 0 {
		return fmt.Errorf("scale: %s has no questions", s.Code)
	}
	if s.Precision < 0 {
		return fmt.Errorf("scale: %s has negative precision %d", s.Code, s.Precision)
	}

	// 题号必须是连续的 1..N
	optionCount := len(s.Questions[0].Options)
	for i, q := range s.Questions {
		if q.Number != i+1 {
			return fmt.Errorf("scale: %s question numbers are not contiguous, want %d got %d", s.Code, i+1, q.Number)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("scale: %s question %d has no options", s.Code, q.Number)
		}
		if len(q.Options) != optionCount {
			return fmt.Errorf("scale: %s question %d has %d options, want %d", s.Code, q.Number, len(q.Options), optionCount)
		}
		seen := make(map[int]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o.Value] {
				return fmt.Errorf("scale: %s question %d has duplicate option value %d", s.Code, q.Number, o.Value)
			}
			seen[o.Value] = true
		}
	}

	if len(s.Bands) == 0 {
		return fmt.Errorf("scale: %s has no severity bands", s.Code)
	}
	for _, b := range s.Bands {
		if b.MinScore > b.MaxScore {
			return fmt.Errorf("scale: %s band %q has min %d > max %d", s.Code, b.Level, b.MinScore, b.MaxScore)
		}
	}

	// 分段必须覆盖整个可达得分区间；重叠允许，由 priority 在分级时裁决
	for score := s.MinPossibleScore(); score <= s.MaxPossibleScore(); score++ {
		covered := false
		for _, b := range s.Bands {
			if b.contains(float64(score)) {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("scale: %s severity bands do not cover score %d", s.Code, score)
		}
	}

	return nil
}

// GetScale 按编码查找量表
func (c *Catalog) GetScale(code string) (*Scale, error) {
	s, ok := c.scales[code]
	if !ok {
		return nil, &UnknownScaleError{Code: code}
	}
	return s, nil
}

// ListScales 按注册顺序惰性产出摘要，category 为空表示不过滤。
// 返回的序列可重复 range，除快照内稳定外不保证任何展示顺序，需要排序的调用方自行处理。
func (c *Catalog) ListScales(category string) iter.Seq[Summary] {
	return func(yield func(Summary) bool) {
		for _, code := range c.order {
			s := c.scales[code]
			if category != "" && s.Category != category {
				continue
			}
			summary := Summary{
				Code:          s.Code,
				Name:          s.Name,
				Category:      s.Category,
				Description:   s.Description,
				QuestionCount: len(s.Questions),
			}
			if !yield(summary) {
				return
			}
		}
	}
}

// Categories 快照中出现过的全部分类，按首次出现顺序
func (c *Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, code := range c.order {
		cat := c.scales[code].Category
		if cat != "" && !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// Len 快照中的量表数
func (c *Catalog) Len() int {
	return len(c.scales)
}

// Holder 持有当前目录快照，整体原子替换，进行中的评分始终看到一个完整一致的版本
type Holder struct {
	current atomic.Pointer[Catalog]
}

func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.current.Store(c)
	return h
}

func (h *Holder) Catalog() *Catalog {
	return h.current.Load()
}

func (h *Holder) Swap(c *Catalog) {
	h.current.Store(c)
}
