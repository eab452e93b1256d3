package service

import (
	"fmt"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scale"
)

// CatalogService 负责量表目录的装载：数据库行 → 不可变快照，整体原子替换。
// 行数据有任何一处不满足量表不变量时整个快照拒绝生效，旧快照继续服务。
type CatalogService struct {
	Repo   *repository.ScaleRepository
	Holder *scale.Holder
}

func NewCatalogService(repo *repository.ScaleRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// Bootstrap 启动时装载目录；表为空且允许种子时先写入内置量表
func (s *CatalogService) Bootstrap(seedOnEmpty bool) error {
	count, err := s.Repo.CountDefinitions()
	if err != nil {
		return err
	}

	if count == 0 {
		if !seedOnEmpty {
			return fmt.Errorf("scale catalog is empty and seeding is disabled")
		}
		if err := s.seedBuiltins(); err != nil {
			return err
		}
	}

	catalog, err := s.buildCatalog()
	if err != nil {
		return err
	}
	s.Holder = scale.NewHolder(catalog)
	return nil
}

// Refresh 重新装载并原子替换快照，进行中的评分不受影响
func (s *CatalogService) Refresh() error {
	catalog, err := s.buildCatalog()
	if err != nil {
		return err
	}
	s.Holder.Swap(catalog)
	return nil
}

func (s *CatalogService) buildCatalog() (*scale.Catalog, error) {
	defs, err := s.Repo.LoadActiveDefinitions()
	if err != nil {
		return nil, err
	}

	scales := make([]scale.Scale, 0, len(defs))
	for _, def := range defs {
		scales = append(scales, DefinitionToScale(def))
	}
	return scale.NewCatalog(scales)
}

func (s *CatalogService) seedBuiltins() error {
	for _, sc := range scale.BuiltinScales() {
		def := ScaleToDefinition(sc)
		if err := s.Repo.CreateDefinition(&def); err != nil {
			return err
		}
	}
	return nil
}

// DefinitionToScale 数据库行转核心值类型
func DefinitionToScale(def model.ScaleDefinition) scale.Scale {
	questions := make([]scale.Question, 0, len(def.Questions))
	for _, q := range def.Questions {
		options := make([]scale.Option, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, scale.Option{
				Text:         o.Text,
				Value:        o.Value,
				Weight:       o.Weight,
				DisplayOrder: o.DisplayOrder,
			})
		}
		questions = append(questions, scale.Question{
			Number:        q.Number,
			Text:          q.Text,
			ReverseScored: q.ReverseScored,
			Options:       options,
		})
	}

	bands := make([]scale.Band, 0, len(def.ScoringRanges))
	for _, r := range def.ScoringRanges {
		bands = append(bands, scale.Band{
			MinScore:       r.MinScore,
			MaxScore:       r.MaxScore,
			Level:          r.Level,
			Label:          r.Label,
			Interpretation: r.Interpretation,
			Recommendation: r.Recommendation,
			ColorCode:      r.ColorCode,
			Priority:       r.Priority,
		})
	}

	return scale.Scale{
		Code:        def.Code,
		Name:        def.Name,
		Category:    def.Category,
		Description: def.Description,
		Precision:   def.Precision,
		Questions:   questions,
		Bands:       bands,
	}
}

// ScaleToDefinition 核心值类型转数据库行，种子写入时使用
func ScaleToDefinition(sc scale.Scale) model.ScaleDefinition {
	questions := make([]model.ScaleQuestion, 0, len(sc.Questions))
	for _, q := range sc.Questions {
		options := make([]model.QuestionOption, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, model.QuestionOption{
				Text:         o.Text,
				Value:        o.Value,
				Weight:       o.Weight,
				DisplayOrder: o.DisplayOrder,
			})
		}
		questions = append(questions, model.ScaleQuestion{
			Number:        q.Number,
			Text:          q.Text,
			ReverseScored: q.ReverseScored,
			Options:       options,
		})
	}

	ranges := make([]model.ScoringRange, 0, len(sc.Bands))
	for _, b := range sc.Bands {
		ranges = append(ranges, model.ScoringRange{
			MinScore:       b.MinScore,
			MaxScore:       b.MaxScore,
			Level:          b.Level,
			Label:          b.Label,
			Interpretation: b.Interpretation,
			Recommendation: b.Recommendation,
			ColorCode:      b.ColorCode,
			Priority:       b.Priority,
		})
	}

	return model.ScaleDefinition{
		Code:           sc.Code,
		Name:           sc.Name,
		Category:       sc.Category,
		Description:    sc.Description,
		TotalQuestions: len(sc.Questions),
		Precision:      sc.Precision,
		IsActive:       true,
		Questions:      questions,
		ScoringRanges:  ranges,
	}
}
