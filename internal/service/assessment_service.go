package service

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scale"
	"mindwell_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type AssessmentService struct {
	Engine     *scale.Engine
	Repo       *repository.AssessmentRepository
	Redis      *redis.Client
	SummaryTTL time.Duration
}

func NewAssessmentService(engine *scale.Engine, repo *repository.AssessmentRepository, rdb *redis.Client, summaryTTL time.Duration) *AssessmentService {
	return &AssessmentService{
		Engine:     engine,
		Repo:       repo,
		Redis:      rdb,
		SummaryTTL: summaryTTL,
	}
}

// GetScale 量表完整定义，渲染题目用
func (s *AssessmentService) GetScale(code string) (*scale.Scale, error) {
	return s.Engine.GetScale(code)
}

// ListScales 量表摘要序列
func (s *AssessmentService) ListScales(category string) iter.Seq[scale.Summary] {
	return s.Engine.ListScales(category)
}

func (s *AssessmentService) Categories() []string {
	return s.Engine.Categories()
}

type AssessRequest struct {
	Responses map[int]int `json:"responses" binding:"required"`
}

// Assess 评分并落库。引擎返回的输入类/配置类错误原样向上抛，由 controller 分类处理。
// 落库字段全部取自评分结果本身，评分与落库之间的目录热替换不影响记录一致性。
func (s *AssessmentService) Assess(ctx context.Context, userID uint, code string, responses map[int]int) (*model.AssessmentRecord, error) {
	result, err := s.Engine.Score(code, responses)
	if err != nil {
		return nil, err
	}

	responsesJSON, _ := json.Marshal(responses)
	contributionsJSON, _ := json.Marshal(result.Contributions)

	record := &model.AssessmentRecord{
		UserID:          userID,
		ScaleCode:       result.ScaleCode,
		ScaleName:       result.ScaleName,
		Category:        result.Category,
		RawScore:        result.RawScore,
		NormalizedScore: result.NormalizedScore,
		MaxScore:        result.MaxScore,
		Level:           result.Band.Level,
		Label:           result.Band.Label,
		Interpretation:  result.Band.Interpretation,
		Recommendation:  result.Band.Recommendation,
		ColorCode:       result.Band.ColorCode,
		Responses:       responsesJSON,
		Contributions:   contributionsJSON,
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userID)

	return record, nil
}

func (s *AssessmentService) History(userID uint, page, limit int) ([]model.AssessmentRecord, int64, error) {
	return s.Repo.ListByUser(userID, page, limit)
}

func (s *AssessmentService) GetRecord(id string) (*model.AssessmentRecord, error) {
	return s.Repo.FindByID(id)
}

func (s *AssessmentService) HistoryForExport(userID uint) ([]model.AssessmentRecord, error) {
	return s.Repo.ListAllByUser(userID)
}

// RiskSummary 用户所有量表最近一次结果的汇总
type RiskSummary struct {
	TotalAssessments int                      `json:"totalAssessments"`
	Assessments      []model.AssessmentRecord `json:"assessments"`
	OverallRiskLevel string                   `json:"overallRiskLevel"`
	Recommendations  []string                 `json:"recommendations"`
}

// Summary 汇总结果带短 TTL 缓存，新评分会使缓存失效
func (s *AssessmentService) Summary(ctx context.Context, userID uint) (*RiskSummary, error) {
	key := summaryCacheKey(userID)

	if cached, err := s.Redis.Get(ctx, key).Bytes(); err == nil {
		var summary RiskSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			return &summary, nil
		}
	}

	latest, err := s.Repo.LatestPerScale(userID)
	if err != nil {
		return nil, err
	}

	summary := BuildRiskSummary(latest)

	if data, err := json.Marshal(summary); err == nil {
		if err := s.Redis.Set(ctx, key, data, s.SummaryTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache risk summary", zap.Uint("user", userID), zap.Error(err))
		}
	}

	return summary, nil
}

func (s *AssessmentService) invalidateSummary(ctx context.Context, userID uint) {
	if err := s.Redis.Del(ctx, summaryCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate risk summary cache", zap.Uint("user", userID), zap.Error(err))
	}
}

func summaryCacheKey(userID uint) string {
	return fmt.Sprintf("mindwell:summary:%d", userID)
}

// BuildRiskSummary 按最近一次各量表结果推导总体风险等级。
// 纯函数，便于独立测试。
func BuildRiskSummary(latest []model.AssessmentRecord) *RiskSummary {
	summary := &RiskSummary{
		TotalAssessments: len(latest),
		Assessments:      latest,
		OverallRiskLevel: "low",
	}

	highRisk := 0
	moderateRisk := 0
	for _, record := range latest {
		switch record.Level {
		case "severe", "moderately_severe", "high":
			highRisk++
		case "moderate":
			moderateRisk++
		}
	}

	switch {
	case highRisk > 0:
		summary.OverallRiskLevel = "high"
		summary.Recommendations = append(summary.Recommendations, "Immediate professional consultation recommended")
	case moderateRisk > 0:
		summary.OverallRiskLevel = "medium"
		summary.Recommendations = append(summary.Recommendations, "Consider professional consultation")
	default:
		summary.Recommendations = append(summary.Recommendations, "Continue monitoring mental health")
	}

	return summary
}
