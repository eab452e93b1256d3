package controller

import (
	"errors"
	"fmt"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/scale"
	"mindwell_backend/internal/service"
	"mindwell_backend/internal/util"
	"mindwell_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	ReportService     *service.ReportService
	AuthService       *service.AuthService
}

func NewAssessmentController(assessmentService *service.AssessmentService, reportService *service.ReportService, authService *service.AuthService) *AssessmentController {
	return &AssessmentController{
		AssessmentService: assessmentService,
		ReportService:     reportService,
		AuthService:       authService,
	}
}

// Assess godoc
// @Summary 提交量表作答并评分
// @Description 校验作答、计算得分并匹配严重程度分级，结果落库后返回
// @Tags 评估
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   code path string true "量表代码，如 phq9"
// @Param   body body service.AssessRequest true "题号到选项分值的映射"
// @Success 200 {object} util.Response{data=model.AssessmentRecord} "评分成功"
// @Failure 400 {object} util.Response "作答不完整或分值非法"
// @Failure 404 {object} util.Response "量表不存在"
// @Failure 500 {object} util.Response "量表配置错误"
// @Router /api/tests/assess/{code} [post]
func (c *AssessmentController) Assess(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	code := ctx.Param("code")

	var req service.AssessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.AssessmentService.Assess(ctx.Request.Context(), claims.UserID, code, req.Responses)
	if err != nil {
		var unknown *scale.UnknownScaleError
		switch {
		case errors.As(err, &unknown):
			util.NotFound(ctx)
		case scale.IsInputError(err):
			// 作答缺失、题号未知、分值越界：原因明确，直接回给调用方
			util.BadRequest(ctx, err.Error())
		default:
			// 分级区间不覆盖等配置类错误属于服务端问题
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.AssessmentCounter.WithLabelValues(record.ScaleCode, record.Level).Inc()

	util.Success(ctx, record)
}

// History godoc
// @Summary 获取评估历史
// @Description 按时间倒序分页返回当前用户的评估记录
// @Tags 评估
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码，默认 1"
// @Param   limit query int false "每页数量，默认 20，最大 100"
// @Success 200 {object} util.PageResponse{data=[]model.AssessmentRecord}
// @Router /api/tests/history [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := util.ParsePageParams(ctx.Query("page"), ctx.Query("limit"))

	records, total, err := c.AssessmentService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Page(ctx, records, total, page, limit)
}

// GetRecord godoc
// @Summary 获取单条评估记录
// @Tags 评估
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "评估记录 ID"
// @Success 200 {object} util.Response{data=model.AssessmentRecord}
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/tests/records/{id} [get]
func (c *AssessmentController) GetRecord(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.AssessmentService.GetRecord(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// 临床医生和管理员可以查看所有记录，普通用户只能看自己的
	if record.UserID != claims.UserID && claims.Role == model.Member {
		util.Forbidden(ctx)
		return
	}

	util.Success(ctx, record)
}

// Summary godoc
// @Summary 获取风险汇总
// @Description 汇总当前用户各量表最近一次结果并给出总体风险等级
// @Tags 评估
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.RiskSummary}
// @Router /api/tests/summary [get]
func (c *AssessmentController) Summary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.AssessmentService.Summary(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// ExportPDF godoc
// @Summary 导出评估历史 PDF
// @Description 生成当前用户全部评估记录的 PDF 报告
// @Tags 评估
// @Produce  application/pdf
// @Security BearerAuth
// @Success 200 {file} binary "PDF 文件"
// @Router /api/tests/history/export [get]
func (c *AssessmentController) ExportPDF(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	records, err := c.AssessmentService.HistoryForExport(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	data, err := c.ReportService.HistoryPDF(user, records)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("assessment_history_%d.pdf", claims.UserID)
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(200, "application/pdf", data)
}
