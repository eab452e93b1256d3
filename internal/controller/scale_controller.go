package controller

import (
	"errors"
	"mindwell_backend/internal/scale"
	"mindwell_backend/internal/service"
	"mindwell_backend/internal/util"
	"slices"

	"github.com/gin-gonic/gin"
)

type ScaleController struct {
	AssessmentService *service.AssessmentService
	CatalogService    *service.CatalogService
}

func NewScaleController(assessmentService *service.AssessmentService, catalogService *service.CatalogService) *ScaleController {
	return &ScaleController{
		AssessmentService: assessmentService,
		CatalogService:    catalogService,
	}
}

// ListDefinitions godoc
// @Summary 获取量表列表
// @Description 返回当前可用的量表摘要，可按分类筛选
// @Tags 量表
// @Produce  json
// @Param   category query string false "量表分类（depression/anxiety/stress）"
// @Success 200 {object} util.Response{data=[]scale.Summary}
// @Router /api/tests/definitions [get]
func (c *ScaleController) ListDefinitions(ctx *gin.Context) {
	category := ctx.Query("category")
	summaries := slices.Collect(c.AssessmentService.ListScales(category))
	if summaries == nil {
		summaries = []scale.Summary{}
	}
	util.Success(ctx, summaries)
}

// GetDefinition godoc
// @Summary 获取量表详情
// @Description 返回指定量表的完整定义，包含题目、选项与分级区间
// @Tags 量表
// @Produce  json
// @Param   code path string true "量表代码，如 phq9"
// @Success 200 {object} util.Response{data=scale.Scale}
// @Failure 404 {object} util.Response "量表不存在"
// @Router /api/tests/definitions/{code} [get]
func (c *ScaleController) GetDefinition(ctx *gin.Context) {
	code := ctx.Param("code")

	sc, err := c.AssessmentService.GetScale(code)
	if err != nil {
		var unknown *scale.UnknownScaleError
		if errors.As(err, &unknown) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sc)
}

// Categories godoc
// @Summary 获取量表分类
// @Tags 量表
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/tests/categories [get]
func (c *ScaleController) Categories(ctx *gin.Context) {
	util.Success(ctx, c.AssessmentService.Categories())
}

// Refresh godoc
// @Summary 重新加载量表目录
// @Description 从数据库重新加载量表定义并原子替换当前目录，仅管理员可用
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "刷新成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 500 {object} util.Response "目录校验失败"
// @Router /api/admin/catalog/refresh [post]
func (c *ScaleController) Refresh(ctx *gin.Context) {
	if err := c.CatalogService.Refresh(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"scales": c.CatalogService.Holder.Catalog().Len()})
}
