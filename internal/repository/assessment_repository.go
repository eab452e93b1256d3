package repository

import (
	"errors"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(record *model.AssessmentRecord) error {
	return r.DB.Create(record).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.DB.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRecordNotFound
	}
	return &record, err
}

func (r *AssessmentRepository) ListByUser(userID uint, page, limit int) ([]model.AssessmentRecord, int64, error) {
	var records []model.AssessmentRecord
	var total int64
	query := r.DB.Model(&model.AssessmentRecord{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&records).Error
	return records, total, err
}

// ListAllByUser 不分页，导出报表时使用
func (r *AssessmentRepository) ListAllByUser(userID uint) ([]model.AssessmentRecord, error) {
	var records []model.AssessmentRecord
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&records).Error
	return records, err
}

// LatestPerScale 每个量表取该用户最近一条记录
func (r *AssessmentRepository) LatestPerScale(userID uint) ([]model.AssessmentRecord, error) {
	var records []model.AssessmentRecord
	sub := r.DB.Model(&model.AssessmentRecord{}).
		Select("MAX(created_at)").
		Where("user_id = ?", userID).
		Group("scale_code")
	err := r.DB.
		Where("user_id = ? AND created_at IN (?)", userID, sub).
		Order("scale_code asc").
		Find(&records).Error
	return records, err
}

func (r *AssessmentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.AssessmentRecord{}).Error
}
