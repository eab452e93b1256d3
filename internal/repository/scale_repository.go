package repository

import (
	"mindwell_backend/internal/model"

	"gorm.io/gorm"
)

type ScaleRepository struct {
	DB *gorm.DB
}

func NewScaleRepository(db *gorm.DB) *ScaleRepository {
	return &ScaleRepository{DB: db}
}

// LoadActiveDefinitions 读出全部启用的量表定义，题目按题号、选项按展示顺序、分段按下界排好
func (r *ScaleRepository) LoadActiveDefinitions() ([]model.ScaleDefinition, error) {
	var defs []model.ScaleDefinition
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("number asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("ScoringRanges", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_score asc")
		}).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&defs).Error
	return defs, err
}

func (r *ScaleRepository) CountDefinitions() (int64, error) {
	var count int64
	err := r.DB.Model(&model.ScaleDefinition{}).Count(&count).Error
	return count, err
}

// CreateDefinition 量表及其题目、选项、分段在一个事务里整体写入
func (r *ScaleRepository) CreateDefinition(def *model.ScaleDefinition) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(def).Error
	})
}
