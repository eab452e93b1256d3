package model

import "encoding/json"

// AssessmentRecord 一次评分结果的落库快照。band 的文案整体冗余进来，
// 目录热更新后历史记录仍然呈现当时的解释文本。
// swagger:model AssessmentRecord
type AssessmentRecord struct {
	UUIDBase
	UserID          uint            `gorm:"index;not null" json:"userId"`
	ScaleCode       string          `gorm:"size:50;index;not null" json:"scaleCode"`
	ScaleName       string          `gorm:"size:100" json:"scaleName"`
	Category        string          `gorm:"size:50" json:"category"`
	RawScore        int             `gorm:"not null" json:"rawScore"`
	NormalizedScore float64         `gorm:"type:decimal(7,2);not null" json:"normalizedScore"`
	MaxScore        int             `json:"maxScore"`
	Level           string          `gorm:"size:50" json:"level"`
	Label           string          `gorm:"size:100" json:"label"`
	Interpretation  string          `gorm:"type:text" json:"interpretation"`
	Recommendation  string          `gorm:"type:text" json:"recommendation"`
	ColorCode       string          `gorm:"size:10" json:"colorCode"`
	Responses       json.RawMessage `gorm:"type:json" json:"responses"`
	Contributions   json.RawMessage `gorm:"type:json" json:"contributions"`
}

func (AssessmentRecord) TableName() string {
	return "assessment_records"
}
