package model

// 量表目录的配置即数据：定义、题目、选项、分段各一张表，
// 启动时整体读出并构建成 internal/scale 的不可变快照。

// swagger:model ScaleDefinition
type ScaleDefinition struct {
	BaseModel
	Code           string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name           string          `gorm:"size:100;not null" json:"name"`
	Category       string          `gorm:"size:50;index" json:"category"`
	Description    string          `gorm:"type:text" json:"description"`
	TotalQuestions int             `gorm:"not null" json:"totalQuestions"`
	Precision      int             `gorm:"default:0" json:"precision"`
	IsActive       bool            `gorm:"default:true" json:"isActive"`
	Questions      []ScaleQuestion `gorm:"foreignKey:ScaleDefinitionID" json:"questions,omitempty"`
	ScoringRanges  []ScoringRange  `gorm:"foreignKey:ScaleDefinitionID" json:"scoringRanges,omitempty"`
}

func (ScaleDefinition) TableName() string {
	return "scale_definitions"
}

// swagger:model ScaleQuestion
type ScaleQuestion struct {
	BaseModel
	ScaleDefinitionID uint             `gorm:"index;not null" json:"scaleDefinitionId"`
	Number            int              `gorm:"not null" json:"number"`
	Text              string           `gorm:"type:text;not null" json:"text"`
	ReverseScored     bool             `gorm:"default:false" json:"reverseScored"`
	Options           []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (ScaleQuestion) TableName() string {
	return "scale_questions"
}

// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	ScaleDefinitionID uint    `gorm:"index;not null" json:"scaleDefinitionId"`
	QuestionID        uint    `gorm:"index;not null" json:"questionId"`
	Text              string  `gorm:"size:255;not null" json:"text"`
	Value             int     `gorm:"not null" json:"value"`
	Weight            float64 `gorm:"type:decimal(5,2);default:1.0" json:"weight"`
	DisplayOrder      int     `gorm:"default:0" json:"displayOrder"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}

// swagger:model ScoringRange
type ScoringRange struct {
	BaseModel
	ScaleDefinitionID uint   `gorm:"index;not null" json:"scaleDefinitionId"`
	MinScore          int    `gorm:"not null" json:"minScore"`
	MaxScore          int    `gorm:"not null" json:"maxScore"`
	Level             string `gorm:"size:50;not null" json:"level"`
	Label             string `gorm:"size:100;not null" json:"label"`
	Interpretation    string `gorm:"type:text" json:"interpretation"`
	Recommendation    string `gorm:"type:text" json:"recommendation"`
	ColorCode         string `gorm:"size:10" json:"colorCode"`
	Priority          int    `gorm:"default:0" json:"priority"`
}

func (ScoringRange) TableName() string {
	return "scoring_ranges"
}
