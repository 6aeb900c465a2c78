package models

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 500
)

type Play struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:varchar(500);not null" json:"description"`

	Questions    []Question    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"questions,omitempty"`
	Performances []Performance `gorm:"constraint:OnDelete:CASCADE"                  json:"performances,omitempty"`

	// Counts of non-deleted children, recomputed on every read.
	QuestionsCount    int64 `gorm:"-" json:"questionsCount"`
	PerformancesCount int64 `gorm:"-" json:"performancesCount"`
}
