package models

const MaxObservationsLength = 500

type Question struct {
	BaseModel
	PlayID       int     `gorm:"not null;index"                json:"playId"`
	QuestionText string  `gorm:"column:question;type:text;not null" json:"questionText"`
	Order        int     `gorm:"column:order;not null"         json:"order"`
	Observations *string `gorm:"type:varchar(500)"             json:"observations"`

	Options []QuestionOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"options,omitempty"`

	// Count of non-deleted options, recomputed on every read.
	OptionsCount int64 `gorm:"-" json:"optionsCount"`
}
