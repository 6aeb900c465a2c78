package models

const (
	MaxOptionTextLength = 255
	MaxNotesLength      = 500
)

// QuestionOption is a selectable answer that may branch to another question.
// The branching graph is a plain nullable foreign key and may be cyclic.
type QuestionOption struct {
	BaseModel
	QuestionID     int     `gorm:"not null;index"             json:"questionId"`
	Text           string  `gorm:"type:varchar(255);not null" json:"text"`
	Order          int     `gorm:"column:order;not null"      json:"order"`
	Notes          *string `gorm:"type:varchar(500)"          json:"notes"`
	NextQuestionID *int    `gorm:"index"                      json:"nextQuestionId"`

	NextQuestion *Question `gorm:"foreignKey:NextQuestionID" json:"-"`
}
