package repositories

// TrashFilter selects how soft deleted rows participate in a listing.
type TrashFilter int

const (
	// TrashNone lists active rows only.
	TrashNone TrashFilter = iota
	// TrashOnly lists soft deleted rows only.
	TrashOnly
	// TrashWith lists active and soft deleted rows together.
	TrashWith
)

// FilterFromFlags maps the caller's listing flags onto a TrashFilter.
// only_trashed takes precedence when both are set.
func FilterFromFlags(onlyTrashed, withTrashed bool) TrashFilter {
	switch {
	case onlyTrashed:
		return TrashOnly
	case withTrashed:
		return TrashWith
	default:
		return TrashNone
	}
}

type Repository struct {
	User           UserRepository
	Play           PlayRepository
	Question       QuestionRepository
	QuestionOption QuestionOptionRepository
	Performance    PerformanceRepository
}

func New() Repository {
	return Repository{
		User:           NewUserRepository(),
		Play:           NewPlayRepository(),
		Question:       NewQuestionRepository(),
		QuestionOption: NewQuestionOptionRepository(),
		Performance:    NewPerformanceRepository(),
	}
}
