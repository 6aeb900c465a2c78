package services

import (
	"telon/config"
	"telon/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Session     *SessionService
	Scheduler   *SchedulerService
}

func New(db database.DB, config config.Config) Service {
	return Service{
		Transaction: NewTransactionService(db),
		Session:     NewSessionService(db, config),
		Scheduler:   NewSchedulerService(),
	}
}
