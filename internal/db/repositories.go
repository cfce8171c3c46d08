package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Tastings *TastingRepository
	Pending  *PendingSubmissionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Tastings: NewTastingRepository(database),
		Pending:  NewPendingSubmissionRepository(database),
	}
}
