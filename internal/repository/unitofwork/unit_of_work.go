package unitofwork

import (
	"context"

	"bloompath-be/internal/repository"
	"bloompath-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MoodEntryRepository() contract.MoodEntryRepository
	ChatMessageRepository() contract.ChatMessageRepository
	EPDSScreeningRepository() contract.EPDSScreeningRepository
	NotificationRepository() repository.NotificationRepository
}
