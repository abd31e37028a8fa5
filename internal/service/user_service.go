package service

import (
	"context"
	"time"

	"bloompath-be/internal/dto"
	"bloompath-be/internal/entity"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/repository/specification"
	"bloompath-be/internal/repository/unitofwork"
	"bloompath-be/pkg/scoring"

	"github.com/google/uuid"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error)
	Show(ctx context.Context, userId uuid.UUID) (*dto.ShowUserResponse, error)
	RefreshWeek(ctx context.Context, userId uuid.UUID) (*dto.RefreshWeekResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (c *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, serverutils.NewHttpError(400, "due_date must be formatted as YYYY-MM-DD")
	}

	now := time.Now()
	user := entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		DueDate:      &dueDate,
		WeekNumber:   scoring.PregnancyWeek(dueDate, now),
		IsPostpartum: now.After(dueDate),
		CreatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	return &dto.CreateUserResponse{
		Id:         user.Id,
		Name:       user.Name,
		WeekNumber: user.WeekNumber,
		CreatedAt:  user.CreatedAt,
	}, nil
}

func (c *userService) Show(ctx context.Context, userId uuid.UUID) (*dto.ShowUserResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}

	res := dto.ShowUserResponse{
		Id:           user.Id,
		Name:         user.Name,
		WeekNumber:   user.WeekNumber,
		IsPostpartum: user.IsPostpartum,
		CreatedAt:    user.CreatedAt,
	}
	if user.DueDate != nil {
		formatted := user.DueDate.Format("2006-01-02")
		res.DueDate = &formatted
	}

	return &res, nil
}

// RefreshWeek recomputes the pregnancy week from the stored due date.
// Clients call this on app open rather than trusting a stale snapshot.
func (c *userService) RefreshWeek(ctx context.Context, userId uuid.UUID) (*dto.RefreshWeekResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHttpError(404, "User not found")
	}
	if user.DueDate == nil {
		return nil, serverutils.NewHttpError(404, "User has no due date on record")
	}

	now := time.Now()
	user.WeekNumber = scoring.PregnancyWeek(*user.DueDate, now)
	user.IsPostpartum = now.After(*user.DueDate)
	user.UpdatedAt = now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RefreshWeekResponse{
		Id:         user.Id,
		WeekNumber: user.WeekNumber,
	}, nil
}
