package service

import (
	"context"

	"go-event-booking/internal/model"
	"go-event-booking/internal/repository"
	apperrors "go-event-booking/pkg/app_errors"
	"go-event-booking/pkg/password"
)

const (
	dashboardUpcomingLimit = 5
	dashboardRecentLimit   = 5
)

// Dashboard 個人儀表板
type Dashboard struct {
	EventsCreated  int                       `json:"events_created"`
	BookingsMade   int                       `json:"bookings_made"`
	UpcomingEvents []*model.Event            `json:"upcoming_events"`
	RecentBookings []*model.BookingWithEvent `json:"recent_bookings"`
	Locations      []*model.LocationStats    `json:"locations"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID int) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error)
	GetDashboard(ctx context.Context, userID int) (*Dashboard, error)
}

type UserServiceImpl struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	statsRepo   repository.StatsRepository
}

func NewUserService(
	userRepository repository.UserRepository,
	bookingRepository repository.BookingRepository,
	statsRepository repository.StatsRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepository,
		bookingRepo: bookingRepository,
		statsRepo:   statsRepository,
	}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID int) (*model.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.statsRepo.EventsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.bookingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings := []*model.BookingWithEvent{}
	if total > 0 {
		bookings, err = s.bookingRepo.ListByUser(ctx, userID, total, 0)
		if err != nil {
			return nil, err
		}
	}

	return &model.Profile{
		User:     user,
		Events:   events,
		Bookings: bookings,
	}, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	if req.Name == nil && req.Email == nil && req.Password == nil {
		return nil, apperrors.ErrInvalidInput
	}

	params := repository.UpdateUserParams{
		Name:  req.Name,
		Email: req.Email,
	}

	if req.Password != nil {
		hashed, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		params.Password = &hashed
	}

	return s.userRepo.Update(ctx, userID, params)
}

func (s *UserServiceImpl) GetDashboard(ctx context.Context, userID int) (*Dashboard, error) {
	eventsCreated, err := s.statsRepo.CountEventsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookingsMade, err := s.bookingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.statsRepo.UpcomingEvents(ctx, userID, dashboardUpcomingLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.bookingRepo.ListByUser(ctx, userID, dashboardRecentLimit, 0)
	if err != nil {
		return nil, err
	}

	locations, err := s.statsRepo.LocationTallies(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		EventsCreated:  eventsCreated,
		BookingsMade:   bookingsMade,
		UpcomingEvents: upcoming,
		RecentBookings: recent,
		Locations:      locations,
	}, nil
}
