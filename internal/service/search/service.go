package search

import (
	"context"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/repository"
	"github.com/rishtahub/rishtahub/internal/service/user"
	"github.com/rishtahub/rishtahub/internal/utils/pagination"
)

// Query is the typed input for GET /users/search. Every field is optional.
type Query struct {
	MinAge   int    `form:"minAge" binding:"omitempty,gte=18,lte=100"`
	MaxAge   int    `form:"maxAge" binding:"omitempty,gte=18,lte=100"`
	Gender   string `form:"gender" binding:"omitempty,oneof=male female other"`
	Location string `form:"location" binding:"omitempty,max=128"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	Limit    int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// Result is one page of eligible candidates with pagination metadata.
type Result struct {
	Users      []user.PublicProfile `json:"users"`
	Pagination pagination.Meta      `json:"pagination"`
}

// Service derives the pool of eligible, not-yet-contacted candidates for
// a requester. The eligibility rules themselves are compiled into a
// single query by the user repository; this layer resolves the requester,
// applies defaults, and shapes the response.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
}

// NewService creates a candidate-search service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
	}
}

// Candidates returns the requester's eligible candidate page.
//
// Behavior:
//   - Age window defaults to 18–100 when not supplied.
//   - Users the requester already sent an interest to never appear,
//     whatever the outcome of that interest.
//   - Candidates are returned most-recently-registered first; profiles
//     are the public shape, contact withheld.
func (s *Service) Candidates(ctx context.Context, requesterID uint64, q Query) (*Result, error) {
	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	filter := repository.SearchFilter{
		MinAge:   q.MinAge,
		MaxAge:   q.MaxAge,
		Gender:   q.Gender,
		Location: q.Location,
	}
	if filter.MinAge == 0 {
		filter.MinAge = 18
	}
	if filter.MaxAge == 0 {
		filter.MaxAge = 100
	}

	window := pagination.NewWindow(q.Page, q.Limit)

	users, total, err := s.userRepo.SearchCandidates(ctx, requester, filter, window)
	if err != nil {
		s.appCtx.Logger.Error("candidate search failed", "requester", requesterID, "err", err)
		return nil, err
	}

	profiles := make([]user.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, user.PublicProfileFrom(u))
	}

	return &Result{
		Users:      profiles,
		Pagination: window.MetaFor(total, len(users)),
	}, nil
}
