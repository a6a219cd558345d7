package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rishtahub/rishtahub/internal/db"
	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/utils/pagination"
)

// SearchFilter carries the optional candidate-search criteria supplied by
// the requester. Zero values mean "not supplied".
type SearchFilter struct {
	MinAge   int
	MaxAge   int
	Gender   string
	Location string
}

// UserRepository provides data access methods for the User model,
// including the candidate-search query.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, user *db.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID loads a single user or fails with ErrNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil when none exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs batch-loads users for the given id set, keyed by id.
// Used to join profiles onto interest lists without per-row queries.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]db.User, error) {
	out := make(map[uint64]db.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []db.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// UpdateProfile applies a partial column update and returns the fresh row.
//
// Behavior:
//   - updates holds column name → value pairs already filtered to the
//     caller-updatable profile fields.
//   - Fails with ErrNotFound when the user does not exist.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uint64, updates map[string]any) (*db.User, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&db.User{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			// Updates with identical values also report zero rows on
			// some dialects, so verify existence explicitly.
			if _, err := r.FindByID(ctx, id); err != nil {
				return nil, err
			}
		}
	}
	return r.FindByID(ctx, id)
}

// SearchCandidates returns the paginated pool of eligible, not-yet-contacted
// candidates for the requester.
//
// Eligibility, all enforced in one query:
//  1. Never the requester, and never anyone the requester has already sent
//     an interest to (any status) — contacted users drop out permanently.
//  2. Symmetric preference compatibility: the candidate's gender must
//     satisfy the requester's interestedIn, and the candidate's
//     interestedIn must cover the requester's gender. A requester of
//     gender "other" only sees candidates whose interestedIn is "both".
//  3. Age within [MinAge, MaxAge].
//  4. Optional case-insensitive location substring.
//  5. An explicit gender filter is ANDed with rule 2 — it narrows the
//     implicit restriction, never widens it.
//
// Ordered by registration time, newest first. Returns the page rows plus
// the total eligible count.
func (r *UserRepository) SearchCandidates(
	ctx context.Context,
	requester *db.User,
	filter SearchFilter,
	window pagination.Window,
) ([]db.User, int64, error) {
	contacted := r.db.
		Model(&db.Interest{}).
		Select("to_user_id").
		Where("from_user_id = ?", requester.ID)

	query := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id <> ?", requester.ID).
		Where("id NOT IN (?)", contacted).
		Where("age >= ? AND age <= ?", filter.MinAge, filter.MaxAge)

	// requester's preference restricts candidate gender
	switch requester.InterestedIn {
	case db.InterestedInMale:
		query = query.Where("gender = ?", db.GenderMale)
	case db.InterestedInFemale:
		query = query.Where("gender = ?", db.GenderFemale)
	}

	// candidate's preference must cover requester's gender
	switch requester.Gender {
	case db.GenderMale:
		query = query.Where("interested_in IN ?", []string{db.InterestedInMale, db.InterestedInBoth})
	case db.GenderFemale:
		query = query.Where("interested_in IN ?", []string{db.InterestedInFemale, db.InterestedInBoth})
	default:
		query = query.Where("interested_in = ?", db.InterestedInBoth)
	}

	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []db.User
	err := query.
		Order("created_at DESC, id DESC").
		Offset(window.Offset()).
		Limit(window.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
