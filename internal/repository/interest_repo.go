package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rishtahub/rishtahub/internal/db"
	svcErr "github.com/rishtahub/rishtahub/internal/errors"
)

// InterestRepository provides data access methods for the Interest model.
// It owns the storage-level invariants: one row per ordered
// (from_user, to_user) pair, and mutation only while status is pending.
type InterestRepository struct {
	db *gorm.DB
}

// NewInterestRepository creates a new repository bound to the given DB connection.
func NewInterestRepository(database *gorm.DB) *InterestRepository {
	return &InterestRepository{db: database}
}

// Create inserts a new pending interest from sender to recipient.
//
// Behavior:
//   - Fails with ErrSelfInterest when fromUserID == toUserID.
//   - The insert carries ON CONFLICT DO NOTHING against the unique
//     (from_user_id, to_user_id) index; RowsAffected = 0 means the ordered
//     pair already exists and the call fails with ErrDuplicateInterest.
//     Two concurrent sends for the same pair can never both succeed.
//   - The reverse pair is a distinct row and does not conflict.
//
// Example:
//
//	repo.Create(ctx, 1, 2, "hello") // user 1 expresses interest in user 2
func (r *InterestRepository) Create(
	ctx context.Context,
	fromUserID, toUserID uint64,
	message string,
) (*db.Interest, error) {
	if fromUserID == toUserID {
		return nil, svcErr.ErrSelfInterest
	}

	interest := db.Interest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     db.StatusPending,
		Message:    message,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
			DoNothing: true,
		}).
		Create(&interest)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, svcErr.ErrDuplicateInterest
	}
	return &interest, nil
}

// FindByID loads a single interest or fails with ErrNotFound.
func (r *InterestRepository) FindByID(ctx context.Context, id uint64) (*db.Interest, error) {
	var interest db.Interest
	err := r.db.WithContext(ctx).First(&interest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &interest, nil
}

// FindByPair returns the interest for the exact ordered pair, or nil when
// no such row exists. The reverse pair is never consulted.
func (r *InterestRepository) FindByPair(ctx context.Context, fromUserID, toUserID uint64) (*db.Interest, error) {
	var interest db.Interest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&interest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &interest, nil
}

// FindIncoming returns interests directed at the given user, newest first.
//
// Behavior:
//   - status narrows the result to a single status; empty means all.
//   - Ordered by created_at DESC with id DESC as tiebreak.
func (r *InterestRepository) FindIncoming(ctx context.Context, toUserID uint64, status string) ([]db.Interest, error) {
	var interests []db.Interest
	query := r.db.WithContext(ctx).
		Where("to_user_id = ?", toUserID).
		Order("created_at DESC, id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}

// FindOutgoing returns interests sent by the given user, newest first,
// every status included.
func (r *InterestRepository) FindOutgoing(ctx context.Context, fromUserID uint64) ([]db.Interest, error) {
	var interests []db.Interest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ?", fromUserID).
		Order("created_at DESC, id DESC").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// FindAcceptedBySender returns accepted interests where the user is the sender.
func (r *InterestRepository) FindAcceptedBySender(ctx context.Context, userID uint64) ([]db.Interest, error) {
	var interests []db.Interest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND status = ?", userID, db.StatusAccepted).
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// FindAcceptedByRecipient returns accepted interests where the user is the recipient.
func (r *InterestRepository) FindAcceptedByRecipient(ctx context.Context, userID uint64) ([]db.Interest, error) {
	var interests []db.Interest
	err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", userID, db.StatusAccepted).
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// UpdateStatusIfPending transitions an interest out of pending.
//
// Behavior:
//   - Single conditional UPDATE: `... WHERE id = ? AND status = 'pending'`.
//     Two concurrent responses on the same row cannot both succeed.
//   - RowsAffected = 0 is disambiguated with a follow-up read: missing row
//     fails with ErrNotFound, non-pending row with ErrInvalidTransition.
//   - Returns the updated row on success.
//
// Example:
//
//	repo.UpdateStatusIfPending(ctx, 7, db.StatusAccepted)
func (r *InterestRepository) UpdateStatusIfPending(ctx context.Context, id uint64, newStatus string) (*db.Interest, error) {
	result := r.db.WithContext(ctx).
		Model(&db.Interest{}).
		Where("id = ? AND status = ?", id, db.StatusPending).
		Update("status", newStatus)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, svcErr.ErrInvalidTransition
	}
	return r.FindByID(ctx, id)
}

// DeleteIfPending removes an interest that has not been responded to.
//
// Behavior:
//   - Single conditional DELETE restricted to pending status; accepted and
//     rejected rows are immutable history.
//   - RowsAffected = 0 → ErrNotFound when the row is gone,
//     ErrInvalidTransition when it exists in a terminal status.
func (r *InterestRepository) DeleteIfPending(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, db.StatusPending).
		Delete(&db.Interest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return svcErr.ErrInvalidTransition
	}
	return nil
}

// CountPendingIncoming counts pending interests directed at the user.
// Used in conjunction with the Redis counter (DB is fallback).
func (r *InterestRepository) CountPendingIncoming(ctx context.Context, toUserID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Interest{}).
		Where("to_user_id = ? AND status = ?", toUserID, db.StatusPending).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
