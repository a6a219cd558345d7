package interest

import (
	"context"
	"time"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/cache"
	"github.com/rishtahub/rishtahub/internal/db"
	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/repository"
	"github.com/rishtahub/rishtahub/internal/service/user"
)

// ReceivedInterest is an incoming interest joined with the sender's
// public profile.
type ReceivedInterest struct {
	ID        uint64             `json:"id"`
	Status    string             `json:"status"`
	Message   string             `json:"message,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	FromUser  user.PublicProfile `json:"fromUser"`
}

// SentInterest is an outgoing interest joined with the recipient's
// public profile.
type SentInterest struct {
	ID        uint64             `json:"id"`
	Status    string             `json:"status"`
	Message   string             `json:"message,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	ToUser    user.PublicProfile `json:"toUser"`
}

// Match is a derived mutual connection. It has no storage of its own;
// it is recomputed from accepted interests on every query. Contact
// details become visible here.
type Match struct {
	User      user.Profile `json:"user"`
	MatchedAt time.Time    `json:"matchedAt"`
}

// Service is the interest lifecycle engine. It orchestrates creation,
// response, cancellation and match derivation over the interest
// repository, consulting the user repository for identity and joins.
//
// Each operation is a bounded synchronous read/write sequence; the
// repository's atomic create/conditional-update semantics carry the
// concurrency guarantees, so the service holds no locks and no state
// across calls.
type Service struct {
	appCtx       *app.AppContext
	interestRepo *repository.InterestRepository
	userRepo     *repository.UserRepository
}

// NewService creates the lifecycle engine with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:       appCtx,
		interestRepo: repository.NewInterestRepository(appCtx.DB),
		userRepo:     repository.NewUserRepository(appCtx.DB),
	}
}

// SendInterest creates a pending interest from the requester to the target.
//
// Behavior:
//   - Fails with ErrSelfInterest when requester == target.
//   - Fails with ErrNotFound when the target does not exist.
//   - Fails with ErrDuplicateInterest when the requester already sent an
//     interest to the target; a reverse pending interest does not block.
//   - On success bumps the target's pending counter in Redis (best effort).
func (s *Service) SendInterest(ctx context.Context, requesterID, toUserID uint64, message string) (*db.Interest, error) {
	s.appCtx.Logger.Debug("SendInterest called", "from", requesterID, "to", toUserID)

	if requesterID == toUserID {
		return nil, svcErr.ErrSelfInterest
	}
	if _, err := s.userRepo.FindByID(ctx, toUserID); err != nil {
		return nil, err
	}

	interest, err := s.interestRepo.Create(ctx, requesterID, toUserID, message)
	if err != nil {
		return nil, err
	}

	// counter cache: +1 pending for the recipient
	key := s.appCtx.RedisCache.KeyForPendingCount(toUserID)
	if _, err := s.appCtx.RedisCache.Incr(ctx, key); err == nil {
		_ = s.appCtx.RedisCache.Client.Expire(ctx, key, cache.CountTTL).Err()
	}

	s.appCtx.Logger.Info("interest sent", "from", requesterID, "to", toUserID, "interest_id", interest.ID)
	return interest, nil
}

// RespondToInterest moves a pending interest to accepted or rejected.
//
// Behavior:
//   - Fails with ErrNotFound when no such interest exists.
//   - Fails with ErrForbidden unless the requester is the recipient.
//   - Fails with ErrInvalidTransition when the interest is no longer
//     pending; accepted and rejected are terminal either way.
//   - The transition is the sole trigger for a match becoming derivable.
func (s *Service) RespondToInterest(ctx context.Context, requesterID, interestID uint64, decision string) (*db.Interest, error) {
	s.appCtx.Logger.Debug("RespondToInterest called", "requester", requesterID, "interest_id", interestID, "decision", decision)

	interest, err := s.interestRepo.FindByID(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if interest.ToUserID != requesterID {
		return nil, svcErr.ErrForbidden
	}

	updated, err := s.interestRepo.UpdateStatusIfPending(ctx, interestID, decision)
	if err != nil {
		return nil, err
	}

	// counter cache: one fewer pending for the recipient
	key := s.appCtx.RedisCache.KeyForPendingCount(requesterID)
	if _, err := s.appCtx.RedisCache.Decr(ctx, key); err == nil {
		_ = s.appCtx.RedisCache.Client.Expire(ctx, key, cache.CountTTL).Err()
	}

	s.appCtx.Logger.Info("interest responded", "interest_id", interestID, "status", decision)
	return updated, nil
}

// CancelInterest permanently removes a pending interest.
//
// Behavior:
//   - Fails with ErrNotFound when no such interest exists.
//   - Fails with ErrForbidden unless the requester is the sender.
//   - Fails with ErrInvalidTransition once the recipient has responded;
//     responded interests are immutable history.
func (s *Service) CancelInterest(ctx context.Context, requesterID, interestID uint64) error {
	s.appCtx.Logger.Debug("CancelInterest called", "requester", requesterID, "interest_id", interestID)

	interest, err := s.interestRepo.FindByID(ctx, interestID)
	if err != nil {
		return err
	}
	if interest.FromUserID != requesterID {
		return svcErr.ErrForbidden
	}

	if err := s.interestRepo.DeleteIfPending(ctx, interestID); err != nil {
		return err
	}

	key := s.appCtx.RedisCache.KeyForPendingCount(interest.ToUserID)
	if _, err := s.appCtx.RedisCache.Decr(ctx, key); err == nil {
		_ = s.appCtx.RedisCache.Client.Expire(ctx, key, cache.CountTTL).Err()
	}

	s.appCtx.Logger.Info("interest cancelled", "interest_id", interestID)
	return nil
}

// ListReceived returns incoming interests joined with sender profiles.
//
// Behavior:
//   - An empty statusFilter means pending only: responded interests have
//     no further action here and surface via matches or sent history.
//   - statusFilter "all" returns every status.
//   - Sender profiles are batch-fetched by id set, then assembled; contact
//     fields are withheld pre-match.
func (s *Service) ListReceived(ctx context.Context, requesterID uint64, statusFilter string) ([]ReceivedInterest, error) {
	status := statusFilter
	switch statusFilter {
	case "":
		status = db.StatusPending
	case "all":
		status = ""
	}

	interests, err := s.interestRepo.FindIncoming(ctx, requesterID, status)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint64, 0, len(interests))
	for _, in := range interests {
		senderIDs = append(senderIDs, in.FromUserID)
	}
	senders, err := s.userRepo.FindByIDs(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ReceivedInterest, 0, len(interests))
	for _, in := range interests {
		sender, ok := senders[in.FromUserID]
		if !ok {
			continue
		}
		out = append(out, ReceivedInterest{
			ID:        in.ID,
			Status:    in.Status,
			Message:   in.Message,
			CreatedAt: in.CreatedAt,
			UpdatedAt: in.UpdatedAt,
			FromUser:  user.PublicProfileFrom(sender),
		})
	}
	return out, nil
}

// ListSent returns outgoing interests joined with recipient profiles,
// every status included, so the sender can track their history.
func (s *Service) ListSent(ctx context.Context, requesterID uint64) ([]SentInterest, error) {
	interests, err := s.interestRepo.FindOutgoing(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	recipientIDs := make([]uint64, 0, len(interests))
	for _, in := range interests {
		recipientIDs = append(recipientIDs, in.ToUserID)
	}
	recipients, err := s.userRepo.FindByIDs(ctx, recipientIDs)
	if err != nil {
		return nil, err
	}

	out := make([]SentInterest, 0, len(interests))
	for _, in := range interests {
		recipient, ok := recipients[in.ToUserID]
		if !ok {
			continue
		}
		out = append(out, SentInterest{
			ID:        in.ID,
			Status:    in.Status,
			Message:   in.Message,
			CreatedAt: in.CreatedAt,
			UpdatedAt: in.UpdatedAt,
			ToUser:    user.PublicProfileFrom(recipient),
		})
	}
	return out, nil
}

// MutualMatches derives the requester's matches.
//
// Behavior:
//   - A match with user U exists iff an accepted interest exists in either
//     direction between the requester and U; a single acceptance already
//     represents mutual willingness, since the recipient explicitly said yes.
//   - Both directions accepted independently still yield one entry, with
//     matchedAt taken as the earliest updatedAt among the duplicates.
//   - Matched profiles are batch-fetched and include contact fields.
func (s *Service) MutualMatches(ctx context.Context, requesterID uint64) ([]Match, error) {
	sent, err := s.interestRepo.FindAcceptedBySender(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	received, err := s.interestRepo.FindAcceptedByRecipient(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	// union both directions, dedup by other party keeping earliest updatedAt
	matchedAt := make(map[uint64]time.Time)
	order := make([]uint64, 0, len(sent)+len(received))
	note := func(otherID uint64, at time.Time) {
		if prev, ok := matchedAt[otherID]; !ok {
			matchedAt[otherID] = at
			order = append(order, otherID)
		} else if at.Before(prev) {
			matchedAt[otherID] = at
		}
	}
	for _, in := range sent {
		note(in.ToUserID, in.UpdatedAt)
	}
	for _, in := range received {
		note(in.FromUserID, in.UpdatedAt)
	}

	others, err := s.userRepo.FindByIDs(ctx, order)
	if err != nil {
		return nil, err
	}

	out := make([]Match, 0, len(order))
	for _, id := range order {
		other, ok := others[id]
		if !ok {
			continue
		}
		out = append(out, Match{
			User:      user.ProfileFrom(other),
			MatchedAt: matchedAt[id],
		})
	}

	s.appCtx.Logger.Debug("MutualMatches result", "requester", requesterID, "count", len(out))
	return out, nil
}

// CountReceivedPending returns the number of pending incoming interests.
// Cache-first strategy:
//  1. Attempts to read from Redis (interests:pending:userID).
//  2. On cache miss falls back to the DB count.
//  3. On DB fetch, updates Redis with a fresh TTL.
func (s *Service) CountReceivedPending(ctx context.Context, requesterID uint64) (int64, error) {
	if n, ok, _ := s.appCtx.RedisCache.GetPendingCount(ctx, requesterID); ok && n >= 0 {
		return n, nil
	}

	count, err := s.interestRepo.CountPendingIncoming(ctx, requesterID)
	if err != nil {
		return 0, err
	}

	_ = s.appCtx.RedisCache.SetPendingCount(ctx, requesterID, count)
	return count, nil
}
