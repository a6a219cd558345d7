package interest_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/cache"
	"github.com/rishtahub/rishtahub/internal/config"
	"github.com/rishtahub/rishtahub/internal/db"
	svcErr "github.com/rishtahub/rishtahub/internal/errors"
	"github.com/rishtahub/rishtahub/internal/service/interest"
)

//
// Test helpers
//

// seedUsers wipes the DB and inserts a minimal, deterministic dataset.
//
// Dataset:
//   - user 1: arjun (male, interested in women)
//   - user 2: priya (female, interested in men)
//   - user 3: neha  (female, interested in men)
func seedUsers(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	require.NoError(t, gdb.Exec("DELETE FROM interests").Error)
	require.NoError(t, gdb.Exec("DELETE FROM users").Error)

	users := []db.User{
		{ID: 1, Name: "arjun", Email: "arjun@test.com", PasswordHash: "x", Age: 30, Gender: db.GenderMale, InterestedIn: db.InterestedInFemale, Location: "Pune"},
		{ID: 2, Name: "priya", Email: "priya@test.com", PasswordHash: "x", Age: 27, Gender: db.GenderFemale, InterestedIn: db.InterestedInMale, Location: "Mumbai"},
		{ID: 3, Name: "neha", Email: "neha@test.com", PasswordHash: "x", Age: 26, Gender: db.GenderFemale, InterestedIn: db.InterestedInMale, Location: "Delhi"},
	}
	require.NoError(t, gdb.Create(&users).Error)
}

// setupService spins up an in-memory SQLite DB, applies migrations, seeds
// users, starts a miniredis, and wires everything into a lifecycle engine.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) (*interest.Service, *gorm.DB) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&db.User{}, &db.Interest{}))
	seedUsers(t, gdb)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx := app.New(gdb, redisCache, logger)
	return interest.NewService(appCtx), gdb
}

func pendingBetween(t *testing.T, gdb *gorm.DB, from, to uint64) *db.Interest {
	t.Helper()
	var in db.Interest
	err := gdb.Where("from_user_id = ? AND to_user_id = ?", from, to).First(&in).Error
	require.NoError(t, err)
	return &in
}

//
// Tests
//

func TestSendInterest(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	sent, err := svc.SendInterest(ctx, 1, 2, "namaste")
	require.NoError(t, err)
	assert.Equal(t, db.StatusPending, sent.Status)
	assert.Equal(t, "namaste", sent.Message)

	// immediate resend fails; the reverse direction succeeds independently
	_, err = svc.SendInterest(ctx, 1, 2, "again")
	assert.ErrorIs(t, err, svcErr.ErrDuplicateInterest)

	_, err = svc.SendInterest(ctx, 2, 1, "")
	require.NoError(t, err)
}

func TestSendInterestToSelf(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 1, "")
	assert.ErrorIs(t, err, svcErr.ErrSelfInterest)
}

func TestSendInterestUnknownTarget(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 404, "")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestRespondLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	in := pendingBetween(t, gdb, 1, 2)

	// wrong party cannot respond
	_, err = svc.RespondToInterest(ctx, 1, in.ID, db.StatusAccepted)
	assert.ErrorIs(t, err, svcErr.ErrForbidden)

	updated, err := svc.RespondToInterest(ctx, 2, in.ID, db.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, db.StatusAccepted, updated.Status)

	// accepted is terminal
	_, err = svc.RespondToInterest(ctx, 2, in.ID, db.StatusRejected)
	assert.ErrorIs(t, err, svcErr.ErrInvalidTransition)

	_, err = svc.RespondToInterest(ctx, 2, 99999, db.StatusAccepted)
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestCancelLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	in := pendingBetween(t, gdb, 1, 2)

	// only the sender may cancel
	assert.ErrorIs(t, svc.CancelInterest(ctx, 2, in.ID), svcErr.ErrForbidden)

	require.NoError(t, svc.CancelInterest(ctx, 1, in.ID))

	var count int64
	require.NoError(t, gdb.Model(&db.Interest{}).Where("from_user_id = ? AND to_user_id = ?", 1, 2).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// responded interests cannot be cancelled
	_, err = svc.SendInterest(ctx, 1, 3, "")
	require.NoError(t, err)
	in = pendingBetween(t, gdb, 1, 3)
	_, err = svc.RespondToInterest(ctx, 3, in.ID, db.StatusAccepted)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CancelInterest(ctx, 1, in.ID), svcErr.ErrInvalidTransition)
}

func TestSingleDirectionAcceptanceCreatesMatch(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	in := pendingBetween(t, gdb, 1, 2)
	_, err = svc.RespondToInterest(ctx, 2, in.ID, db.StatusAccepted)
	require.NoError(t, err)

	// acceptance alone creates the match, for both parties
	matchesA, err := svc.MutualMatches(ctx, 1)
	require.NoError(t, err)
	require.Len(t, matchesA, 1)
	assert.Equal(t, uint64(2), matchesA[0].User.ID)
	// contact details become visible post-match
	assert.Equal(t, "priya@test.com", matchesA[0].User.Email)

	matchesB, err := svc.MutualMatches(ctx, 2)
	require.NoError(t, err)
	require.Len(t, matchesB, 1)
	assert.Equal(t, uint64(1), matchesB[0].User.ID)
}

func TestBothDirectionsAcceptedDeduplicates(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	forward := pendingBetween(t, gdb, 1, 2)
	_, err = svc.RespondToInterest(ctx, 2, forward.ID, db.StatusAccepted)
	require.NoError(t, err)

	_, err = svc.SendInterest(ctx, 2, 1, "")
	require.NoError(t, err)
	backward := pendingBetween(t, gdb, 2, 1)
	_, err = svc.RespondToInterest(ctx, 1, backward.ID, db.StatusAccepted)
	require.NoError(t, err)

	var fwd, bwd db.Interest
	require.NoError(t, gdb.First(&fwd, forward.ID).Error)
	require.NoError(t, gdb.First(&bwd, backward.ID).Error)
	earliest := fwd.UpdatedAt
	if bwd.UpdatedAt.Before(earliest) {
		earliest = bwd.UpdatedAt
	}

	matches, err := svc.MutualMatches(ctx, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(2), matches[0].User.ID)
	assert.True(t, matches[0].MatchedAt.Equal(earliest))
}

func TestRejectedNeverMatches(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	in := pendingBetween(t, gdb, 1, 2)
	_, err = svc.RespondToInterest(ctx, 2, in.ID, db.StatusRejected)
	require.NoError(t, err)

	matches, err := svc.MutualMatches(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListReceivedDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "hello priya")
	require.NoError(t, err)
	_, err = svc.SendInterest(ctx, 3, 2, "")
	require.NoError(t, err)

	// respond to one of them
	in := pendingBetween(t, gdb, 3, 2)
	_, err = svc.RespondToInterest(ctx, 2, in.ID, db.StatusRejected)
	require.NoError(t, err)

	received, err := svc.ListReceived(ctx, 2, "")
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "arjun", received[0].FromUser.Name)
	assert.Equal(t, "hello priya", received[0].Message)

	all, err := svc.ListReceived(ctx, 2, "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	rejected, err := svc.ListReceived(ctx, 2, db.StatusRejected)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "neha", rejected[0].FromUser.Name)
}

func TestListSentIncludesEveryStatus(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	_, err = svc.SendInterest(ctx, 1, 3, "")
	require.NoError(t, err)

	in := pendingBetween(t, gdb, 1, 3)
	_, err = svc.RespondToInterest(ctx, 3, in.ID, db.StatusAccepted)
	require.NoError(t, err)

	sent, err := svc.ListSent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sent, 2)

	statuses := map[string]bool{}
	for _, s := range sent {
		statuses[s.Status] = true
	}
	assert.True(t, statuses[db.StatusPending])
	assert.True(t, statuses[db.StatusAccepted])
}

func TestCountReceivedPendingCache(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	_, err = svc.SendInterest(ctx, 3, 2, "")
	require.NoError(t, err)

	// sends keep the counter warm
	count, err := svc.CountReceivedPending(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// responding decrements it
	received, err := svc.ListReceived(ctx, 2, "")
	require.NoError(t, err)
	_, err = svc.RespondToInterest(ctx, 2, received[0].ID, db.StatusAccepted)
	require.NoError(t, err)

	count, err = svc.CountReceivedPending(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
