package auth

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
	"github.com/rishtahub/rishtahub/internal/utils/token"
)

func setupService(t *testing.T) *Service {
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

	require.NoError(t, gdb.AutoMigrate(&db.User{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.JWT.Secret = "test-secret"

	appCtx := app.New(gdb, cache.NewRedisCache(cfg), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(appCtx, cfg)
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Name:         "Arjun Mehta",
		Email:        "arjun@test.com",
		Password:     "secret123",
		Age:          30,
		Gender:       db.GenderMale,
		InterestedIn: db.InterestedInFemale,
		Location:     "Pune",
		Occupation:   "Engineer",
	}
}

func TestRegisterIssuesSession(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "arjun@test.com", session.User.Email)
	assert.NotZero(t, session.User.ID)

	// the token resolves back to the new account
	userID, err := token.Parse("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := registerRequest()
	req.Email = "  Arjun@Test.COM "
	session, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "arjun@test.com", session.User.Email)

	// the normalized form is what collides
	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, svcErr.ErrEmailTaken)
}

func TestRegisterNeverStoresClearPassword(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	session, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	var u db.User
	require.NoError(t, svc.appCtx.DB.First(&u, session.User.ID).Error)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestLogin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	session, err := svc.Login(ctx, LoginRequest{Email: "arjun@test.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	// wrong password and unknown email are indistinguishable
	_, err = svc.Login(ctx, LoginRequest{Email: "arjun@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, svcErr.ErrUnauthorized)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@test.com", Password: "secret123"})
	assert.ErrorIs(t, err, svcErr.ErrUnauthorized)
}
