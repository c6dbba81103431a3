package impl

import (
	"context"
	"testing"
	"time"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	mockRepo "authcore/internal/mocks/repository"
	mockSvc "authcore/internal/mocks/service"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	sessionRepo *mockRepo.MockDeviceSessionRepository
	txManager   *mockRepo.MockTransactionManager
	hasher      *mockSvc.MockTokenHasher
	resolver    *mockSvc.MockDeviceResolver
	srv         *sessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		sessionRepo: mockRepo.NewMockDeviceSessionRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		hasher:      mockSvc.NewMockTokenHasher(t),
		resolver:    mockSvc.NewMockDeviceResolver(t),
	}

	srv, ok := NewSessionService(SessionServiceParams{
		SessionRepo: f.sessionRepo,
		TxManager:   f.txManager,
		Hasher:      f.hasher,
		Resolver:    f.resolver,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*sessionService)
	require.True(t, ok)
	srv.now = func() time.Time { return testNow }
	f.srv = srv

	return f
}

// expectTx runs the transactional callback against a factory that hands out txRepo.
func (f *sessionFixture) expectTx(t *testing.T, ctx context.Context, txRepo *mockRepo.MockDeviceSessionRepository) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().DeviceSessionRepo().Return(txRepo)

			return fn(factory)
		})
}

func TestSessionService_Register_ReplacesExistingSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	device := entity.DeviceContext{UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", IP: "10.0.0.1"}
	txRepo := mockRepo.NewMockDeviceSessionRepository(t)

	f.resolver.EXPECT().Describe(device).Return(entity.DeviceInfo{DisplayName: "Safari on iOS", Class: entity.DeviceClassMobile})
	f.hasher.EXPECT().Hash("refresh-1").Return("digest-1")
	f.expectTx(t, ctx, txRepo)
	txRepo.EXPECT().DeleteByUserAndDevice(ctx, userID, "device-a").Return(int64(1), nil)
	txRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.DeviceSession) bool {
		return s.UserID == userID &&
			s.DeviceID == "device-a" &&
			s.TokenHash == "digest-1" &&
			s.Device.DisplayName == "Safari on iOS" &&
			s.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
	})).Return(nil)

	session, err := f.srv.Register(ctx, &usecase.RegisterSessionInput{
		UserID:       userID,
		DeviceID:     "device-a",
		RefreshToken: "refresh-1",
		Device:       device,
	})

	require.NoError(t, err)
	assert.Equal(t, "device-a", session.DeviceID)
	assert.Equal(t, testNow, session.LastUsedAt)
}

func TestSessionService_Register_FingerprintsWhenDeviceIDMissing(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	device := entity.DeviceContext{UserAgent: "curl/8.0", IP: "10.0.0.2"}
	txRepo := mockRepo.NewMockDeviceSessionRepository(t)

	f.resolver.EXPECT().Fingerprint(device).Return("fp-abc")
	f.resolver.EXPECT().Describe(device).Return(entity.DeviceInfo{DisplayName: "API Client", Class: entity.DeviceClassAPIClient})
	f.hasher.EXPECT().Hash("refresh-1").Return("digest-1")
	f.expectTx(t, ctx, txRepo)
	txRepo.EXPECT().DeleteByUserAndDevice(ctx, userID, "fp-abc").Return(int64(0), nil)
	txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeviceSession")).Return(nil)

	session, err := f.srv.Register(ctx, &usecase.RegisterSessionInput{UserID: userID, RefreshToken: "refresh-1", Device: device})

	require.NoError(t, err)
	assert.Equal(t, "fp-abc", session.DeviceID)
}

func TestSessionService_Register_ConflictSurfaces(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	txRepo := mockRepo.NewMockDeviceSessionRepository(t)

	f.resolver.EXPECT().Describe(mock.Anything).Return(entity.DeviceInfo{})
	f.hasher.EXPECT().Hash("refresh-1").Return("digest-1")
	f.expectTx(t, ctx, txRepo)
	txRepo.EXPECT().DeleteByUserAndDevice(ctx, userID, "device-a").Return(int64(0), nil)
	txRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrConflict)

	_, err := f.srv.Register(ctx, &usecase.RegisterSessionInput{UserID: userID, DeviceID: "device-a", RefreshToken: "refresh-1"})

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestSessionService_Rotate_SwapsOnlyTheCurrentToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	txRepo := mockRepo.NewMockDeviceSessionRepository(t)

	f.resolver.EXPECT().Describe(mock.Anything).Return(entity.DeviceInfo{})
	f.hasher.EXPECT().Hash("refresh-2").Return("digest-2")
	f.hasher.EXPECT().Hash("refresh-1").Return("digest-1")
	f.expectTx(t, ctx, txRepo)
	txRepo.EXPECT().DeleteByToken(ctx, userID, "device-a", "digest-1").Return(int64(1), nil)
	txRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.DeviceSession) bool {
		return s.TokenHash == "digest-2"
	})).Return(nil)

	session, err := f.srv.Rotate(ctx, &usecase.RegisterSessionInput{
		UserID:               userID,
		DeviceID:             "device-a",
		RefreshToken:         "refresh-2",
		PreviousRefreshToken: "refresh-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "digest-2", session.TokenHash)
}

func TestSessionService_Rotate_LosesRaceToConcurrentRefresh(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	txRepo := mockRepo.NewMockDeviceSessionRepository(t)

	f.resolver.EXPECT().Describe(mock.Anything).Return(entity.DeviceInfo{})
	f.hasher.EXPECT().Hash("refresh-3").Return("digest-3")
	f.hasher.EXPECT().Hash("refresh-1").Return("digest-1")
	f.expectTx(t, ctx, txRepo)
	// The other request already replaced digest-1, so nothing matches.
	txRepo.EXPECT().DeleteByToken(ctx, userID, "device-a", "digest-1").Return(int64(0), nil)

	session, err := f.srv.Rotate(ctx, &usecase.RegisterSessionInput{
		UserID:               userID,
		DeviceID:             "device-a",
		RefreshToken:         "refresh-3",
		PreviousRefreshToken: "refresh-1",
	})

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenRevoked)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_Rotate_RequiresPreviousToken(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.srv.Rotate(context.Background(), &usecase.RegisterSessionInput{
		UserID:       uuid.New(),
		DeviceID:     "device-a",
		RefreshToken: "refresh-2",
	})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenRevoked)
}

func TestSessionService_Verify(t *testing.T) {
	userID := uuid.New()
	live := &entity.DeviceSession{UserID: userID, DeviceID: "device-a", TokenHash: "digest-current", ExpiresAt: testNow.Add(time.Hour)}
	expired := &entity.DeviceSession{UserID: userID, DeviceID: "device-a", TokenHash: "digest-current", ExpiresAt: testNow.Add(-time.Second)}

	tests := []struct {
		name    string
		session *entity.DeviceSession
		findErr error
		token   string
		match   *bool
		wantErr error
	}{
		{name: "current token", session: live, token: "current", match: boolPtr(true)},
		{name: "rotated token replayed", session: live, token: "stale", match: boolPtr(false), wantErr: domainerrors.ErrRefreshTokenRevoked},
		{name: "expired session", session: expired, token: "current", wantErr: domainerrors.ErrRefreshTokenRevoked},
		{name: "no session", findErr: repository.ErrDeviceSessionNotFound, token: "current", wantErr: domainerrors.ErrRefreshTokenRevoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			ctx := context.Background()

			f.sessionRepo.EXPECT().FindByUserAndDevice(ctx, userID, "device-a").Return(tt.session, tt.findErr)
			if tt.match != nil {
				f.hasher.EXPECT().Equal(tt.token, "digest-current").Return(*tt.match)
			}

			err := f.srv.Verify(ctx, userID, "device-a", tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSessionService_Revoke_IsIdempotent(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.sessionRepo.EXPECT().DeleteByUserAndDevice(ctx, userID, "device-a").Return(int64(1), nil).Once()
	f.sessionRepo.EXPECT().DeleteByUserAndDevice(ctx, userID, "device-a").Return(int64(0), nil).Once()

	require.NoError(t, f.srv.Revoke(ctx, userID, "device-a"))
	require.NoError(t, f.srv.Revoke(ctx, userID, "device-a"))
}

func TestSessionService_RevokeAll(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.sessionRepo.EXPECT().DeleteAllByUser(ctx, userID).Return(int64(3), nil)

	removed, err := f.srv.RevokeAll(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionService_RevokeAll_RepositoryError(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.sessionRepo.EXPECT().DeleteAllByUser(ctx, userID).Return(int64(0), errors.New("connection reset"))

	_, err := f.srv.RevokeAll(ctx, userID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to revoke device sessions")
}

func TestSessionService_List(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.DeviceSession{
		{DeviceID: "phone", Device: entity.DeviceInfo{DisplayName: "Safari on iOS", Class: entity.DeviceClassMobile}, LastUsedAt: testNow},
		{DeviceID: "laptop", Device: entity.DeviceInfo{DisplayName: "Chrome on macOS", Class: entity.DeviceClassDesktop}, LastUsedAt: testNow.Add(-time.Hour)},
	}

	f.sessionRepo.EXPECT().ListActiveByUser(ctx, userID).Return(sessions, nil)

	views, err := f.srv.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "phone", views[0].DeviceID)
	assert.Equal(t, entity.DeviceClassDesktop, views[1].DeviceClass)
	assert.Equal(t, "Chrome on macOS", views[1].DisplayName)
}

func boolPtr(v bool) *bool {
	return &v
}
