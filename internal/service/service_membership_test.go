package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/mock"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
	"github.com/sravani-k-5/vidspark-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type membershipMocks struct {
	users   *mock.MockUserRepository
	videos  *mock.MockVideoRepository
	objects *mock.MockObjectStorage
}

func newTestMembershipSvc(t *testing.T, ctrl *gomock.Controller) (MembershipService, membershipMocks) {
	t.Helper()
	m := membershipMocks{
		users:   mock.NewMockUserRepository(ctrl),
		videos:  mock.NewMockVideoRepository(ctrl),
		objects: mock.NewMockObjectStorage(ctrl),
	}
	svc := NewMembershipService(m.users, m.videos, m.objects, config.DB{QueryTimeout: time.Second}, logger.Nop())
	return svc, m
}

// ── Toggle ───────────────────────────────────────────────────────────────────

func TestMembershipService_Toggle_ReturnsUpdatedSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	m.users.EXPECT().
		ToggleMembership(gomock.Any(), testUserID, models.MembershipLiked, testVideoID).
		Return(models.MembershipSet{testVideoID}, nil)

	set, err := svc.Toggle(context.Background(), testUserID, models.MembershipLiked, testVideoID)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipSet{testVideoID}, set)
}

func TestMembershipService_Toggle_TrimsVideoID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	m.users.EXPECT().
		ToggleMembership(gomock.Any(), testUserID, models.MembershipShared, testVideoID).
		Return(models.MembershipSet{}, nil)

	_, err := svc.Toggle(context.Background(), testUserID, models.MembershipShared, "  "+testVideoID+" ")
	require.NoError(t, err)
}

func TestMembershipService_Toggle_AcceptsOrphanedAndMalformedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	m.users.EXPECT().
		ToggleMembership(gomock.Any(), testUserID, models.MembershipLiked, "abc").
		Return(models.MembershipSet{"abc"}, nil)

	set, err := svc.Toggle(context.Background(), testUserID, models.MembershipLiked, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.MembershipSet{"abc"}, set)
}

func TestMembershipService_Toggle_DetachedFromCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.users.EXPECT().ToggleMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ models.MembershipKind, id string) (models.MembershipSet, error) {
			assert.NoError(t, ctx.Err(), "write context must outlive the request")
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "write context must stay bounded")
			return models.MembershipSet{id}, nil
		},
	)

	_, err := svc.Toggle(ctx, testUserID, models.MembershipLiked, testVideoID)
	require.NoError(t, err)
}

func TestMembershipService_Toggle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.MembershipKind
		videoID string
		repoErr error
		wantErr error
	}{
		{name: "unknown kind", kind: "watched", videoID: testVideoID, wantErr: ErrUnknownMembershipKind},
		{name: "blank video id", kind: models.MembershipLiked, videoID: "  ", wantErr: ErrInvalidDataProvided},
		{name: "user not found", kind: models.MembershipLiked, videoID: testVideoID, repoErr: store.ErrNoUserWasFound, wantErr: store.ErrNoUserWasFound},
		{
			name:    "store unavailable",
			kind:    models.MembershipShared,
			videoID: testVideoID,
			repoErr: errors.Join(store.ErrStoreUnavailable, context.DeadlineExceeded),
			wantErr: store.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestMembershipSvc(t, ctrl)
			if tt.repoErr != nil {
				m.users.EXPECT().ToggleMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.repoErr)
			}

			_, err := svc.Toggle(context.Background(), testUserID, tt.kind, tt.videoID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Concurrency ──────────────────────────────────────────────────────────────

// lockingUserRepository serializes toggles the way the row lock does in
// Postgres.
type lockingUserRepository struct {
	store.UserRepository

	mu   sync.Mutex
	sets map[string]models.MembershipSet
}

func (r *lockingUserRepository) ToggleMembership(_ context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userID + "/" + string(kind)
	next, _ := r.sets[key].Toggle(videoID)
	r.sets[key] = next
	return next, nil
}

func TestMembershipService_Toggle_ConcurrentTogglesMatchSerialExecution(t *testing.T) {
	repo := &lockingUserRepository{sets: map[string]models.MembershipSet{}}
	svc := NewMembershipService(repo, nil, nil, config.DB{QueryTimeout: time.Second}, logger.Nop())

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			// every even id is toggled twice, so it must end up absent
			id := fmt.Sprintf("video-%d", i)
			times := 1 + (i+1)%2
			for j := 0; j < times; j++ {
				_, err := svc.Toggle(context.Background(), testUserID, models.MembershipLiked, id)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	final := repo.sets[testUserID+"/"+string(models.MembershipLiked)]
	require.NoError(t, final.Validate())
	assert.Len(t, final, n/2)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("video-%d", i)
		assert.Equalf(t, i%2 == 1, final.Contains(id), "id %s", id)
	}
	assert.Empty(t, repo.sets[testUserID+"/"+string(models.MembershipShared)])
}

// ── ListVideos ───────────────────────────────────────────────────────────────

func TestMembershipService_ListVideos_ResolvesAndSigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	set := models.MembershipSet{testVideoID, "orphan"}
	m.users.EXPECT().GetMembership(gomock.Any(), testUserID, models.MembershipLiked).Return(set, nil)
	m.videos.EXPECT().ListVideos(gomock.Any(), models.VideoFilter{IDs: set}).
		Return([]models.Video{{VideoID: testVideoID, StorageKey: "1-a.mp4"}}, nil)
	m.objects.EXPECT().PresignGetURL(gomock.Any(), "1-a.mp4").Return("https://signed/1-a.mp4", nil)

	videos, err := svc.ListVideos(context.Background(), testUserID, models.MembershipLiked)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, testVideoID, videos[0].VideoID)
	assert.Equal(t, "https://signed/1-a.mp4", videos[0].URL)
}

func TestMembershipService_ListVideos_KeepsSetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	first, second := "0190c7e5-0000-7000-8000-0000000000f1", "0190c7e5-0000-7000-8000-0000000000f2"
	set := models.MembershipSet{first, second}
	m.users.EXPECT().GetMembership(gomock.Any(), testUserID, models.MembershipShared).Return(set, nil)
	// the catalog answers newest upload first
	m.videos.EXPECT().ListVideos(gomock.Any(), models.VideoFilter{IDs: set}).
		Return([]models.Video{{VideoID: second, StorageKey: "k2"}, {VideoID: first, StorageKey: "k1"}}, nil)
	m.objects.EXPECT().PresignGetURL(gomock.Any(), gomock.Any()).Return("https://signed", nil).Times(2)

	videos, err := svc.ListVideos(context.Background(), testUserID, models.MembershipShared)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, first, videos[0].VideoID)
	assert.Equal(t, second, videos[1].VideoID)
}

func TestMembershipService_ListVideos_EmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	m.users.EXPECT().GetMembership(gomock.Any(), testUserID, models.MembershipShared).Return(models.MembershipSet{}, nil)

	videos, err := svc.ListVideos(context.Background(), testUserID, models.MembershipShared)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestMembershipService_ListVideos_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestMembershipSvc(t, ctrl)

	m.users.EXPECT().GetMembership(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrNoUserWasFound)

	_, err := svc.ListVideos(context.Background(), testUserID, models.MembershipLiked)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
