package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/service"
	"github.com/sravani-k-5/vidspark-backend/models"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0190c7e5-9f3a-7b7e-8a4d-1c2b3a4d5e6f"
	testVideoID = "0190c7e5-aaaa-7b7e-8a4d-1c2b3a4d5e6f"
	validToken  = "valid-token"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return acceptValidToken(ctx, tokenString)
	}
	return m.parseTokenFn(ctx, tokenString)
}

// acceptValidToken accepts validToken for testUserID and rejects anything else.
func acceptValidToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != validToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: testUserID}, nil
}

type mockMembershipService struct {
	toggleFn     func(ctx context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error)
	listVideosFn func(ctx context.Context, userID string, kind models.MembershipKind) ([]models.VideoWithURL, error)
}

func (m *mockMembershipService) Toggle(ctx context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error) {
	return m.toggleFn(ctx, userID, kind, videoID)
}

func (m *mockMembershipService) ListVideos(ctx context.Context, userID string, kind models.MembershipKind) ([]models.VideoWithURL, error) {
	return m.listVideosFn(ctx, userID, kind)
}

type mockVideoService struct {
	uploadFn func(ctx context.Context, upload models.VideoUpload, body io.Reader) (models.Video, error)
	listFn   func(ctx context.Context, category string) ([]models.VideoWithURL, error)
}

func (m *mockVideoService) Upload(ctx context.Context, upload models.VideoUpload, body io.Reader) (models.Video, error) {
	return m.uploadFn(ctx, upload, body)
}

func (m *mockVideoService) List(ctx context.Context, category string) ([]models.VideoWithURL, error) {
	return m.listFn(ctx, category)
}

type mockCommentService struct {
	createFn      func(ctx context.Context, comment models.Comment) (models.Comment, error)
	deleteFn      func(ctx context.Context, commentID, userID string) error
	listByVideoFn func(ctx context.Context, videoID string) ([]models.Comment, error)
}

func (m *mockCommentService) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	return m.createFn(ctx, comment)
}

func (m *mockCommentService) Delete(ctx context.Context, commentID, userID string) error {
	return m.deleteFn(ctx, commentID, userID)
}

func (m *mockCommentService) ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	return m.listByVideoFn(ctx, videoID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices fills every service the router may reach; tests override
// what they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:       &mockAuthService{},
		MembershipService: &mockMembershipService{},
		VideoService:      &mockVideoService{},
		CommentService:    &mockCommentService{},
		AppInfoService:    &mockAppInfoService{version: "test"},
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, config.Server{
		AllowedOrigins: []string{"*"},
		MaxUploadSize:  1 << 20,
	}, logger.Nop())
}

// serve runs req through the full router.
func serve(t *testing.T, svcs *service.Services, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	newTestHandler(svcs).Init().ServeHTTP(rr, req)
	return rr
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decodeBody(t, rr)["message"].(string)
	return msg
}
