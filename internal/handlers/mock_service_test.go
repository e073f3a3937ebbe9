package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/models"
	"pulseboard/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerRes service.AuthResult
	registerErr error
	loginRes    service.AuthResult
	loginErr    error
	parseIdent  service.Identity
	parseErr    error
	profileUser *models.User
	profileErr  error

	lastRegister   [3]string // username, email, password
	lastLogin      [2]string // identifier, password
	lastParseToken string
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (service.AuthResult, error) {
	m.lastRegister = [3]string{username, email, password}
	return m.registerRes, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, emailOrUsername, password string) (service.AuthResult, error) {
	m.lastLogin = [2]string{emailOrUsername, password}
	return m.loginRes, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

func (m *mockAuth) Profile(ctx context.Context, userID int) (*models.User, error) {
	return m.profileUser, m.profileErr
}

type mockPosts struct {
	createID  string
	createErr error
	feedItems []models.FeedItem
	feedErr   error
	mine      []models.MyPost
	mineErr   error
	updateErr error
	deleteErr error

	lastCreateCaller service.Identity
	lastCreateText   string
	lastCreateAnon   bool
	lastFeedViewer   service.Identity
	lastMineUserID   int
	lastUpdateUserID int
	lastUpdatePostID string
	lastUpdate       service.PostUpdate
	lastDeleteUserID int
	lastDeletePostID string
}

func (m *mockPosts) Create(ctx context.Context, caller service.Identity, text string, anonymous bool) (string, error) {
	m.lastCreateCaller = caller
	m.lastCreateText = text
	m.lastCreateAnon = anonymous
	return m.createID, m.createErr
}

func (m *mockPosts) Feed(ctx context.Context, viewer service.Identity) ([]models.FeedItem, error) {
	m.lastFeedViewer = viewer
	return m.feedItems, m.feedErr
}

func (m *mockPosts) Mine(ctx context.Context, userID int) ([]models.MyPost, error) {
	m.lastMineUserID = userID
	return m.mine, m.mineErr
}

func (m *mockPosts) Update(ctx context.Context, userID int, postID string, upd service.PostUpdate) error {
	m.lastUpdateUserID = userID
	m.lastUpdatePostID = postID
	m.lastUpdate = upd
	return m.updateErr
}

func (m *mockPosts) Delete(ctx context.Context, userID int, postID string) error {
	m.lastDeleteUserID = userID
	m.lastDeletePostID = postID
	return m.deleteErr
}

// newTestRouter builds the full route table around the mocked services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if s.Stream == nil {
		s.Stream = service.NewStream()
	}
	h := NewHandler(s, nil)
	return h.InitRoutes()
}
