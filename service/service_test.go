package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/models"
	"Agora/pkg/database"
	"Agora/pkg/response"
	"Agora/pkg/snowflake"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	mu   sync.Mutex
	err  error
	sent []sentMail
}

type sentMail struct {
	To, Subject, Body string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type published struct {
	Event   string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Broadcast(event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{Event: event, Payload: payload})
}

func (p *recordingPublisher) all() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}

type testEnv struct {
	db      *gorm.DB
	cfg     *config.Config
	mailer  *fakeMailer
	pub     *recordingPublisher
	auth    *AuthService
	topic   *TopicService
	thread  *ThreadService
	chat    *ChatService
	message *MessageService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := config.Parse([]byte("jwt:\n  secret: test-secret\n"))
	require.NoError(t, err)

	db, err := database.Open(&config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := dao.NewUsers(db)
	topics := dao.NewTopic(db)
	messages := dao.NewMessageDAO(db)
	mailer := &fakeMailer{}
	pub := &recordingPublisher{}

	return &testEnv{
		db:      db,
		cfg:     cfg,
		mailer:  mailer,
		pub:     pub,
		auth:    &AuthService{Config: cfg, UserDAO: users, Mailer: mailer},
		topic:   &TopicService{TopicDAO: topics, UserDAO: users},
		thread:  &ThreadService{TopicDAO: topics, UserDAO: users},
		chat:    &ChatService{MessageDAO: messages, UserDAO: users, Presence: cache.NewPresenceStorage(nil)},
		message: &MessageService{MessageDAO: messages, Publisher: pub},
	}
}

func (e *testEnv) createUser(t *testing.T, username, role string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Role:     role,
		Avatar:   "https://img/" + username + ".png",
		IsActive: true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()

	require.Error(t, err)
	var be *response.BizError
	require.True(t, errors.As(err, &be), "expected BizError, got %v", err)
	require.Equal(t, code, be.Code, be.Msg)
}

var bg = context.Background()
