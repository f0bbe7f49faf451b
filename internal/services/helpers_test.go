package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint

	findErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) FindByID(id uint) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) List(p repository.ListParams) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range f.users {
		if p.Role != "" && u.Role != p.Role {
			continue
		}
		if p.Search != "" && !strings.Contains(u.Name, p.Search) && !strings.Contains(u.Email, p.Search) {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

// fakeGateway records which entry point was called and returns scripted
// output.
type fakeGateway struct {
	configured bool
	model      string

	generateOut string
	generateErr error
	chatOut     string
	chatErr     error

	generateCalls int
	chatCalls     int
	lastPrompt    string
	lastHistory   []Turn
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{configured: true, model: "gemini-test", generateOut: "generated", chatOut: "chatted"}
}

func (f *fakeGateway) Configured() bool  { return f.configured }
func (f *fakeGateway) ModelName() string { return f.model }

func (f *fakeGateway) Generate(ctx context.Context, prompt string) (string, error) {
	f.generateCalls++
	f.lastPrompt = prompt
	return f.generateOut, f.generateErr
}

func (f *fakeGateway) Chat(ctx context.Context, history []Turn, prompt string) (string, error) {
	f.chatCalls++
	f.lastHistory = history
	f.lastPrompt = prompt
	return f.chatOut, f.chatErr
}

var errBoom = errors.New("boom")

func listAll() repository.ListParams {
	return repository.ListParams{Page: 1, Limit: 100}
}
