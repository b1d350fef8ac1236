package usecase

import (
	"context"
	"sync"

	"kryptonite/internal/data/entity"
	"kryptonite/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes for the persistence interfaces.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := *user
	f.users = append(f.users, &u)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if apiKey == "" {
		return nil, nil
	}
	for _, u := range f.users {
		if u.APIKey == apiKey {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == user.ID {
			c := *user
			f.users[i] = &c
			return nil
		}
	}
	return nil
}

type fakeOTPRepo struct {
	mu   sync.Mutex
	otps []*entity.OTP
}

func (f *fakeOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := *otp
	f.otps = append(f.otps, &o)
	return nil
}

func (f *fakeOTPRepo) FindByUserAndCode(ctx context.Context, userID uuid.UUID, code string) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found *entity.OTP
	for _, o := range f.otps {
		if o.UserID == userID && o.Code == code {
			if found == nil || o.CreatedAt.After(found.CreatedAt) {
				found = o
			}
		}
	}
	if found == nil {
		return nil, nil
	}
	c := *found
	return &c, nil
}

func (f *fakeOTPRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.otps)
}

type fakeFileRepo struct {
	mu    sync.Mutex
	files []*entity.File
}

func (f *fakeFileRepo) Create(ctx context.Context, file *entity.File) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *file
	f.files = append(f.files, &c)
	return nil
}

func (f *fakeFileRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.File
	for _, fl := range f.files {
		if fl.UserID == userID {
			c := *fl
			out = append(out, &c)
		}
	}
	return out, nil
}

// fakeSender swallows emails; the services never await delivery.
type fakeSender struct{}

func (fakeSender) Send(toEmail, subject, body string) error { return nil }

func newFakeRepos() (*repository.Repository, *fakeUserRepo, *fakeOTPRepo, *fakeFileRepo) {
	users := &fakeUserRepo{}
	otps := &fakeOTPRepo{}
	files := &fakeFileRepo{}
	repo := &repository.Repository{
		User: users,
		OTP:  otps,
		File: files,
	}
	return repo, users, otps, files
}
