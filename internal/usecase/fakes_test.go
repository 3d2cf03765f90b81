package usecase

import (
	"context"
	"sort"

	"find-fuel/internal/data/entity"
	"find-fuel/internal/data/repository"
	"find-fuel/pkg/apperrors"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository for service tests. It hands
// out copies, so mutations only become visible through UpdateProfile.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (f *fakeUserRepo) FindByUsuario(ctx context.Context, usuario string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Usuario == usuario {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var users []*entity.User
	for _, user := range f.users {
		u := *user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	for id, other := range f.users {
		if id == user.ID {
			continue
		}
		if other.Usuario == user.Usuario {
			return apperrors.NewConflict("usuario")
		}
		if other.Email == user.Email {
			return apperrors.NewConflict("email")
		}
	}
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.NewNotFound("user " + user.ID.String())
	}
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return apperrors.NewNotFound("user " + id.String())
	}
	delete(f.users, id)
	return nil
}

// fakeFuelRepo serves a fixed set of price records.
type fakeFuelRepo struct {
	prices []*entity.FuelPrice
	err    error
}

var _ repository.FuelPriceRepository = (*fakeFuelRepo)(nil)

func (f *fakeFuelRepo) FindWithCoordinates(ctx context.Context) ([]*entity.FuelPrice, error) {
	if f.err != nil {
		return nil, f.err
	}
	var withCoords []*entity.FuelPrice
	for _, price := range f.prices {
		if price.Latitude != nil && price.Longitude != nil {
			withCoords = append(withCoords, price)
		}
	}
	return withCoords, nil
}
