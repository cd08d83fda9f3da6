package services

import (
	"context"
	"time"

	"github.com/dave9314/online-market/internal/models"
)

// In-memory stores used by the service tests. They honor the same
// contracts as the SQL repositories: newest-first listings, the
// (item,user) rating uniqueness, and rating purge on item delete.

type fakeRatingStore struct {
	ratings []models.Rating
	nextID  int
}

func (f *fakeRatingStore) UpsertRating(_ context.Context, rating models.Rating) (models.Rating, error) {
	for i := range f.ratings {
		if f.ratings[i].ItemID == rating.ItemID && f.ratings[i].UserID == rating.UserID {
			now := time.Now()
			f.ratings[i].Rating = rating.Rating
			f.ratings[i].Comment = rating.Comment
			f.ratings[i].UpdatedAt = &now
			return f.ratings[i], nil
		}
	}
	f.nextID++
	rating.ID = f.nextID
	rating.CreatedAt = time.Now()
	f.ratings = append(f.ratings, rating)
	return rating, nil
}

func (f *fakeRatingStore) GetRatingsByItemID(_ context.Context, itemID int) ([]models.Rating, error) {
	result := []models.Rating{}
	for i := len(f.ratings) - 1; i >= 0; i-- {
		if f.ratings[i].ItemID == itemID {
			result = append(result, f.ratings[i])
		}
	}
	return result, nil
}

func (f *fakeRatingStore) GetRatingsByItemIDs(_ context.Context, itemIDs []int) ([]models.Rating, error) {
	wanted := make(map[int]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	result := []models.Rating{}
	for _, r := range f.ratings {
		if wanted[r.ItemID] {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRatingStore) deleteByItemID(itemID int) {
	kept := f.ratings[:0]
	for _, r := range f.ratings {
		if r.ItemID != itemID {
			kept = append(kept, r)
		}
	}
	f.ratings = kept
}

type fakeItemStore struct {
	items   []models.Item
	nextID  int
	ratings *fakeRatingStore
}

func (f *fakeItemStore) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeItemStore) GetItemByID(_ context.Context, id int) (models.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, models.ErrItemNotFound
}

func (f *fakeItemStore) GetItems(_ context.Context, categoryID int, limit int) ([]models.Item, error) {
	result := []models.Item{}
	for i := len(f.items) - 1; i >= 0; i-- {
		if categoryID > 0 && f.items[i].CategoryID != categoryID {
			continue
		}
		result = append(result, f.items[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (f *fakeItemStore) GetItemsByOwner(_ context.Context, ownerID int) ([]models.Item, error) {
	result := []models.Item{}
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].OwnerID == ownerID {
			result = append(result, f.items[i])
		}
	}
	return result, nil
}

func (f *fakeItemStore) UpdateItem(_ context.Context, item models.Item) (models.Item, error) {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			now := time.Now()
			item.CreatedAt = f.items[i].CreatedAt
			item.UpdatedAt = &now
			f.items[i] = item
			return item, nil
		}
	}
	return models.Item{}, models.ErrItemNotFound
}

func (f *fakeItemStore) DeleteItem(_ context.Context, id int) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			if f.ratings != nil {
				f.ratings.deleteByItemID(id)
			}
			return nil
		}
	}
	return models.ErrItemNotFound
}

type fakeCategoryStore struct {
	ids map[int]bool
}

func (f *fakeCategoryStore) CategoryExists(_ context.Context, id int) (bool, error) {
	return f.ids[id], nil
}

type fakeUserStore struct {
	users    map[int]models.User
	sessions map[int]models.Session
	nextID   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[int]models.User),
		sessions: make(map[int]models.Session),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return models.User{}, models.ErrDuplicateUsername
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user models.User) (models.User, error) {
	existing, ok := f.users[user.ID]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	existing.FullName = user.FullName
	existing.Address = user.Address
	existing.Phone = user.Phone
	existing.Email = user.Email
	f.users[user.ID] = existing
	return existing, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int, hashedPassword string) error {
	user, ok := f.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	user.Password = hashedPassword
	f.users[userID] = user
	return nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, userID int, role string) (models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	user.Role = role
	f.users[userID] = user
	return user, nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) GetAllUsers(_ context.Context) ([]models.User, error) {
	result := []models.User{}
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserStore) SetSession(_ context.Context, userID int, session models.Session) error {
	if _, ok := f.users[userID]; !ok {
		return models.ErrUserNotFound
	}
	f.sessions[userID] = session
	return nil
}

func (f *fakeUserStore) ClearSession(_ context.Context, userID int) error {
	delete(f.sessions, userID)
	return nil
}
