package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dave9314/online-market/internal/models"
)

func newItemService() (*ItemService, *fakeItemStore, *fakeRatingStore) {
	ratings := &fakeRatingStore{}
	items := &fakeItemStore{ratings: ratings}
	categories := &fakeCategoryStore{ids: map[int]bool{1: true, 2: true}}
	svc := &ItemService{ItemRepo: items, CategoryRepo: categories, RatingRepo: ratings}
	return svc, items, ratings
}

func validCreateRequest() models.CreateItemRequest {
	return models.CreateItemRequest{
		Name:             "Mountain Bike",
		Description:      "Barely used",
		Price:            250.0,
		ManufacturedDate: "2023-06",
		CategoryID:       1,
		ContactEmail:     "seller@example.com",
		ImageURL:         "https://cdn.example.com/bike.jpg",
	}
}

func TestCreateItemRequiresAuth(t *testing.T) {
	svc, _, _ := newItemService()
	_, err := svc.CreateItem(context.Background(), nil, validCreateRequest())
	if err != models.ErrUnauthorized {
		t.Fatalf("got %v; want ErrUnauthorized", err)
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc, _, _ := newItemService()
	caller := &models.Caller{ID: 1, Role: models.RoleUser}

	tests := []struct {
		name      string
		mutate    func(*models.CreateItemRequest)
		wantField string
	}{
		{name: "short name", mutate: func(r *models.CreateItemRequest) { r.Name = "ab" }, wantField: "name"},
		{name: "whitespace name", mutate: func(r *models.CreateItemRequest) { r.Name = "   " }, wantField: "name"},
		{name: "zero price", mutate: func(r *models.CreateItemRequest) { r.Price = 0 }, wantField: "price"},
		{name: "negative price", mutate: func(r *models.CreateItemRequest) { r.Price = -5 }, wantField: "price"},
		{name: "missing date", mutate: func(r *models.CreateItemRequest) { r.ManufacturedDate = "" }, wantField: "manufactured_date"},
		{name: "bad email", mutate: func(r *models.CreateItemRequest) { r.ContactEmail = "not-an-email" }, wantField: "contact_email"},
		{name: "missing image", mutate: func(r *models.CreateItemRequest) { r.ImageURL = "" }, wantField: "image_url"},
		{name: "unknown category", mutate: func(r *models.CreateItemRequest) { r.CategoryID = 42 }, wantField: "category_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateItem(context.Background(), caller, req)
			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("got %v; want validation error", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q; want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestCreateItemStampsOwner(t *testing.T) {
	svc, _, _ := newItemService()
	caller := &models.Caller{ID: 7, Role: models.RoleUser}

	item, err := svc.CreateItem(context.Background(), caller, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.OwnerID != 7 {
		t.Errorf("OwnerID = %d; want 7", item.OwnerID)
	}
	if item.ID == 0 {
		t.Error("item was not assigned an ID")
	}
}

func TestGetItemIncludesAggregate(t *testing.T) {
	svc, items, ratings := newItemService()
	created, _ := items.CreateItem(context.Background(), models.Item{Name: "Lamp", OwnerID: 1, CategoryID: 1})
	ratings.UpsertRating(context.Background(), models.Rating{ItemID: created.ID, UserID: 1, Rating: 5})
	ratings.UpsertRating(context.Background(), models.Rating{ItemID: created.ID, UserID: 2, Rating: 4})

	item, err := svc.GetItem(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item.AverageRating != 4.5 || item.TotalRatings != 2 {
		t.Errorf("aggregate = (%v, %d); want (4.5, 2)", item.AverageRating, item.TotalRatings)
	}
}

func TestGetItemNotFound(t *testing.T) {
	svc, _, _ := newItemService()
	if _, err := svc.GetItem(context.Background(), 99); err != models.ErrItemNotFound {
		t.Fatalf("got %v; want ErrItemNotFound", err)
	}
}

func TestUpdateItemOwnershipGuard(t *testing.T) {
	svc, items, _ := newItemService()
	created, _ := items.CreateItem(context.Background(), models.Item{
		Name: "Old Table", Price: 40, ManufacturedDate: "2020-01",
		CategoryID: 1, ContactEmail: "owner@example.com", ImageURL: "x.jpg", OwnerID: 1,
	})
	newName := "Refinished Table"

	if _, err := svc.UpdateItem(context.Background(), &models.Caller{ID: 2, Role: models.RoleUser}, created.ID, models.ItemUpdateRequest{Name: &newName}); err != models.ErrForbidden {
		t.Fatalf("non-owner update: got %v; want ErrForbidden", err)
	}

	updated, err := svc.UpdateItem(context.Background(), &models.Caller{ID: 9, Role: models.RoleAdmin}, created.ID, models.ItemUpdateRequest{Name: &newName})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("Name = %q; want %q", updated.Name, newName)
	}
}

func TestUpdateItemPartial(t *testing.T) {
	svc, items, _ := newItemService()
	created, _ := items.CreateItem(context.Background(), models.Item{
		Name: "Record Player", Price: 120, ManufacturedDate: "1978",
		CategoryID: 2, ContactEmail: "owner@example.com", ImageURL: "rp.jpg", OwnerID: 3,
	})
	owner := &models.Caller{ID: 3, Role: models.RoleUser}
	newPrice := 99.5

	updated, err := svc.UpdateItem(context.Background(), owner, created.ID, models.ItemUpdateRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Price != 99.5 {
		t.Errorf("Price = %v; want 99.5", updated.Price)
	}
	if updated.Name != "Record Player" || updated.ManufacturedDate != "1978" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateItemRevalidates(t *testing.T) {
	svc, items, _ := newItemService()
	created, _ := items.CreateItem(context.Background(), models.Item{
		Name: "Couch", Price: 300, ManufacturedDate: "2019",
		CategoryID: 1, ContactEmail: "owner@example.com", ImageURL: "c.jpg", OwnerID: 1,
	})
	owner := &models.Caller{ID: 1, Role: models.RoleUser}
	badPrice := -10.0

	_, err := svc.UpdateItem(context.Background(), owner, created.ID, models.ItemUpdateRequest{Price: &badPrice})
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "price" {
		t.Fatalf("got %v; want validation error on price", err)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, _, _ := newItemService()
	name := "whatever"
	_, err := svc.UpdateItem(context.Background(), &models.Caller{ID: 1, Role: models.RoleUser}, 77, models.ItemUpdateRequest{Name: &name})
	if err != models.ErrItemNotFound {
		t.Fatalf("got %v; want ErrItemNotFound", err)
	}
}

func TestDeleteItemGuardAndCascade(t *testing.T) {
	svc, items, ratings := newItemService()
	created, _ := items.CreateItem(context.Background(), models.Item{Name: "Desk", OwnerID: 5, CategoryID: 1})
	ratings.UpsertRating(context.Background(), models.Rating{ItemID: created.ID, UserID: 1, Rating: 3})
	ratings.UpsertRating(context.Background(), models.Rating{ItemID: created.ID, UserID: 2, Rating: 4})

	if err := svc.DeleteItem(context.Background(), &models.Caller{ID: 2, Role: models.RoleUser}, created.ID); err != models.ErrForbidden {
		t.Fatalf("stranger delete: got %v; want ErrForbidden", err)
	}

	if err := svc.DeleteItem(context.Background(), &models.Caller{ID: 5, Role: models.RoleUser}, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := items.GetItemByID(context.Background(), created.ID); err != models.ErrItemNotFound {
		t.Errorf("item still present after delete")
	}
	left, _ := ratings.GetRatingsByItemID(context.Background(), created.ID)
	if len(left) != 0 {
		t.Errorf("%d ratings survived item delete; want 0", len(left))
	}
}

func TestTopRatedExcludesUnratedAndOrders(t *testing.T) {
	svc, items, ratings := newItemService()
	ctx := context.Background()

	a, _ := items.CreateItem(ctx, models.Item{Name: "A", OwnerID: 1, CategoryID: 1})
	b, _ := items.CreateItem(ctx, models.Item{Name: "B", OwnerID: 1, CategoryID: 1})
	items.CreateItem(ctx, models.Item{Name: "C", OwnerID: 1, CategoryID: 1})

	// A: average 4.5 from two ratings. B: average 4.5 from three.
	ratings.UpsertRating(ctx, models.Rating{ItemID: a.ID, UserID: 1, Rating: 4})
	ratings.UpsertRating(ctx, models.Rating{ItemID: a.ID, UserID: 2, Rating: 5})
	ratings.UpsertRating(ctx, models.Rating{ItemID: b.ID, UserID: 1, Rating: 4})
	ratings.UpsertRating(ctx, models.Rating{ItemID: b.ID, UserID: 2, Rating: 5})
	ratings.UpsertRating(ctx, models.Rating{ItemID: b.ID, UserID: 3, Rating: 5})

	ranked, err := svc.TopRated(ctx)
	if err != nil {
		t.Fatalf("TopRated: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d items; want 2 (unrated C excluded)", len(ranked))
	}
	if ranked[0].Name != "B" {
		t.Errorf("first = %q; want B (4.7 beats 4.5)", ranked[0].Name)
	}
	if ranked[1].Name != "A" {
		t.Errorf("second = %q; want A", ranked[1].Name)
	}
}

func TestListItemsByCategory(t *testing.T) {
	svc, items, _ := newItemService()
	ctx := context.Background()
	items.CreateItem(ctx, models.Item{Name: "In", OwnerID: 1, CategoryID: 1})
	items.CreateItem(ctx, models.Item{Name: "Out", OwnerID: 1, CategoryID: 2})

	got, err := svc.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(got) != 1 || got[0].Name != "In" {
		t.Errorf("got %+v; want only the category-1 item", got)
	}
}

func TestListItemsByOwnerRequiresAuth(t *testing.T) {
	svc, _, _ := newItemService()
	if _, err := svc.ListItemsByOwner(context.Background(), nil); err != models.ErrUnauthorized {
		t.Fatalf("got %v; want ErrUnauthorized", err)
	}
}
