package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"github.com/trendora/trendora-api/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, params *repository.UserFilterParams) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range r.users {
		if params.AdminsOnly && !u.IsAdmin {
			continue
		}
		if params.Search != "" &&
			!strings.Contains(strings.ToLower(u.FullName), strings.ToLower(params.Search)) &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	order    []uuid.UUID
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.products[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if params.Gender != nil && p.Gender != *params.Gender {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *p)
	}
	if params.SortBy == "price" {
		sort.SliceStable(out, func(a, b int) bool {
			if params.SortOrder == "desc" {
				return out[a].Price > out[b].Price
			}
			return out[a].Price < out[b].Price
		})
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type cartKey struct {
	userID    uuid.UUID
	productID uuid.UUID
}

type fakeCartRepo struct {
	items map[cartKey]*entity.CartItem
	order []cartKey
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[cartKey]*entity.CartItem)}
}

func (r *fakeCartRepo) Add(_ context.Context, item *entity.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	k := cartKey{item.UserID, item.ProductID}
	cp := *item
	r.items[k] = &cp
	r.order = append(r.order, k)
	return nil
}

func (r *fakeCartRepo) GetByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	if item, ok := r.items[cartKey{userID, productID}]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	var out []entity.CartItem
	for _, k := range r.order {
		if k.userID != userID {
			continue
		}
		if item, ok := r.items[k]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) Update(_ context.Context, item *entity.CartItem) error {
	cp := *item
	r.items[cartKey{item.UserID, item.ProductID}] = &cp
	return nil
}

func (r *fakeCartRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	delete(r.items, cartKey{userID, productID})
	return nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userID uuid.UUID) error {
	for k := range r.items {
		if k.userID == userID {
			delete(r.items, k)
		}
	}
	return nil
}

type fakeWishlistRepo struct {
	items map[cartKey]*entity.WishlistItem
	order []cartKey
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[cartKey]*entity.WishlistItem)}
}

func (r *fakeWishlistRepo) Add(_ context.Context, item *entity.WishlistItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	k := cartKey{item.UserID, item.ProductID}
	cp := *item
	r.items[k] = &cp
	r.order = append(r.order, k)
	return nil
}

func (r *fakeWishlistRepo) GetByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error) {
	if item, ok := r.items[cartKey{userID, productID}]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeWishlistRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.WishlistItem, error) {
	var out []entity.WishlistItem
	for _, k := range r.order {
		if k.userID != userID {
			continue
		}
		if item, ok := r.items[k]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	delete(r.items, cartKey{userID, productID})
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	order  []uuid.UUID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.orders[o.ID] = &cp
	r.order = append(r.order, o.ID)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, id := range r.order {
		o, ok := r.orders[id]
		if !ok {
			continue
		}
		if params.UserID != nil && o.UserID != *params.UserID {
			continue
		}
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].OrderDate.After(out[b].OrderDate)
	})
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok {
			out = append(out, *o)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].OrderDate.Before(out[b].OrderDate)
	})
	return out, nil
}

func (r *fakeOrderRepo) ListRecent(_ context.Context, limit int) ([]entity.Order, error) {
	all, _ := r.ListAll(context.Background())
	sort.SliceStable(all, func(a, b int) bool {
		return all[a].OrderDate.After(all[b].OrderDate)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func seedProduct(repo *fakeProductRepo, name string, price float64, stock int) *entity.Product {
	p := &entity.Product{
		Name:      name,
		Price:     price,
		Gender:    enum.GenderUnisex,
		Stock:     stock,
		CreatedAt: time.Now(),
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func seedUser(repo *fakeUserRepo, name, email string) *entity.User {
	u := &entity.User{FullName: name, Email: email, Provider: "local"}
	_ = repo.Create(context.Background(), u)
	return u
}
