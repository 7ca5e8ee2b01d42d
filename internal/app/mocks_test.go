//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

type mockImageConnector struct {
	mock.Mock
}

func (m *mockImageConnector) Upload(ctx context.Context, folder, prefix string, upload *images.Upload) (*images.Image, error) {
	args := m.Called(ctx, folder, prefix, upload)
	img, _ := args.Get(0).(*images.Image)
	return img, args.Error(1)
}

func (m *mockImageConnector) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *mockImageConnector) PublicURL(path string) string {
	return "/media/" + path
}

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) Create(ctx context.Context, item *portfolio.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepository) List(ctx context.Context) ([]*portfolio.Item, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*portfolio.Item)
	return list, args.Error(1)
}

func (m *mockItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepository) GetByID(ctx context.Context, itemID string) (*portfolio.Item, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*portfolio.Item)
	return item, args.Error(1)
}

func (m *mockItemRepository) UpdateByID(ctx context.Context, item *portfolio.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepository) DeleteByID(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

type mockOfferingRepository struct {
	mock.Mock
}

func (m *mockOfferingRepository) Create(ctx context.Context, offering *offerings.Offering) error {
	return m.Called(ctx, offering).Error(0)
}

func (m *mockOfferingRepository) List(ctx context.Context) ([]*offerings.Offering, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*offerings.Offering)
	return list, args.Error(1)
}

func (m *mockOfferingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOfferingRepository) GetByID(ctx context.Context, offeringID string) (*offerings.Offering, error) {
	args := m.Called(ctx, offeringID)
	offering, _ := args.Get(0).(*offerings.Offering)
	return offering, args.Error(1)
}

func (m *mockOfferingRepository) UpdateByID(ctx context.Context, offering *offerings.Offering) error {
	return m.Called(ctx, offering).Error(0)
}

func (m *mockOfferingRepository) DeleteByID(ctx context.Context, offeringID string) error {
	return m.Called(ctx, offeringID).Error(0)
}

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *pricing.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepository) List(ctx context.Context, category string) ([]*pricing.Plan, error) {
	args := m.Called(ctx, category)
	list, _ := args.Get(0).([]*pricing.Plan)
	return list, args.Error(1)
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, planID string) (*pricing.Plan, error) {
	args := m.Called(ctx, planID)
	plan, _ := args.Get(0).(*pricing.Plan)
	return plan, args.Error(1)
}

func (m *mockPlanRepository) UpdateByID(ctx context.Context, plan *pricing.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepository) DeleteByID(ctx context.Context, planID string) error {
	return m.Called(ctx, planID).Error(0)
}

type mockAboutRepository struct {
	mock.Mock
}

func (m *mockAboutRepository) Get(ctx context.Context) (*profile.About, error) {
	args := m.Called(ctx)
	about, _ := args.Get(0).(*profile.About)
	return about, args.Error(1)
}

func (m *mockAboutRepository) Create(ctx context.Context, about *profile.About) error {
	return m.Called(ctx, about).Error(0)
}

func (m *mockAboutRepository) UpdateByID(ctx context.Context, about *profile.About) error {
	return m.Called(ctx, about).Error(0)
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Get(ctx context.Context) (*profile.Contact, error) {
	args := m.Called(ctx)
	contact, _ := args.Get(0).(*profile.Contact)
	return contact, args.Error(1)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *profile.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *mockContactRepository) UpdateByID(ctx context.Context, contact *profile.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

type mockInquiryRepository struct {
	mock.Mock
}

func (m *mockInquiryRepository) Create(ctx context.Context, inquiry *inquiries.Inquiry) error {
	return m.Called(ctx, inquiry).Error(0)
}

func (m *mockInquiryRepository) List(ctx context.Context) ([]*inquiries.Inquiry, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*inquiries.Inquiry)
	return list, args.Error(1)
}

func (m *mockInquiryRepository) DeleteByID(ctx context.Context, inquiryID string) error {
	return m.Called(ctx, inquiryID).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*users.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockRevokedTokenRepository struct {
	mock.Mock
}

func (m *mockRevokedTokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *mockRevokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRevokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) Issue(user *users.User) (string, *users.Claims, error) {
	args := m.Called(user)
	claims, _ := args.Get(1).(*users.Claims)
	return args.String(0), claims, args.Error(2)
}

func (m *mockTokenManager) Parse(token string) (*users.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*users.Claims)
	return claims, args.Error(1)
}
