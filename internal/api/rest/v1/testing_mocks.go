//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*users.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *users.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) GetUser(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, email, password, role string) (*users.User, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) SetPassword(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Content(ctx context.Context) (*site.Content, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*site.Content), args.Error(1)
}

// MockItemService is a mock implementation of the portfolio ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) List(ctx context.Context) ([]*portfolio.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*portfolio.Item), args.Error(1)
}

func (m *MockItemService) GetByID(ctx context.Context, itemID string) (*portfolio.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolio.Item), args.Error(1)
}

func (m *MockItemService) Upload(ctx context.Context, upload *images.Upload, altText string) (*portfolio.Item, error) {
	args := m.Called(ctx, upload, altText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolio.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, itemID string, patch portfolio.ItemPatch) (*portfolio.Item, error) {
	args := m.Called(ctx, itemID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolio.Item), args.Error(1)
}

func (m *MockItemService) DeleteByID(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockOfferingService is a mock implementation of OfferingService
type MockOfferingService struct {
	mock.Mock
}

func (m *MockOfferingService) List(ctx context.Context) ([]*offerings.Offering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offerings.Offering), args.Error(1)
}

func (m *MockOfferingService) GetByID(ctx context.Context, offeringID string) (*offerings.Offering, error) {
	args := m.Called(ctx, offeringID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offerings.Offering), args.Error(1)
}

func (m *MockOfferingService) Create(ctx context.Context, input offerings.OfferingInput, image *images.Upload) (*offerings.Offering, error) {
	args := m.Called(ctx, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offerings.Offering), args.Error(1)
}

func (m *MockOfferingService) Update(ctx context.Context, offeringID string, input offerings.OfferingInput, image *images.Upload) (*offerings.Offering, error) {
	args := m.Called(ctx, offeringID, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offerings.Offering), args.Error(1)
}

func (m *MockOfferingService) DeleteByID(ctx context.Context, offeringID string) error {
	args := m.Called(ctx, offeringID)
	return args.Error(0)
}

// MockPlanService is a mock implementation of the pricing PlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) List(ctx context.Context, category string) ([]*pricing.Plan, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Plan), args.Error(1)
}

func (m *MockPlanService) GetByID(ctx context.Context, planID string) (*pricing.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Plan), args.Error(1)
}

func (m *MockPlanService) Create(ctx context.Context, input pricing.PlanInput) (*pricing.Plan, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Plan), args.Error(1)
}

func (m *MockPlanService) Update(ctx context.Context, planID string, input pricing.PlanInput) (*pricing.Plan, error) {
	args := m.Called(ctx, planID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Plan), args.Error(1)
}

func (m *MockPlanService) DeleteByID(ctx context.Context, planID string) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

// MockAboutService is a mock implementation of AboutService
type MockAboutService struct {
	mock.Mock
}

func (m *MockAboutService) Get(ctx context.Context) (*profile.About, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.About), args.Error(1)
}

func (m *MockAboutService) Save(ctx context.Context, input profile.AboutInput, portrait, working *images.Upload) (*profile.About, error) {
	args := m.Called(ctx, input, portrait, working)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.About), args.Error(1)
}

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Get(ctx context.Context) (*profile.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Contact), args.Error(1)
}

func (m *MockContactService) Save(ctx context.Context, input profile.ContactInput) (*profile.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Contact), args.Error(1)
}

// MockInquiryService is a mock implementation of InquiryService
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Submit(ctx context.Context, input inquiries.InquiryInput) (*inquiries.Inquiry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiries.Inquiry), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context) ([]*inquiries.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inquiries.Inquiry), args.Error(1)
}

func (m *MockInquiryService) DeleteByID(ctx context.Context, inquiryID string) error {
	args := m.Called(ctx, inquiryID)
	return args.Error(0)
}
