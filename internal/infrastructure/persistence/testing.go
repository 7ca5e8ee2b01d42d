//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/config"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	PortfolioRepo    portfolio.ItemRepository
	OfferingRepo     offerings.OfferingRepository
	PricingRepo      pricing.PlanRepository
	AboutRepo        profile.AboutRepository
	ContactRepo      profile.ContactRepository
	InquiryRepo      inquiries.InquiryRepository
	UserRepo         users.UserRepository
	RevokedTokenRepo users.RevokedTokenRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.PortfolioRepo, err = NewGormPortfolioRepository(db, logger)
	require.NoError(t, err)
	tc.OfferingRepo, err = NewGormOfferingRepository(db, logger)
	require.NoError(t, err)
	tc.PricingRepo, err = NewGormPricingRepository(db, logger)
	require.NoError(t, err)
	tc.AboutRepo, err = NewGormAboutRepository(db, logger)
	require.NoError(t, err)
	tc.ContactRepo, err = NewGormContactRepository(db, logger)
	require.NoError(t, err)
	tc.InquiryRepo, err = NewGormInquiryRepository(db, logger)
	require.NoError(t, err)
	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)
	tc.RevokedTokenRepo, err = NewGormRevokedTokenRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestItem creates a portfolio item with default values
func CreateTestItem(t *testing.T, altText string, displayOrder int) *portfolio.Item {
	t.Helper()

	path := "portfolio/" + uuid.NewString() + ".jpg"
	return &portfolio.Item{
		ID:              uuid.NewString(),
		ImageURL:        "http://localhost:8080/media/" + path,
		ImagePath:       path,
		AltText:         altText,
		DisplayOrder:    displayOrder,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestOffering creates a service card with default values
func CreateTestOffering(t *testing.T, title string, displayOrder int) *offerings.Offering {
	t.Helper()

	return &offerings.Offering{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  "Reportage complet de la journee",
		DisplayOrder: displayOrder,
	}
}

// CreateTestPlan creates a pricing plan with default values
func CreateTestPlan(t *testing.T, name, category string, displayOrder int) *pricing.Plan {
	t.Helper()

	return &pricing.Plan{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  "Formule " + name,
		Price:        "1500 EUR",
		Features:     []string{"Preparatifs", "Ceremonie"},
		Category:     category,
		DisplayOrder: displayOrder,
	}
}

// CreateTestAbout creates an about section with default values
func CreateTestAbout(t *testing.T) *profile.About {
	t.Helper()

	return &profile.About{
		ID:               uuid.NewString(),
		Title:            "A propos",
		Subtitle:         "Photographe de mariage",
		Bio:              "Passionnee par la lumiere naturelle.",
		YearsExperience:  10,
		HappyClients:     250,
		Awards:           3,
		Projects:         400,
		PortraitImageURL: "http://localhost:8080/media/about/portrait-a.jpg",
		WorkingImageURL:  "http://localhost:8080/media/about/working-b.jpg",
	}
}

// CreateTestContact creates contact information with default values
func CreateTestContact(t *testing.T) *profile.Contact {
	t.Helper()

	return &profile.Contact{
		ID:       uuid.NewString(),
		Email:    "studio@example.com",
		Phone:    "+33 6 00 00 00 00",
		Location: "Lyon, France",
	}
}

// CreateTestInquiry creates a contact form message created at the given time
func CreateTestInquiry(t *testing.T, name string, created time.Time) *inquiries.Inquiry {
	t.Helper()

	return &inquiries.Inquiry{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           "client@example.com",
		Message:         "Bonjour, etes-vous disponible en juin ?",
		DateTimeCreated: created,
	}
}

// CreateTestUser creates an admin account with a placeholder hash
func CreateTestUser(t *testing.T, email string) *users.User {
	t.Helper()

	return &users.User{
		ID:              uuid.NewString(),
		Email:           email,
		PasswordHash:    "$2a$10$placeholderplaceholderplaceholderplaceholderpla",
		Role:            users.RoleAdmin,
		DateTimeCreated: time.Now(),
	}
}
