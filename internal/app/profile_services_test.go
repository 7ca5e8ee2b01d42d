//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/testutil"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var aboutInput = profile.AboutInput{
	Title:           "A propos",
	Subtitle:        "Photographe",
	Bio:             "Bio",
	YearsExperience: 8,
	HappyClients:    120,
	Awards:          2,
	Projects:        300,
}

func notFound() error {
	return fmt.Errorf("about section: %w", domain.ErrNotFound)
}

func TestAboutService_Save_FirstSaveRequiresBothImages(t *testing.T) {
	repo := &mockAboutRepository{}
	connector := &mockImageConnector{}
	svc, err := NewAboutService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("Get", ctx).Return(nil, notFound())

	_, err = svc.Save(ctx, aboutInput, testUpload("me.jpg"), nil)
	assert.True(t, errors.Is(err, validators.ErrInvalid))
	connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAboutService_Save_CreatesOnFirstSave(t *testing.T) {
	repo := &mockAboutRepository{}
	connector := &mockImageConnector{}
	svc, err := NewAboutService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	portrait, working := testUpload("me.jpg"), testUpload("work.jpg")
	repo.On("Get", ctx).Return(nil, notFound())
	connector.On("Upload", ctx, images.FolderAbout, "portrait", portrait).Return(storedImage("about/portrait-1.jpg"), nil)
	connector.On("Upload", ctx, images.FolderAbout, "working", working).Return(storedImage("about/working-1.jpg"), nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	about, err := svc.Save(ctx, aboutInput, portrait, working)
	require.NoError(t, err)
	assert.Equal(t, "/media/about/portrait-1.jpg", about.PortraitImageURL)
	assert.Equal(t, "about/working-1.jpg", about.WorkingImagePath)
	assert.Equal(t, 120, about.HappyClients)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestAboutService_Save_UpdateKeepsImages(t *testing.T) {
	repo := &mockAboutRepository{}
	connector := &mockImageConnector{}
	svc, err := NewAboutService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	existing := &profile.About{
		ID:               "id-1",
		PortraitImageURL: "/media/about/portrait-old.jpg",
		WorkingImageURL:  "/media/about/working-old.jpg",
	}
	repo.On("Get", ctx).Return(existing, nil)
	repo.On("UpdateByID", ctx, mock.Anything).Return(nil)

	about, err := svc.Save(ctx, aboutInput, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "id-1", about.ID)
	assert.Equal(t, "/media/about/portrait-old.jpg", about.PortraitImageURL)
	assert.Equal(t, "Bio", about.Bio)
	connector.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAboutService_Save_ReplacesPortraitOnly(t *testing.T) {
	repo := &mockAboutRepository{}
	connector := &mockImageConnector{}
	svc, err := NewAboutService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	existing := &profile.About{
		ID:                "id-1",
		PortraitImageURL:  "/media/about/portrait-old.jpg",
		PortraitImagePath: "about/portrait-old.jpg",
		WorkingImageURL:   "/media/about/working-old.jpg",
	}
	portrait := testUpload("new.jpg")
	repo.On("Get", ctx).Return(existing, nil)
	connector.On("Upload", ctx, images.FolderAbout, "portrait", portrait).Return(storedImage("about/portrait-new.jpg"), nil)
	repo.On("UpdateByID", ctx, mock.Anything).Return(nil)
	connector.On("Delete", ctx, "about/portrait-old.jpg").Return(nil)

	about, err := svc.Save(ctx, aboutInput, portrait, nil)
	require.NoError(t, err)
	assert.Equal(t, "about/portrait-new.jpg", about.PortraitImagePath)
	assert.Equal(t, "/media/about/working-old.jpg", about.WorkingImageURL)
	connector.AssertExpectations(t)
}

func TestAboutService_Save_RollsBackUploadsWhenSaveFails(t *testing.T) {
	repo := &mockAboutRepository{}
	connector := &mockImageConnector{}
	svc, err := NewAboutService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	portrait, working := testUpload("me.jpg"), testUpload("work.jpg")
	repo.On("Get", ctx).Return(nil, notFound())
	connector.On("Upload", ctx, images.FolderAbout, "portrait", portrait).Return(storedImage("about/p.jpg"), nil)
	connector.On("Upload", ctx, images.FolderAbout, "working", working).Return(storedImage("about/w.jpg"), nil)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("boom"))
	connector.On("Delete", ctx, "about/p.jpg").Return(nil)
	connector.On("Delete", ctx, "about/w.jpg").Return(nil)

	_, err = svc.Save(ctx, aboutInput, portrait, working)
	require.Error(t, err)
	connector.AssertExpectations(t)
}

func TestContactService_Save_Upsert(t *testing.T) {
	ctx := context.Background()
	input := profile.ContactInput{Email: " studio@example.com ", Phone: "0600", Location: "Lyon"}

	t.Run("creates when missing", func(t *testing.T) {
		repo := &mockContactRepository{}
		svc, err := NewContactService(repo, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		repo.On("Get", ctx).Return(nil, fmt.Errorf("contact: %w", domain.ErrNotFound))
		repo.On("Create", ctx, mock.Anything).Return(nil)

		contact, err := svc.Save(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "studio@example.com", contact.Email)
		assert.NotEmpty(t, contact.ID)
	})

	t.Run("updates existing row", func(t *testing.T) {
		repo := &mockContactRepository{}
		svc, err := NewContactService(repo, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		repo.On("Get", ctx).Return(&profile.Contact{ID: "id-1", Email: "old@example.com"}, nil)
		repo.On("UpdateByID", ctx, mock.Anything).Return(nil)

		contact, err := svc.Save(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "id-1", contact.ID)
		assert.Equal(t, "Lyon", contact.Location)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockContactRepository{}
		svc, err := NewContactService(repo, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		repo.On("Get", ctx).Return(nil, errors.New("connection refused"))

		_, err = svc.Save(ctx, input)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}
