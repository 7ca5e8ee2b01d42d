//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/testutil"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUpload(name string) *images.Upload {
	content := testutil.JPEGBytes()
	return &images.Upload{
		FileName:    name,
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		Body:        bytes.NewReader(content),
	}
}

func storedImage(path string) *images.Image {
	return &images.Image{Path: path, URL: "/media/" + path, ContentType: "image/jpeg", Size: 12}
}

func newTestPortfolioService(t *testing.T) (portfolio.ItemService, *mockItemRepository, *mockImageConnector) {
	t.Helper()

	repo := &mockItemRepository{}
	connector := &mockImageConnector{}
	svc, err := NewPortfolioService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, repo, connector
}

func TestPortfolioService_Upload_AppendsAtEnd(t *testing.T) {
	svc, repo, connector := newTestPortfolioService(t)
	ctx := context.Background()
	upload := testUpload("mariage.jpg")

	repo.On("Count", ctx).Return(int64(7), nil)
	connector.On("Upload", ctx, images.FolderPortfolio, "", upload).Return(storedImage("portfolio/a.jpg"), nil)
	repo.On("Create", ctx, mock.MatchedBy(func(item *portfolio.Item) bool {
		return item.DisplayOrder == 7 && item.ImagePath == "portfolio/a.jpg"
	})).Return(nil)

	item, err := svc.Upload(ctx, upload, "")
	require.NoError(t, err)
	assert.Equal(t, "mariage.jpg", item.AltText)
	assert.Equal(t, "/media/portfolio/a.jpg", item.ImageURL)
	assert.Equal(t, 7, item.DisplayOrder)
	assert.NotEmpty(t, item.ID)

	repo.AssertExpectations(t)
	connector.AssertExpectations(t)
}

func TestPortfolioService_Upload_RemovesImageWhenInsertFails(t *testing.T) {
	svc, repo, connector := newTestPortfolioService(t)
	ctx := context.Background()
	upload := testUpload("a.jpg")

	repo.On("Count", ctx).Return(int64(0), nil)
	connector.On("Upload", ctx, images.FolderPortfolio, "", upload).Return(storedImage("portfolio/a.jpg"), nil)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))
	connector.On("Delete", ctx, "portfolio/a.jpg").Return(nil)

	_, err := svc.Upload(ctx, upload, "Alt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save portfolio item")

	connector.AssertCalled(t, "Delete", ctx, "portfolio/a.jpg")
}

func TestPortfolioService_Upload_RejectsNonImage(t *testing.T) {
	svc, repo, connector := newTestPortfolioService(t)

	upload := testUpload("a.jpg")
	upload.ContentType = "application/pdf"

	_, err := svc.Upload(context.Background(), upload, "")
	assert.True(t, errors.Is(err, validators.ErrInvalid))
	repo.AssertNotCalled(t, "Count", mock.Anything)
	connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPortfolioService_Update_KeepsOrderUnlessGiven(t *testing.T) {
	svc, repo, _ := newTestPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "id-1").Return(&portfolio.Item{ID: "id-1", AltText: "old", DisplayOrder: 4}, nil)
	repo.On("UpdateByID", ctx, mock.Anything).Return(nil)

	alt := "new"
	item, err := svc.Update(ctx, "id-1", portfolio.ItemPatch{AltText: &alt})
	require.NoError(t, err)
	assert.Equal(t, "new", item.AltText)
	assert.Equal(t, 4, item.DisplayOrder)
}

func TestPortfolioService_DeleteByID_LegacyURL(t *testing.T) {
	svc, repo, connector := newTestPortfolioService(t)
	ctx := context.Background()

	legacy := &portfolio.Item{
		ID:       "id-1",
		ImageURL: "https://cdn.example.com/storage/v1/object/public/website-images/portfolio/0.42.jpg",
	}
	repo.On("GetByID", ctx, "id-1").Return(legacy, nil)
	connector.On("Delete", ctx, "portfolio/0.42.jpg").Return(errors.New("unreachable"))
	repo.On("DeleteByID", ctx, "id-1").Return(nil)

	require.NoError(t, svc.DeleteByID(ctx, "id-1"))

	repo.AssertExpectations(t)
	connector.AssertExpectations(t)
}

func TestPortfolioService_DeleteByID_NotFound(t *testing.T) {
	svc, repo, connector := newTestPortfolioService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	err := svc.DeleteByID(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	connector.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
