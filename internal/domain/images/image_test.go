//go:build unit
// +build unit

package images

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	p := ObjectPath(FolderPortfolio, "", "Wedding.JPG")
	assert.True(t, strings.HasPrefix(p, "portfolio/"))
	assert.True(t, strings.HasSuffix(p, ".jpg"))
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(p, "portfolio/"), ".jpg"), 36)

	p = ObjectPath(FolderAbout, "portrait", "me.png")
	assert.True(t, strings.HasPrefix(p, "about/portrait-"))
	assert.True(t, strings.HasSuffix(p, ".png"))

	assert.NotEqual(t, ObjectPath(FolderServices, "", "a.png"), ObjectPath(FolderServices, "", "a.png"))
}

func TestPathFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://x.supabase.co/storage/v1/object/public/website-images/portfolio/0.123.jpg", "portfolio/0.123.jpg"},
		{"/media/about/portrait-1.png", "about/portrait-1.png"},
		{"/media/services/a.webp?v=2", "services/a.webp"},
		{"single", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, PathFromURL(tt.url))
		})
	}
}

func TestUpload_Validate(t *testing.T) {
	valid := &Upload{FileName: "a.jpg", ContentType: "image/jpeg", Size: 10, Body: strings.NewReader("x")}
	require.NoError(t, valid.Validate())

	notImage := &Upload{FileName: "a.jpg", ContentType: "text/plain", Size: 10, Body: strings.NewReader("x")}
	err := notImage.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalid)

	badExt := &Upload{FileName: "a.exe", ContentType: "image/png", Size: 10, Body: strings.NewReader("x")}
	require.Error(t, badExt.Validate())

	empty := &Upload{FileName: "a.png", ContentType: "image/png", Size: 0, Body: strings.NewReader("")}
	require.Error(t, empty.Validate())
}
