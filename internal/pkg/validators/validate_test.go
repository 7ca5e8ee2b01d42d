//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `validate:"required,max=5"`
	FileName string `validate:"imageext"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		shouldErr bool
		contains  string
	}{
		{"valid", sample{Name: "ok", FileName: "photo.JPG"}, false, ""},
		{"missing name", sample{FileName: "a.png"}, true, "Field: Name, Tag: required"},
		{"name too long", sample{Name: "toolong", FileName: "a.png"}, true, "Tag: max"},
		{"not an image", sample{Name: "ok", FileName: "notes.txt"}, true, "Field: FileName, Tag: imageext"},
		{"no extension", sample{Name: "ok", FileName: "photo"}, true, "imageext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if !tt.shouldErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
