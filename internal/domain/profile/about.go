package profile

import (
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// About entity
type About struct {
	ID                string `validate:"required,uuid4"`
	Title             string `validate:"required,min=1,max=255"`
	Subtitle          string `validate:"required,min=1,max=255"`
	Bio               string `validate:"required,min=1,max=10000"`
	YearsExperience   int    `validate:"gte=0"`
	HappyClients      int    `validate:"gte=0"`
	Awards            int    `validate:"gte=0"`
	Projects          int    `validate:"gte=0"`
	PortraitImageURL  string `validate:"required,max=1024"`
	PortraitImagePath string `validate:"omitempty,max=512"`
	WorkingImageURL   string `validate:"required,max=1024"`
	WorkingImagePath  string `validate:"omitempty,max=512"`
}

// Validate for validating About struct
func (a *About) Validate() error {
	if err := validators.Struct(a); err != nil {
		return fmt.Errorf("invalid about section: %w", err)
	}
	return nil
}

// AboutInput is the admin form for the about section
type AboutInput struct {
	Title           string
	Subtitle        string
	Bio             string
	YearsExperience int
	HappyClients    int
	Awards          int
	Projects        int
}

// Apply copies the input text and counters onto about
func (in AboutInput) Apply(about *About) {
	about.Title = in.Title
	about.Subtitle = in.Subtitle
	about.Bio = in.Bio
	about.YearsExperience = in.YearsExperience
	about.HappyClients = in.HappyClients
	about.Awards = in.Awards
	about.Projects = in.Projects
}
