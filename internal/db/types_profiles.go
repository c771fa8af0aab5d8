package db

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the editable career profile attached to every account.
type Profile struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Headline    string      `json:"headline"`
	Location    string      `json:"location"`
	Website     string      `json:"website"`
	About       string      `json:"about"`
	CareerBreak string      `json:"career_break"`
	Skills      StringArray `json:"skills"`
	OpenTo      StringArray `json:"open_to"`
	TargetRoles StringArray `json:"target_roles"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ProfileUpdate carries a partial profile edit; nil fields are left alone.
// Name is stored on the account.
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Headline    *string      `json:"headline,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Website     *string      `json:"website,omitempty" validate:"omitempty,max=500"`
	About       *string      `json:"about,omitempty" validate:"omitempty,max=5000"`
	CareerBreak *string      `json:"career_break,omitempty" validate:"omitempty,max=2000"`
	Skills      *StringArray `json:"skills,omitempty"`
	OpenTo      *StringArray `json:"open_to,omitempty"`
	TargetRoles *StringArray `json:"target_roles,omitempty"`
}

// Experience is a past role on a profile.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	IsCurrent   bool      `json:"is_current"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExperienceInput creates or partially updates an Experience.
type ExperienceInput struct {
	Title       *string `json:"title,omitempty"`
	Company     *string `json:"company,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	IsCurrent   *bool   `json:"is_current,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// Education is a degree or course on a profile.
type Education struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Years       string    `json:"years"`
	Grade       string    `json:"grade"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// EducationInput creates or partially updates an Education entry.
type EducationInput struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Years       *string `json:"years,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// Certification is a credential on a profile.
type Certification struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	Year      string    `json:"year"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// CertificationInput creates or partially updates a Certification.
type CertificationInput struct {
	Name      *string `json:"name,omitempty"`
	Issuer    *string `json:"issuer,omitempty"`
	Year      *string `json:"year,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
