package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/types"
)

const defaultGoal = "flexible"

// userSnapshot is everything stored about a user that the engines and the
// coach read.
type userSnapshot struct {
	user           *db.User
	profile        *db.Profile
	onboarding     *db.Onboarding
	experience     []db.Experience
	education      []db.Education
	certifications []db.Certification
}

// loadSnapshot reads the account, profile and onboarding concurrently, then
// the profile's sub-sections concurrently. Sections are skipped when
// withSections is false.
func loadSnapshot(ctx context.Context, store Store, userID uuid.UUID, withSections bool) (*userSnapshot, error) {
	snap := &userSnapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := store.GetUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		snap.user = u
		return nil
	})
	g.Go(func() error {
		p, err := store.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		snap.profile = p
		return nil
	})
	g.Go(func() error {
		o, err := store.GetOnboarding(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load onboarding: %w", err)
		}
		snap.onboarding = o
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if withSections && snap.profile != nil {
		sections, err := loadSections(ctx, store, snap.profile.ID)
		if err != nil {
			return nil, err
		}
		snap.experience = sections.experience
		snap.education = sections.education
		snap.certifications = sections.certifications
	}
	return snap, nil
}

type profileSections struct {
	experience     []db.Experience
	education      []db.Education
	certifications []db.Certification
}

func loadSections(ctx context.Context, store ProfileStore, profileID uuid.UUID) (*profileSections, error) {
	var s profileSections

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s.experience, err = store.ListExperience(gctx, profileID)
		if err != nil {
			return fmt.Errorf("failed to load experience: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		s.education, err = store.ListEducation(gctx, profileID)
		if err != nil {
			return fmt.Errorf("failed to load education: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		s.certifications, err = store.ListCertifications(gctx, profileID)
		if err != nil {
			return fmt.Errorf("failed to load certifications: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.experience == nil {
		s.experience = []db.Experience{}
	}
	if s.education == nil {
		s.education = []db.Education{}
	}
	if s.certifications == nil {
		s.certifications = []db.Certification{}
	}
	return &s, nil
}

// hasProfileSignals reports whether the profile carries anything the
// roadmap engine can use.
func (s *userSnapshot) hasProfileSignals() bool {
	p := s.profile
	return p != nil && (p.Headline != "" || len(p.Skills) > 0 || len(p.TargetRoles) > 0)
}

// baseProfile maps the stored profile and sections, without onboarding.
func (s *userSnapshot) baseProfile() types.CareerProfile {
	var cp types.CareerProfile
	if s.profile != nil {
		cp.Headline = s.profile.Headline
		cp.Skills = append([]string{}, s.profile.Skills...)
		cp.TargetRoles = append([]string{}, s.profile.TargetRoles...)
	}
	if cp.Skills == nil {
		cp.Skills = []string{}
	}
	for _, e := range s.experience {
		cp.Experience = append(cp.Experience, types.ExperienceEntry{Title: e.Title, Company: e.Company})
	}
	for _, e := range s.education {
		cp.Education = append(cp.Education, types.EducationEntry{Degree: e.Degree, Institution: e.Institution})
	}
	for _, c := range s.certifications {
		cp.Certifications = append(cp.Certifications, types.Certification{Name: c.Name, Issuer: c.Issuer})
	}
	return cp
}

// recommendationProfile combines profile and onboarding into the engine
// input: onboarding skills come first, the goal defaults to flexible and the
// headline falls back to the last role.
func (s *userSnapshot) recommendationProfile(category string) types.CareerProfile {
	cp := s.baseProfile()
	answers := s.onboarding.Answers()

	cp.Skills = types.MergeSkills(answers.Skills, cp.Skills)
	cp.Category = category
	cp.Goal = answers.Goal
	if cp.Goal == "" {
		cp.Goal = defaultGoal
	}
	if cp.Headline == "" {
		cp.Headline = answers.LastRole
	}
	cp.Industry = answers.Industry
	cp.LastRole = answers.LastRole
	return cp
}

// persona is the coach's view of the user.
func (s *userSnapshot) persona() *types.CoachPersona {
	p := &types.CoachPersona{}
	if s.user != nil {
		p.Name = s.user.Name
	}
	var profileSkills []string
	if s.profile != nil {
		profileSkills = s.profile.Skills
	}
	if s.onboarding != nil {
		p.Goal = s.onboarding.Goal
		p.CareerBreakYears = s.onboarding.CareerBreakYears
		p.LastRole = s.onboarding.LastRole
		p.Industry = s.onboarding.Industry
		p.Skills = types.MergeSkills(s.onboarding.Skills, profileSkills)
	} else {
		p.Skills = types.MergeSkills(profileSkills)
	}
	return p
}
