package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/types"
)

// UserStore is the account storage used by UserService.
type UserStore interface {
	CreateAccount(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// ProfileStore covers the profile and its sub-sections.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	EnsureProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, upd db.ProfileUpdate) (*db.Profile, error)

	ListExperience(ctx context.Context, profileID uuid.UUID) ([]db.Experience, error)
	AddExperience(ctx context.Context, profileID uuid.UUID, in db.ExperienceInput) (*db.Experience, error)
	UpdateExperience(ctx context.Context, profileID, id uuid.UUID, in db.ExperienceInput) (*db.Experience, error)
	DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error

	ListEducation(ctx context.Context, profileID uuid.UUID) ([]db.Education, error)
	AddEducation(ctx context.Context, profileID uuid.UUID, in db.EducationInput) (*db.Education, error)
	UpdateEducation(ctx context.Context, profileID, id uuid.UUID, in db.EducationInput) (*db.Education, error)
	DeleteEducation(ctx context.Context, profileID, id uuid.UUID) error

	ListCertifications(ctx context.Context, profileID uuid.UUID) ([]db.Certification, error)
	AddCertification(ctx context.Context, profileID uuid.UUID, in db.CertificationInput) (*db.Certification, error)
	UpdateCertification(ctx context.Context, profileID, id uuid.UUID, in db.CertificationInput) (*db.Certification, error)
	DeleteCertification(ctx context.Context, profileID, id uuid.UUID) error
}

// Store is everything the HTTP handlers read and write. *db.DB implements it.
type Store interface {
	UserStore
	ProfileStore

	Ping(ctx context.Context) error

	GetOnboarding(ctx context.Context, userID uuid.UUID) (*db.Onboarding, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, c db.OnboardingCompletion) (*db.Onboarding, error)
	UpdateOnboarding(ctx context.Context, userID uuid.UUID, upd db.OnboardingUpdate) (*db.Onboarding, error)

	ListRoadmap(ctx context.Context, userID uuid.UUID) ([]db.RoadmapItem, error)
	ReplaceRoadmap(ctx context.Context, userID uuid.UUID, milestones []types.Milestone) ([]db.RoadmapItem, error)
	AddRoadmapItem(ctx context.Context, userID uuid.UUID, title, description, week string) (*db.RoadmapItem, error)
	SetRoadmapDone(ctx context.Context, userID, id uuid.UUID, done *bool) (*db.RoadmapItem, error)
	UpdateRoadmapItem(ctx context.Context, userID, id uuid.UUID, upd db.RoadmapItemUpdate) (*db.RoadmapItem, error)
	DeleteRoadmapItem(ctx context.Context, userID, id uuid.UUID) error
	RoadmapCounts(ctx context.Context, userID uuid.UUID) (done, total int, err error)

	SaveRecommendation(ctx context.Context, userID uuid.UUID, s db.SavedRecommendation) (*db.SavedRecommendation, error)
	DeleteSavedRecommendation(ctx context.Context, userID, id uuid.UUID) error
	ListSavedRecommendations(ctx context.Context, userID uuid.UUID) ([]db.SavedRecommendation, error)

	EnsureMetrics(ctx context.Context, userID uuid.UUID) (*db.Metrics, error)
	UpdateMetrics(ctx context.Context, userID uuid.UUID, upd db.MetricsUpdate) (*db.Metrics, error)
	SetComebackScore(ctx context.Context, userID uuid.UUID, score int) error
	AppendConfidence(ctx context.Context, userID uuid.UUID, confidence int) (db.IntArray, error)

	AddConversationTurns(ctx context.Context, userID uuid.UUID, chatContext string, turns ...types.ChatTurn) error
	RecentTurns(ctx context.Context, userID uuid.UUID, chatContext string, limit int) ([]types.ChatTurn, error)
	ListConversations(ctx context.Context, userID uuid.UUID, chatContext string, limit int) ([]db.Conversation, error)
	ClearConversations(ctx context.Context, userID uuid.UUID, chatContext string) (int64, error)
}

var _ Store = (*db.DB)(nil)
