package server

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/types"
)

// mockStore is an in-memory Store.
type mockStore struct {
	mu sync.Mutex

	pingErr error
	failOn  map[string]error

	users          map[uuid.UUID]*db.User
	profiles       map[uuid.UUID]*db.Profile // by user
	experience     map[uuid.UUID][]db.Experience
	education      map[uuid.UUID][]db.Education
	certifications map[uuid.UUID][]db.Certification
	onboarding     map[uuid.UUID]*db.Onboarding
	roadmap        map[uuid.UUID][]db.RoadmapItem
	saved          map[uuid.UUID][]db.SavedRecommendation
	metrics        map[uuid.UUID]*db.Metrics
	conversations  map[uuid.UUID][]db.Conversation

	clock time.Time
}

func newMockStore() *mockStore {
	return &mockStore{
		failOn:         map[string]error{},
		users:          map[uuid.UUID]*db.User{},
		profiles:       map[uuid.UUID]*db.Profile{},
		experience:     map[uuid.UUID][]db.Experience{},
		education:      map[uuid.UUID][]db.Education{},
		certifications: map[uuid.UUID][]db.Certification{},
		onboarding:     map[uuid.UUID]*db.Onboarding{},
		roadmap:        map[uuid.UUID][]db.RoadmapItem{},
		saved:          map[uuid.UUID][]db.SavedRecommendation{},
		metrics:        map[uuid.UUID]*db.Metrics{},
		conversations:  map[uuid.UUID][]db.Conversation{},
		clock:          time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp so ordering is stable.
func (m *mockStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *mockStore) fail(op string) error {
	return m.failOn[op]
}

func (m *mockStore) Ping(context.Context) error { return m.pingErr }

// --- users

func (m *mockStore) CreateAccount(_ context.Context, name, email, passwordHash string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateAccount"); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			return nil, db.ErrDuplicateEmail
		}
	}
	now := m.tick()
	u := &db.User{
		ID: uuid.New(), Name: strings.TrimSpace(name), Email: email,
		PasswordHash: passwordHash, PasswordSet: passwordHash != "",
		CreatedAt: now, UpdatedAt: now,
	}
	m.users[u.ID] = u
	m.profiles[u.ID] = &db.Profile{ID: uuid.New(), UserID: u.ID, Skills: db.StringArray{}, OpenTo: db.StringArray{},
		TargetRoles: db.StringArray{}, CreatedAt: now, UpdatedAt: now}
	m.metrics[u.ID] = defaultMetrics(u.ID)
	cp := *u
	return &cp, nil
}

func defaultMetrics(userID uuid.UUID) *db.Metrics {
	return &db.Metrics{UserID: userID, ConfidenceHistory: db.IntArray{20}, ProfileStrength: 10,
		SkillsData: []types.SkillLevel{}}
}

func (m *mockStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("GetUser"); err != nil {
		return nil, err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (m *mockStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return db.ErrNotFound
	}
	u.PasswordHash, u.PasswordSet = passwordHash, true
	return nil
}


// --- profile

func (m *mockStore) GetProfile(_ context.Context, userID uuid.UUID) (*db.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("GetProfile"); err != nil {
		return nil, err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockStore) EnsureProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error) {
	m.mu.Lock()
	if _, ok := m.profiles[userID]; !ok {
		m.profiles[userID] = &db.Profile{ID: uuid.New(), UserID: userID, Skills: db.StringArray{},
			OpenTo: db.StringArray{}, TargetRoles: db.StringArray{}}
	}
	m.mu.Unlock()
	return m.GetProfile(ctx, userID)
}

func (m *mockStore) UpsertProfile(ctx context.Context, userID uuid.UUID, upd db.ProfileUpdate) (*db.Profile, error) {
	if _, err := m.EnsureProfile(ctx, userID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	p := m.profiles[userID]
	set(&p.Headline, upd.Headline)
	set(&p.Location, upd.Location)
	set(&p.Website, upd.Website)
	set(&p.About, upd.About)
	set(&p.CareerBreak, upd.CareerBreak)
	set(&p.Skills, upd.Skills)
	set(&p.OpenTo, upd.OpenTo)
	set(&p.TargetRoles, upd.TargetRoles)
	if upd.Name != nil {
		if u, ok := m.users[userID]; ok {
			u.Name = *upd.Name
		}
	}
	m.mu.Unlock()
	return m.GetProfile(ctx, userID)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func (m *mockStore) ListExperience(_ context.Context, profileID uuid.UUID) ([]db.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListExperience"); err != nil {
		return nil, err
	}
	return slices.Clone(m.experience[profileID]), nil
}

func (m *mockStore) AddExperience(_ context.Context, profileID uuid.UUID, in db.ExperienceInput) (*db.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := db.Experience{ID: uuid.New(), ProfileID: profileID, CreatedAt: m.tick()}
	applyExperience(&e, in)
	m.experience[profileID] = append(m.experience[profileID], e)
	return &e, nil
}

func applyExperience(e *db.Experience, in db.ExperienceInput) {
	set(&e.Title, in.Title)
	set(&e.Company, in.Company)
	set(&e.Location, in.Location)
	set(&e.StartDate, in.StartDate)
	set(&e.EndDate, in.EndDate)
	set(&e.IsCurrent, in.IsCurrent)
	set(&e.Description, in.Description)
	set(&e.SortOrder, in.SortOrder)
}

func (m *mockStore) UpdateExperience(_ context.Context, profileID, id uuid.UUID, in db.ExperienceInput) (*db.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.experience[profileID] {
		if e := &m.experience[profileID][i]; e.ID == id {
			applyExperience(e, in)
			cp := *e
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) DeleteExperience(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteByID(m.experience, profileID, func(e db.Experience) bool { return e.ID == id })
}

func deleteByID[T any](rows map[uuid.UUID][]T, key uuid.UUID, match func(T) bool) error {
	i := slices.IndexFunc(rows[key], match)
	if i < 0 {
		return db.ErrNotFound
	}
	rows[key] = slices.Delete(rows[key], i, i+1)
	return nil
}

func (m *mockStore) ListEducation(_ context.Context, profileID uuid.UUID) ([]db.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.education[profileID]), nil
}

func (m *mockStore) AddEducation(_ context.Context, profileID uuid.UUID, in db.EducationInput) (*db.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := db.Education{ID: uuid.New(), ProfileID: profileID, CreatedAt: m.tick()}
	set(&e.Institution, in.Institution)
	set(&e.Degree, in.Degree)
	set(&e.Years, in.Years)
	set(&e.Grade, in.Grade)
	set(&e.SortOrder, in.SortOrder)
	m.education[profileID] = append(m.education[profileID], e)
	return &e, nil
}

func (m *mockStore) UpdateEducation(_ context.Context, profileID, id uuid.UUID, in db.EducationInput) (*db.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.education[profileID] {
		if e := &m.education[profileID][i]; e.ID == id {
			set(&e.Institution, in.Institution)
			set(&e.Degree, in.Degree)
			set(&e.Years, in.Years)
			set(&e.Grade, in.Grade)
			set(&e.SortOrder, in.SortOrder)
			cp := *e
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) DeleteEducation(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteByID(m.education, profileID, func(e db.Education) bool { return e.ID == id })
}

func (m *mockStore) ListCertifications(_ context.Context, profileID uuid.UUID) ([]db.Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.certifications[profileID]), nil
}

func (m *mockStore) AddCertification(_ context.Context, profileID uuid.UUID, in db.CertificationInput) (*db.Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := db.Certification{ID: uuid.New(), ProfileID: profileID, CreatedAt: m.tick()}
	set(&c.Name, in.Name)
	set(&c.Issuer, in.Issuer)
	set(&c.Year, in.Year)
	set(&c.SortOrder, in.SortOrder)
	m.certifications[profileID] = append(m.certifications[profileID], c)
	return &c, nil
}

func (m *mockStore) UpdateCertification(_ context.Context, profileID, id uuid.UUID, in db.CertificationInput) (*db.Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.certifications[profileID] {
		if c := &m.certifications[profileID][i]; c.ID == id {
			set(&c.Name, in.Name)
			set(&c.Issuer, in.Issuer)
			set(&c.Year, in.Year)
			set(&c.SortOrder, in.SortOrder)
			cp := *c
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockStore) DeleteCertification(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteByID(m.certifications, profileID, func(c db.Certification) bool { return c.ID == id })
}

// --- onboarding

func (m *mockStore) GetOnboarding(_ context.Context, userID uuid.UUID) (*db.Onboarding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.onboarding[userID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

// CompleteOnboarding applies every write or none of them.
func (m *mockStore) CompleteOnboarding(ctx context.Context, userID uuid.UUID, c db.OnboardingCompletion) (*db.Onboarding, error) {
	m.mu.Lock()
	if err := m.fail("CompleteOnboarding"); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	u, ok := m.users[userID]
	if c.Name != "" && !ok {
		m.mu.Unlock()
		return nil, db.ErrNotFound
	}
	if c.Name != "" {
		u.Name = strings.TrimSpace(c.Name)
	}

	in := c.Answers
	m.onboarding[userID] = &db.Onboarding{
		UserID: userID, CareerBreakYears: in.CareerBreakYears, LastRole: in.LastRole, Industry: in.Industry,
		Skills: db.StringArray(in.Skills), Confidence: in.Confidence, Goal: in.Goal, Completed: true,
	}
	m.replaceRoadmapLocked(userID, c.Roadmap)

	cur, ok := m.metrics[userID]
	if !ok {
		cur = defaultMetrics(userID)
		m.metrics[userID] = cur
	}
	cur.ComebackScore = c.Metrics.ComebackScore
	cur.ConfidenceHistory = c.Metrics.ConfidenceHistory
	cur.ProfileStrength = c.Metrics.ProfileStrength
	cur.SkillsData = c.Metrics.SkillsData
	m.mu.Unlock()
	return m.GetOnboarding(ctx, userID)
}

func (m *mockStore) UpdateOnboarding(ctx context.Context, userID uuid.UUID, upd db.OnboardingUpdate) (*db.Onboarding, error) {
	m.mu.Lock()
	o, ok := m.onboarding[userID]
	if !ok {
		m.mu.Unlock()
		return nil, db.ErrNotFound
	}
	set(&o.CareerBreakYears, upd.CareerBreakYears)
	set(&o.LastRole, upd.LastRole)
	set(&o.Industry, upd.Industry)
	set(&o.Skills, upd.Skills)
	set(&o.Confidence, upd.Confidence)
	set(&o.Goal, upd.Goal)
	m.mu.Unlock()
	return m.GetOnboarding(ctx, userID)
}

// --- roadmap

func (m *mockStore) ListRoadmap(_ context.Context, userID uuid.UUID) ([]db.RoadmapItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := slices.Clone(m.roadmap[userID])
	slices.SortStableFunc(items, func(a, b db.RoadmapItem) int { return a.SortOrder - b.SortOrder })
	return items, nil
}

func (m *mockStore) ReplaceRoadmap(ctx context.Context, userID uuid.UUID, milestones []types.Milestone) ([]db.RoadmapItem, error) {
	m.mu.Lock()
	m.replaceRoadmapLocked(userID, milestones)
	m.mu.Unlock()
	return m.ListRoadmap(ctx, userID)
}

func (m *mockStore) replaceRoadmapLocked(userID uuid.UUID, milestones []types.Milestone) {
	items := make([]db.RoadmapItem, 0, len(milestones))
	for _, ms := range milestones {
		items = append(items, db.RoadmapItem{
			ID: uuid.New(), UserID: userID, Title: ms.Title, Description: ms.Description,
			Week: ms.Week, SortOrder: ms.SortOrder, Done: ms.Done, CreatedAt: m.tick(),
		})
	}
	m.roadmap[userID] = items
}

func (m *mockStore) AddRoadmapItem(_ context.Context, userID uuid.UUID, title, description, week string) (*db.RoadmapItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := 1
	for _, it := range m.roadmap[userID] {
		next = max(next, it.SortOrder+1)
	}
	it := db.RoadmapItem{ID: uuid.New(), UserID: userID, Title: title, Description: description, Week: week,
		SortOrder: next, CreatedAt: m.tick()}
	m.roadmap[userID] = append(m.roadmap[userID], it)
	return &it, nil
}

func (m *mockStore) findItem(userID, id uuid.UUID) *db.RoadmapItem {
	for i := range m.roadmap[userID] {
		if m.roadmap[userID][i].ID == id {
			return &m.roadmap[userID][i]
		}
	}
	return nil
}

func (m *mockStore) SetRoadmapDone(_ context.Context, userID, id uuid.UUID, done *bool) (*db.RoadmapItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.findItem(userID, id)
	if it == nil {
		return nil, db.ErrNotFound
	}
	if done != nil {
		it.Done = *done
	} else {
		it.Done = !it.Done
	}
	cp := *it
	return &cp, nil
}

func (m *mockStore) UpdateRoadmapItem(_ context.Context, userID, id uuid.UUID, upd db.RoadmapItemUpdate) (*db.RoadmapItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.findItem(userID, id)
	if it == nil {
		return nil, db.ErrNotFound
	}
	set(&it.Title, upd.Title)
	set(&it.Description, upd.Description)
	set(&it.Week, upd.Week)
	set(&it.Done, upd.Done)
	set(&it.SortOrder, upd.SortOrder)
	cp := *it
	return &cp, nil
}

func (m *mockStore) DeleteRoadmapItem(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteByID(m.roadmap, userID, func(it db.RoadmapItem) bool { return it.ID == id })
}

func (m *mockStore) RoadmapCounts(_ context.Context, userID uuid.UUID) (done, total int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.roadmap[userID] {
		if it.Done {
			done++
		}
	}
	return done, len(m.roadmap[userID]), nil
}

// --- saved recommendations

func (m *mockStore) SaveRecommendation(_ context.Context, userID uuid.UUID, s db.SavedRecommendation) (*db.SavedRecommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID, s.UserID, s.CreatedAt = uuid.New(), userID, m.tick()
	m.saved[userID] = append(m.saved[userID], s)
	return &s, nil
}

func (m *mockStore) DeleteSavedRecommendation(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteByID(m.saved, userID, func(s db.SavedRecommendation) bool { return s.ID == id })
}

func (m *mockStore) ListSavedRecommendations(_ context.Context, userID uuid.UUID) ([]db.SavedRecommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.saved[userID])
	slices.Reverse(out)
	if out == nil {
		out = []db.SavedRecommendation{}
	}
	return out, nil
}

// --- metrics

func (m *mockStore) EnsureMetrics(_ context.Context, userID uuid.UUID) (*db.Metrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("EnsureMetrics"); err != nil {
		return nil, err
	}
	if _, ok := m.metrics[userID]; !ok {
		m.metrics[userID] = defaultMetrics(userID)
	}
	cp := *m.metrics[userID]
	return &cp, nil
}

func (m *mockStore) UpdateMetrics(_ context.Context, userID uuid.UUID, upd db.MetricsUpdate) (*db.Metrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.metrics[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	set(&cur.ComebackScore, upd.ComebackScore)
	set(&cur.AppsSent, upd.AppsSent)
	set(&cur.SkillsData, upd.SkillsData)
	cp := *cur
	return &cp, nil
}

func (m *mockStore) SetComebackScore(_ context.Context, userID uuid.UUID, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.metrics[userID]
	if !ok {
		return db.ErrNotFound
	}
	cur.ComebackScore = score
	return nil
}

func (m *mockStore) AppendConfidence(_ context.Context, userID uuid.UUID, confidence int) (db.IntArray, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.metrics[userID]
	if !ok {
		cur = defaultMetrics(userID)
		m.metrics[userID] = cur
	}
	cur.ConfidenceHistory = append(slices.Clone(cur.ConfidenceHistory), confidence)
	return slices.Clone(cur.ConfidenceHistory), nil
}

// --- conversations

func (m *mockStore) AddConversationTurns(_ context.Context, userID uuid.UUID, chatContext string, turns ...types.ChatTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("AddConversationTurns"); err != nil {
		return err
	}
	for _, t := range turns {
		m.conversations[userID] = append(m.conversations[userID], db.Conversation{
			ID: uuid.New(), UserID: userID, Role: t.Role, Message: t.Message, Context: chatContext, CreatedAt: m.tick(),
		})
	}
	return nil
}

func (m *mockStore) RecentTurns(_ context.Context, userID uuid.UUID, chatContext string, limit int) ([]types.ChatTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	turns := []types.ChatTurn{}
	for _, c := range m.conversations[userID] {
		if c.Context == chatContext {
			turns = append(turns, types.ChatTurn{Role: c.Role, Message: c.Message})
		}
	}
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns, nil
}

func (m *mockStore) ListConversations(_ context.Context, userID uuid.UUID, chatContext string, limit int) ([]db.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []db.Conversation{}
	for _, c := range m.conversations[userID] {
		if chatContext == "" || c.Context == chatContext {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockStore) ClearConversations(_ context.Context, userID uuid.UUID, chatContext string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.conversations[userID][:0]
	var n int64
	for _, c := range m.conversations[userID] {
		if chatContext == "" || c.Context == chatContext {
			n++
			continue
		}
		kept = append(kept, c)
	}
	m.conversations[userID] = kept
	return n, nil
}

var errStoreDown = errors.New("connection refused")

var _ Store = (*mockStore)(nil)
