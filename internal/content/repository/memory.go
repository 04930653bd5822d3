package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tigerwc/clubsite/internal/content"
)

// MemoryStore is an in-memory content store used by unit tests and as a
// degraded mode when MongoDB is not configured. Collection slices keep
// insertion order so list results are deterministic.
type MemoryStore struct {
	mu           sync.RWMutex
	schedule     *content.Schedule
	news         []content.NewsPost
	flyers       []content.Flyer
	competitions []content.CompetitionEvent
	sponsors     []content.Sponsor
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ---- schedule singleton ----

func (m *MemoryStore) GetSchedule(ctx context.Context) (*content.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.schedule == nil {
		return nil, content.ErrNotFound
	}
	cp := *m.schedule
	cp.Slots = append([]content.ScheduleSlot(nil), m.schedule.Slots...)
	return &cp, nil
}

func (m *MemoryStore) PutSchedule(ctx context.Context, s *content.Schedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	cp.ID = content.ScheduleDocID
	cp.Slots = append([]content.ScheduleSlot(nil), s.Slots...)
	m.schedule = &cp
	return nil
}

// ---- news ----

func (m *MemoryStore) ListNews(ctx context.Context) ([]content.NewsPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]content.NewsPost(nil), m.news...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) GetNews(ctx context.Context, id string) (*content.NewsPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.news {
		if m.news[i].ID == id {
			cp := m.news[i]
			return &cp, nil
		}
	}
	return nil, content.ErrNotFound
}

func (m *MemoryStore) CreateNews(ctx context.Context, p *content.NewsPost) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.news = append(m.news, *p)
	return p.ID, nil
}

func (m *MemoryStore) UpdateNews(ctx context.Context, id string, p *content.NewsPost) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.news {
		if m.news[i].ID == id {
			p.ID = id
			m.news[i] = *p
			return nil
		}
	}
	return content.ErrNotFound
}

func (m *MemoryStore) DeleteNews(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.news {
		if m.news[i].ID == id {
			m.news = append(m.news[:i], m.news[i+1:]...)
			return nil
		}
	}
	return content.ErrNotFound
}

// ---- flyers ----

func (m *MemoryStore) ListFlyers(ctx context.Context) ([]content.Flyer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]content.Flyer(nil), m.flyers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) GetFlyer(ctx context.Context, id string) (*content.Flyer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.flyers {
		if m.flyers[i].ID == id {
			cp := m.flyers[i]
			return &cp, nil
		}
	}
	return nil, content.ErrNotFound
}

func (m *MemoryStore) CreateFlyer(ctx context.Context, f *content.Flyer) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	m.flyers = append(m.flyers, *f)
	return f.ID, nil
}

func (m *MemoryStore) UpdateFlyer(ctx context.Context, id string, f *content.Flyer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.flyers {
		if m.flyers[i].ID == id {
			f.ID = id
			m.flyers[i] = *f
			return nil
		}
	}
	return content.ErrNotFound
}

func (m *MemoryStore) DeleteFlyer(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.flyers {
		if m.flyers[i].ID == id {
			m.flyers = append(m.flyers[:i], m.flyers[i+1:]...)
			return nil
		}
	}
	return content.ErrNotFound
}

// ---- competitions ----

func (m *MemoryStore) ListCompetitions(ctx context.Context) ([]content.CompetitionEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]content.CompetitionEvent(nil), m.competitions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *MemoryStore) GetCompetition(ctx context.Context, id string) (*content.CompetitionEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.competitions {
		if m.competitions[i].ID == id {
			cp := m.competitions[i]
			return &cp, nil
		}
	}
	return nil, content.ErrNotFound
}

func (m *MemoryStore) CreateCompetition(ctx context.Context, e *content.CompetitionEvent) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	m.competitions = append(m.competitions, *e)
	return e.ID, nil
}

func (m *MemoryStore) UpdateCompetition(ctx context.Context, id string, e *content.CompetitionEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.competitions {
		if m.competitions[i].ID == id {
			e.ID = id
			m.competitions[i] = *e
			return nil
		}
	}
	return content.ErrNotFound
}

func (m *MemoryStore) DeleteCompetition(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.competitions {
		if m.competitions[i].ID == id {
			m.competitions = append(m.competitions[:i], m.competitions[i+1:]...)
			return nil
		}
	}
	return content.ErrNotFound
}

// ---- sponsors ----

func (m *MemoryStore) ListSponsors(ctx context.Context) ([]content.Sponsor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.Sponsor(nil), m.sponsors...), nil
}

func (m *MemoryStore) GetSponsor(ctx context.Context, id string) (*content.Sponsor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.sponsors {
		if m.sponsors[i].ID == id {
			cp := m.sponsors[i]
			return &cp, nil
		}
	}
	return nil, content.ErrNotFound
}

func (m *MemoryStore) CreateSponsor(ctx context.Context, s *content.Sponsor) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.sponsors = append(m.sponsors, *s)
	return s.ID, nil
}

func (m *MemoryStore) UpdateSponsor(ctx context.Context, id string, s *content.Sponsor) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sponsors {
		if m.sponsors[i].ID == id {
			s.ID = id
			m.sponsors[i] = *s
			return nil
		}
	}
	return content.ErrNotFound
}

func (m *MemoryStore) DeleteSponsor(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sponsors {
		if m.sponsors[i].ID == id {
			m.sponsors = append(m.sponsors[:i], m.sponsors[i+1:]...)
			return nil
		}
	}
	return content.ErrNotFound
}
