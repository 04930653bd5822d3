// Package service applies the site's content rules on top of the raw store:
// publish filtering for public reads, display orderings, server-assigned
// timestamps, and the read-modify-write cycle for the schedule singleton.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tigerwc/clubsite/internal/content"
	"github.com/tigerwc/clubsite/internal/content/repository"
	"github.com/tigerwc/clubsite/internal/webfmt"
)

type Service struct {
	store repository.Store
	now   func() time.Time
}

func NewService(store repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ---- schedule ----

// ScheduleSlots returns all slots sorted by display order. A schedule that
// was never created reads as empty, not as an error.
func (s *Service) ScheduleSlots(ctx context.Context) ([]content.ScheduleSlot, error) {
	sched, err := s.store.GetSchedule(ctx)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return []content.ScheduleSlot{}, nil
		}
		return nil, err
	}
	return webfmt.SortSlotsByOrder(sched.Slots), nil
}

// UpsertSlot adds or replaces one slot inside the singleton document. New
// slots get a generated UUID. The whole slot array is rewritten; concurrent
// editors are last-writer-wins by design.
func (s *Service) UpsertSlot(ctx context.Context, slot content.ScheduleSlot) (content.ScheduleSlot, error) {
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	sched, err := s.store.GetSchedule(ctx)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			return content.ScheduleSlot{}, err
		}
		sched = &content.Schedule{ID: content.ScheduleDocID}
	}
	replaced := false
	for i := range sched.Slots {
		if sched.Slots[i].ID == slot.ID {
			sched.Slots[i] = slot
			replaced = true
			break
		}
	}
	if !replaced {
		sched.Slots = append(sched.Slots, slot)
	}
	if err := s.store.PutSchedule(ctx, sched); err != nil {
		return content.ScheduleSlot{}, err
	}
	return slot, nil
}

// DeleteSlot removes one slot and rewrites the singleton.
func (s *Service) DeleteSlot(ctx context.Context, id string) error {
	sched, err := s.store.GetSchedule(ctx)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return content.ErrNotFound
		}
		return err
	}
	kept := sched.Slots[:0:0]
	for _, slot := range sched.Slots {
		if slot.ID != id {
			kept = append(kept, slot)
		}
	}
	if len(kept) == len(sched.Slots) {
		return content.ErrNotFound
	}
	sched.Slots = kept
	return s.store.PutSchedule(ctx, sched)
}

// ---- news ----

// AdminNews returns every post, drafts included, newest first.
func (s *Service) AdminNews(ctx context.Context) ([]content.NewsPost, error) {
	return s.store.ListNews(ctx)
}

// PublishedNews filters the admin view down to published posts. Publish
// filtering happens here, post-fetch, for both renderer and public API —
// one deterministic strategy rather than a per-caller store predicate.
func (s *Service) PublishedNews(ctx context.Context) ([]content.NewsPost, error) {
	all, err := s.store.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	out := []content.NewsPost{}
	for _, p := range all {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetNews(ctx context.Context, id string) (*content.NewsPost, error) {
	return s.store.GetNews(ctx, id)
}

// CreateNews stores a post with a server-assigned timestamp.
func (s *Service) CreateNews(ctx context.Context, p *content.NewsPost) (string, error) {
	p.Date = s.now().UTC()
	return s.store.CreateNews(ctx, p)
}

// UpdateNews rewrites a post; the timestamp is refreshed on every save,
// matching the site's "latest edit floats to the top" behavior.
func (s *Service) UpdateNews(ctx context.Context, id string, p *content.NewsPost) error {
	p.Date = s.now().UTC()
	return s.store.UpdateNews(ctx, id, p)
}

func (s *Service) DeleteNews(ctx context.Context, id string) error {
	return s.store.DeleteNews(ctx, id)
}

// ---- flyers ----

func (s *Service) AdminFlyers(ctx context.Context) ([]content.Flyer, error) {
	return s.store.ListFlyers(ctx)
}

func (s *Service) PublishedFlyers(ctx context.Context) ([]content.Flyer, error) {
	all, err := s.store.ListFlyers(ctx)
	if err != nil {
		return nil, err
	}
	out := []content.Flyer{}
	for _, f := range all {
		if f.Published {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *Service) GetFlyer(ctx context.Context, id string) (*content.Flyer, error) {
	return s.store.GetFlyer(ctx, id)
}

func (s *Service) CreateFlyer(ctx context.Context, f *content.Flyer) (string, error) {
	f.Date = s.now().UTC()
	return s.store.CreateFlyer(ctx, f)
}

func (s *Service) UpdateFlyer(ctx context.Context, id string, f *content.Flyer) error {
	f.Date = s.now().UTC()
	return s.store.UpdateFlyer(ctx, id, f)
}

func (s *Service) DeleteFlyer(ctx context.Context, id string) error {
	return s.store.DeleteFlyer(ctx, id)
}

// ---- competitions ----

// AdminCompetitions returns every event, drafts included, by start date.
func (s *Service) AdminCompetitions(ctx context.Context) ([]content.CompetitionEvent, error) {
	return s.store.ListCompetitions(ctx)
}

// PublishedCompetitions returns published events bucketed into upcoming and
// past relative to the current calendar day.
func (s *Service) PublishedCompetitions(ctx context.Context) (upcoming, past []content.CompetitionEvent, err error) {
	all, err := s.store.ListCompetitions(ctx)
	if err != nil {
		return nil, nil, err
	}
	published := []content.CompetitionEvent{}
	for _, e := range all {
		if e.Published {
			published = append(published, e)
		}
	}
	upcoming, past = webfmt.BucketByDate(published, s.now())
	return upcoming, past, nil
}

// IsPast reports the past/upcoming status of one event for admin display.
func (s *Service) IsPast(e content.CompetitionEvent) bool {
	return webfmt.IsPast(e, s.now())
}

func (s *Service) GetCompetition(ctx context.Context, id string) (*content.CompetitionEvent, error) {
	return s.store.GetCompetition(ctx, id)
}

func (s *Service) CreateCompetition(ctx context.Context, e *content.CompetitionEvent) (string, error) {
	return s.store.CreateCompetition(ctx, e)
}

func (s *Service) UpdateCompetition(ctx context.Context, id string, e *content.CompetitionEvent) error {
	return s.store.UpdateCompetition(ctx, id, e)
}

func (s *Service) DeleteCompetition(ctx context.Context, id string) error {
	return s.store.DeleteCompetition(ctx, id)
}

// ---- sponsors ----

// Sponsors returns the sponsor list sorted by display order. Sponsors have
// no publish flag; admin and public read the same view.
func (s *Service) Sponsors(ctx context.Context) ([]content.Sponsor, error) {
	all, err := s.store.ListSponsors(ctx)
	if err != nil {
		return nil, err
	}
	return webfmt.SortSponsorsByOrder(all), nil
}

func (s *Service) GetSponsor(ctx context.Context, id string) (*content.Sponsor, error) {
	return s.store.GetSponsor(ctx, id)
}

func (s *Service) CreateSponsor(ctx context.Context, sp *content.Sponsor) (string, error) {
	return s.store.CreateSponsor(ctx, sp)
}

func (s *Service) UpdateSponsor(ctx context.Context, id string, sp *content.Sponsor) error {
	return s.store.UpdateSponsor(ctx, id, sp)
}

func (s *Service) DeleteSponsor(ctx context.Context, id string) error {
	return s.store.DeleteSponsor(ctx, id)
}
