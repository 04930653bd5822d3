package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tigerwc/clubsite/internal/content"
	"github.com/tigerwc/clubsite/internal/content/repository"
)

func newTestService() *Service {
	return NewService(repository.NewMemoryStore())
}

func TestScheduleSlots_AbsentSingletonIsEmpty(t *testing.T) {
	svc := newTestService()
	slots, err := svc.ScheduleSlots(context.Background())
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestUpsertSlot_AssignsIDAndSorts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.UpsertSlot(ctx, content.ScheduleSlot{
		Day: "Tuesday", StartTime: "20:00", EndTime: "21:00", Location: "Main Gym", Order: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := svc.UpsertSlot(ctx, content.ScheduleSlot{
		Day: "Thursday", StartTime: "18:00", EndTime: "19:30", Location: "Main Gym", Order: 0,
	})
	require.NoError(t, err)

	slots, err := svc.ScheduleSlots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	// order=0 slot listed first even though it was added second
	require.Equal(t, second.ID, slots[0].ID)
	require.Equal(t, first.ID, slots[1].ID)
}

func TestUpsertSlot_ReplacesExisting(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	slot, err := svc.UpsertSlot(ctx, content.ScheduleSlot{
		Day: "Tuesday", StartTime: "20:00", EndTime: "21:00", Location: "Main Gym", Order: 1,
	})
	require.NoError(t, err)

	slot.Location = "Practice Room B"
	_, err = svc.UpsertSlot(ctx, slot)
	require.NoError(t, err)

	slots, err := svc.ScheduleSlots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, "Practice Room B", slots[0].Location)
}

func TestUpsertSlot_Invalid(t *testing.T) {
	svc := newTestService()
	_, err := svc.UpsertSlot(context.Background(), content.ScheduleSlot{
		Day: "Someday", StartTime: "20:00", EndTime: "21:00", Location: "Gym",
	})
	require.Error(t, err)
	require.True(t, content.IsValidation(err))
}

func TestDeleteSlot(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	slot, err := svc.UpsertSlot(ctx, content.ScheduleSlot{
		Day: "Tuesday", StartTime: "20:00", EndTime: "21:00", Location: "Gym", Order: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(ctx, slot.ID))
	slots, err := svc.ScheduleSlots(ctx)
	require.NoError(t, err)
	require.Empty(t, slots)

	err = svc.DeleteSlot(ctx, "missing")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestNews_PublishFilterAndTimestamps(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	_, err := svc.CreateNews(ctx, &content.NewsPost{Title: "Season opener", Content: "We won.", Published: true})
	require.NoError(t, err)
	draftID, err := svc.CreateNews(ctx, &content.NewsPost{Title: "Draft post", Content: "wip", Published: false})
	require.NoError(t, err)

	admin, err := svc.AdminNews(ctx)
	require.NoError(t, err)
	require.Len(t, admin, 2, "admin list includes drafts")

	public, err := svc.PublishedNews(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, "Season opener", public[0].Title)
	require.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), public[0].Date, "date is server-assigned")

	// publishing the draft makes it visible
	draft, err := svc.GetNews(ctx, draftID)
	require.NoError(t, err)
	draft.Published = true
	require.NoError(t, svc.UpdateNews(ctx, draftID, draft))
	public, err = svc.PublishedNews(ctx)
	require.NoError(t, err)
	require.Len(t, public, 2)
}

func TestNews_CreateRejectsMissingFields(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateNews(context.Background(), &content.NewsPost{Title: "  ", Content: "body"})
	require.True(t, content.IsValidation(err))
	var ve *content.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "title", ve.Field)
}

func TestFlyers_DeleteRemovesEverywhere(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.CreateFlyer(ctx, &content.Flyer{Title: "Summer camp", ImageURL: "https://img.example/camp.png", Published: true})
	require.NoError(t, err)

	public, err := svc.PublishedFlyers(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	require.NoError(t, svc.DeleteFlyer(ctx, id))

	admin, err := svc.AdminFlyers(ctx)
	require.NoError(t, err)
	require.Empty(t, admin)
	public, err = svc.PublishedFlyers(ctx)
	require.NoError(t, err)
	require.Empty(t, public)
}

func TestPublishedCompetitions_Buckets(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local) }
	ctx := context.Background()

	for _, e := range []content.CompetitionEvent{
		{Name: "spring duals", Date: "2025-03-01", EndDate: "2025-03-02", Published: true},
		{Name: "summer open", Date: "2025-07-04", Published: true},
		{Name: "hidden", Date: "2025-08-01", Published: false},
		{Name: "running now", Date: "2025-06-14", EndDate: "2025-06-16", Published: true},
	} {
		ev := e
		_, err := svc.CreateCompetition(ctx, &ev)
		require.NoError(t, err)
	}

	upcoming, past, err := svc.PublishedCompetitions(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	require.Equal(t, "spring duals", past[0].Name)
	// draft never shows up in either bucket
	for _, e := range append(upcoming, past...) {
		require.NotEqual(t, "hidden", e.Name)
	}
}

func TestCompetition_EndDateBeforeStartRejected(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateCompetition(context.Background(), &content.CompetitionEvent{
		Name: "bad range", Date: "2025-06-10", EndDate: "2025-06-01",
	})
	require.True(t, content.IsValidation(err))
}

func TestSponsors_SortedByOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, sp := range []content.Sponsor{
		{Name: "Bravo", Order: 2},
		{Name: "Alpha", Order: 1},
		{Name: "Charlie", Order: 2},
	} {
		s := sp
		_, err := svc.CreateSponsor(ctx, &s)
		require.NoError(t, err)
	}

	sponsors, err := svc.Sponsors(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alpha", sponsors[0].Name)
	// tie keeps insertion order
	require.Equal(t, "Bravo", sponsors[1].Name)
	require.Equal(t, "Charlie", sponsors[2].Name)
}
