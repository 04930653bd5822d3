package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tigerwc/clubsite/internal/content"
	"github.com/tigerwc/clubsite/internal/content/repository"
	"github.com/tigerwc/clubsite/internal/content/service"
)

// failingStore simulates an unreachable document store.
type failingStore struct{}

func (failingStore) GetSchedule(context.Context) (*content.Schedule, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) PutSchedule(context.Context, *content.Schedule) error {
	return content.ErrUnavailable
}
func (failingStore) ListNews(context.Context) ([]content.NewsPost, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) GetNews(context.Context, string) (*content.NewsPost, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) CreateNews(context.Context, *content.NewsPost) (string, error) {
	return "", content.ErrUnavailable
}
func (failingStore) UpdateNews(context.Context, string, *content.NewsPost) error {
	return content.ErrUnavailable
}
func (failingStore) DeleteNews(context.Context, string) error { return content.ErrUnavailable }
func (failingStore) ListFlyers(context.Context) ([]content.Flyer, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) GetFlyer(context.Context, string) (*content.Flyer, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) CreateFlyer(context.Context, *content.Flyer) (string, error) {
	return "", content.ErrUnavailable
}
func (failingStore) UpdateFlyer(context.Context, string, *content.Flyer) error {
	return content.ErrUnavailable
}
func (failingStore) DeleteFlyer(context.Context, string) error { return content.ErrUnavailable }
func (failingStore) ListCompetitions(context.Context) ([]content.CompetitionEvent, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) GetCompetition(context.Context, string) (*content.CompetitionEvent, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) CreateCompetition(context.Context, *content.CompetitionEvent) (string, error) {
	return "", content.ErrUnavailable
}
func (failingStore) UpdateCompetition(context.Context, string, *content.CompetitionEvent) error {
	return content.ErrUnavailable
}
func (failingStore) DeleteCompetition(context.Context, string) error { return content.ErrUnavailable }
func (failingStore) ListSponsors(context.Context) ([]content.Sponsor, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) GetSponsor(context.Context, string) (*content.Sponsor, error) {
	return nil, content.ErrUnavailable
}
func (failingStore) CreateSponsor(context.Context, *content.Sponsor) (string, error) {
	return "", content.ErrUnavailable
}
func (failingStore) UpdateSponsor(context.Context, string, *content.Sponsor) error {
	return content.ErrUnavailable
}
func (failingStore) DeleteSponsor(context.Context, string) error { return content.ErrUnavailable }

func seededRenderer(t *testing.T) *Renderer {
	t.Helper()
	svc := service.NewService(repository.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.UpsertSlot(ctx, content.ScheduleSlot{
		Day: "Tuesday", StartTime: "20:00", EndTime: "21:30", Location: "Main Gym <East>", Order: 1,
	})
	require.NoError(t, err)

	_, err = svc.CreateNews(ctx, &content.NewsPost{
		Title: "Tom & Jerry take gold", Content: "Great weekend.", Published: true,
	})
	require.NoError(t, err)
	_, err = svc.CreateNews(ctx, &content.NewsPost{Title: "hidden draft", Content: "wip"})
	require.NoError(t, err)

	_, err = svc.CreateFlyer(ctx, &content.Flyer{
		Title: "Summer Camp", ImageURL: "https://img.example/camp.png", Published: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateCompetition(ctx, &content.CompetitionEvent{
		Name: "State Open", Date: "2099-06-01", EndDate: "2099-06-02", Location: "Springfield", Published: true,
	})
	require.NoError(t, err)
	_, err = svc.CreateCompetition(ctx, &content.CompetitionEvent{
		Name: "Winter Classic", Date: "2001-01-10", Published: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateSponsor(ctx, &content.Sponsor{Name: "Acme Forge", Website: "https://acme.example", Order: 1})
	require.NoError(t, err)

	return NewRenderer(svc)
}

func TestScheduleHTML_EscapesAndFormats(t *testing.T) {
	r := seededRenderer(t)
	html := string(r.ScheduleHTML(context.Background()))
	require.Contains(t, html, "Main Gym &lt;East&gt;")
	require.NotContains(t, html, "<East>")
	require.Contains(t, html, "8:00 PM")
	require.Contains(t, html, "9:30 PM")
}

func TestNewsHTML_PublishedOnlyEscaped(t *testing.T) {
	r := seededRenderer(t)
	html := string(r.NewsHTML(context.Background()))
	require.Contains(t, html, "Tom &amp; Jerry take gold")
	require.NotContains(t, html, "hidden draft")
}

func TestCompetitionsHTML_Buckets(t *testing.T) {
	r := seededRenderer(t)
	html := string(r.CompetitionsHTML(context.Background()))
	require.Contains(t, html, "State Open")
	require.Contains(t, html, "Jun 1, 2099 – Jun 2, 2099")
	require.Contains(t, html, "Past Competitions")
	require.Contains(t, html, "Winter Classic")
	// upcoming block precedes the past block
	require.Less(t, strings.Index(html, "State Open"), strings.Index(html, "Winter Classic"))
}

func TestSponsorsHTML_Link(t *testing.T) {
	r := seededRenderer(t)
	html := string(r.SponsorsHTML(context.Background()))
	require.Contains(t, html, `href="https://acme.example"`)
	require.Contains(t, html, "Acme Forge")
}

func TestSections_PlaceholdersWhenEmpty(t *testing.T) {
	r := NewRenderer(service.NewService(repository.NewMemoryStore()))
	ctx := context.Background()
	require.Contains(t, string(r.ScheduleHTML(ctx)), "coming soon")
	require.Contains(t, string(r.NewsHTML(ctx)), "No news yet")
	require.Contains(t, string(r.FlyersHTML(ctx)), "No flyers")
	require.Contains(t, string(r.CompetitionsHTML(ctx)), "No competitions")
	require.Contains(t, string(r.SponsorsHTML(ctx)), "sponsoring")
}

func TestBuildPage_NeverFails(t *testing.T) {
	r := NewRenderer(service.NewService(failingStore{}))
	page := r.BuildPage(context.Background(), "Tiger Wrestling Club")
	require.Equal(t, "Tiger Wrestling Club", page.SiteTitle)
	for name, frag := range map[string]string{
		"schedule":     string(page.Schedule),
		"news":         string(page.News),
		"flyers":       string(page.Flyers),
		"competitions": string(page.Competitions),
		"sponsors":     string(page.Sponsors),
	} {
		require.NotEmpty(t, frag, "%s section must render a placeholder", name)
		require.Contains(t, frag, "placeholder", name)
	}
}

func TestBuildPage_AllSectionsPresent(t *testing.T) {
	r := seededRenderer(t)
	page := r.BuildPage(context.Background(), "Tiger Wrestling Club")
	require.Contains(t, string(page.Schedule), "schedule-grid")
	require.Contains(t, string(page.News), "news-list")
	require.Contains(t, string(page.Flyers), "flyer-gallery")
	require.Contains(t, string(page.Competitions), "competitions")
	require.Contains(t, string(page.Sponsors), "sponsor-strip")
}
