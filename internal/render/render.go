// Package render turns stored content into the HTML fragments of the public
// page. Every value interpolated into markup is escaped first, and a section
// that cannot be loaded renders a friendly placeholder instead of failing the
// whole page.
package render

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/tigerwc/clubsite/internal/content"
	"github.com/tigerwc/clubsite/internal/content/service"
	"github.com/tigerwc/clubsite/internal/webfmt"
	"github.com/tigerwc/clubsite/pkg/logger"
)

// Placeholder texts shown when a section is empty or its load failed. The
// public page never shows an error and never renders a blank section.
const (
	placeholderSchedule     = "Practice schedule coming soon."
	placeholderNews         = "No news yet — check back soon."
	placeholderFlyers       = "No flyers posted right now."
	placeholderCompetitions = "No competitions scheduled yet."
	placeholderSponsors     = "Interested in sponsoring us? Get in touch!"
)

type Renderer struct {
	svc *service.Service
}

func NewRenderer(svc *service.Service) *Renderer {
	return &Renderer{svc: svc}
}

// Page holds the rendered fragments for the outer page template. Fields are
// template.HTML because each fragment is already escaped here; the template
// must not escape them again.
type Page struct {
	SiteTitle    string
	Schedule     template.HTML
	News         template.HTML
	Flyers       template.HTML
	Competitions template.HTML
	Sponsors     template.HTML
}

// BuildPage loads and renders all five sections concurrently. It never
// returns an error: a failed section logs and falls back to its placeholder.
func (r *Renderer) BuildPage(ctx context.Context, siteTitle string) Page {
	page := Page{SiteTitle: siteTitle}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); page.Schedule = r.ScheduleHTML(ctx) }()
	go func() { defer wg.Done(); page.News = r.NewsHTML(ctx) }()
	go func() { defer wg.Done(); page.Flyers = r.FlyersHTML(ctx) }()
	go func() { defer wg.Done(); page.Competitions = r.CompetitionsHTML(ctx) }()
	go func() { defer wg.Done(); page.Sponsors = r.SponsorsHTML(ctx) }()
	wg.Wait()

	return page
}

func placeholder(text string) template.HTML {
	return template.HTML(`<p class="placeholder">` + webfmt.EscapeHTML(text) + `</p>`)
}

// ScheduleHTML renders the weekly practice grid.
func (r *Renderer) ScheduleHTML(ctx context.Context) template.HTML {
	slots, err := r.svc.ScheduleSlots(ctx)
	if err != nil {
		logger.Errorf("render: schedule load failed: %v", err)
		return placeholder(placeholderSchedule)
	}
	if len(slots) == 0 {
		return placeholder(placeholderSchedule)
	}

	var b strings.Builder
	b.WriteString(`<div class="schedule-grid">`)
	for _, s := range slots {
		card := "schedule-card"
		if s.Featured {
			card += " featured"
		}
		fmt.Fprintf(&b, `<div class="%s">`, card)
		if s.Title != "" {
			fmt.Fprintf(&b, `<span class="slot-title">%s</span>`, webfmt.EscapeHTML(s.Title))
		}
		fmt.Fprintf(&b, `<span class="slot-day">%s</span>`, webfmt.EscapeHTML(s.Day))
		fmt.Fprintf(&b, `<span class="slot-time">%s – %s</span>`,
			webfmt.FormatTime(s.StartTime), webfmt.FormatTime(s.EndTime))
		fmt.Fprintf(&b, `<span class="slot-location">%s</span>`, webfmt.EscapeHTML(s.Location))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// NewsHTML renders published posts, newest first.
func (r *Renderer) NewsHTML(ctx context.Context) template.HTML {
	posts, err := r.svc.PublishedNews(ctx)
	if err != nil {
		logger.Errorf("render: news load failed: %v", err)
		return placeholder(placeholderNews)
	}
	if len(posts) == 0 {
		return placeholder(placeholderNews)
	}

	var b strings.Builder
	b.WriteString(`<div class="news-list">`)
	for _, p := range posts {
		b.WriteString(`<article class="news-card">`)
		if p.ImageURL != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s">`,
				webfmt.EscapeHTML(p.ImageURL), webfmt.EscapeHTML(p.Title))
		}
		fmt.Fprintf(&b, `<h3>%s</h3>`, webfmt.EscapeHTML(p.Title))
		fmt.Fprintf(&b, `<time class="news-date">%s</time>`, webfmt.FormatDateLong(p.Date))
		fmt.Fprintf(&b, `<p>%s</p>`, webfmt.EscapeHTML(p.Content))
		b.WriteString(`</article>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// FlyersHTML renders published flyers as an image gallery.
func (r *Renderer) FlyersHTML(ctx context.Context) template.HTML {
	flyers, err := r.svc.PublishedFlyers(ctx)
	if err != nil {
		logger.Errorf("render: flyers load failed: %v", err)
		return placeholder(placeholderFlyers)
	}
	if len(flyers) == 0 {
		return placeholder(placeholderFlyers)
	}

	var b strings.Builder
	b.WriteString(`<div class="flyer-gallery">`)
	for _, f := range flyers {
		b.WriteString(`<figure class="flyer">`)
		fmt.Fprintf(&b, `<img src="%s" alt="%s">`,
			webfmt.EscapeHTML(f.ImageURL), webfmt.EscapeHTML(f.Title))
		fmt.Fprintf(&b, `<figcaption>%s`, webfmt.EscapeHTML(f.Title))
		if f.Description != "" {
			fmt.Fprintf(&b, `<span class="flyer-desc">%s</span>`, webfmt.EscapeHTML(f.Description))
		}
		b.WriteString(`</figcaption></figure>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// CompetitionsHTML renders published events split into upcoming and past.
// The past block only appears when there are past events.
func (r *Renderer) CompetitionsHTML(ctx context.Context) template.HTML {
	upcoming, past, err := r.svc.PublishedCompetitions(ctx)
	if err != nil {
		logger.Errorf("render: competitions load failed: %v", err)
		return placeholder(placeholderCompetitions)
	}
	if len(upcoming) == 0 && len(past) == 0 {
		return placeholder(placeholderCompetitions)
	}

	var b strings.Builder
	b.WriteString(`<div class="competitions">`)
	if len(upcoming) == 0 {
		b.WriteString(`<p class="placeholder">No upcoming competitions — see past results below.</p>`)
	} else {
		b.WriteString(`<div class="events upcoming">`)
		for _, e := range upcoming {
			writeEvent(&b, e)
		}
		b.WriteString(`</div>`)
	}
	if len(past) > 0 {
		b.WriteString(`<h3 class="past-heading">Past Competitions</h3><div class="events past">`)
		for _, e := range past {
			writeEvent(&b, e)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func writeEvent(b *strings.Builder, e content.CompetitionEvent) {
	card := "event-card"
	if e.Travel {
		card += " travel"
	}
	fmt.Fprintf(b, `<div class="%s">`, card)
	fmt.Fprintf(b, `<div class="event-date"><span class="month">%s</span><span class="day">%s</span></div>`,
		webfmt.FormatMonth(e.Date), webfmt.FormatDay(e.Date))
	b.WriteString(`<div class="event-body">`)
	fmt.Fprintf(b, `<h4>%s</h4>`, webfmt.EscapeHTML(e.Name))
	fmt.Fprintf(b, `<span class="event-range">%s</span>`, webfmt.FormatCompetitionRange(e.Date, e.EndDate))
	if e.Location != "" {
		fmt.Fprintf(b, `<span class="event-location">%s</span>`, webfmt.EscapeHTML(e.Location))
	}
	if e.Divisions != "" {
		fmt.Fprintf(b, `<span class="event-divisions">%s</span>`, webfmt.EscapeHTML(e.Divisions))
	}
	if e.Notes != "" {
		fmt.Fprintf(b, `<p class="event-notes">%s</p>`, webfmt.EscapeHTML(e.Notes))
	}
	if e.Link != "" {
		fmt.Fprintf(b, `<a class="event-link" href="%s" rel="noopener">Details</a>`, webfmt.EscapeHTML(e.Link))
	}
	b.WriteString(`</div></div>`)
}

// SponsorsHTML renders the sponsor strip in display order.
func (r *Renderer) SponsorsHTML(ctx context.Context) template.HTML {
	sponsors, err := r.svc.Sponsors(ctx)
	if err != nil {
		logger.Errorf("render: sponsors load failed: %v", err)
		return placeholder(placeholderSponsors)
	}
	if len(sponsors) == 0 {
		return placeholder(placeholderSponsors)
	}

	var b strings.Builder
	b.WriteString(`<div class="sponsor-strip">`)
	for _, sp := range sponsors {
		b.WriteString(`<div class="sponsor">`)
		inner := webfmt.EscapeHTML(sp.Name)
		if sp.LogoURL != "" {
			inner = fmt.Sprintf(`<img src="%s" alt="%s">`,
				webfmt.EscapeHTML(sp.LogoURL), webfmt.EscapeHTML(sp.Name))
		}
		if sp.Website != "" {
			fmt.Fprintf(&b, `<a href="%s" rel="noopener">%s</a>`, webfmt.EscapeHTML(sp.Website), inner)
		} else {
			b.WriteString(inner)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
