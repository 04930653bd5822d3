package repository

import (
	"context"

	"github.com/tigerwc/clubsite/internal/content"
)

// Store is the content store contract shared by the public renderer and the
// admin panel. The schedule is a singleton document holding the full slot
// array; every other collection is one document per record.
//
// List orderings mirror the store-native queries the site depends on:
// news and flyers newest first, competitions by start date ascending.
// Slots and sponsors are returned as stored; display code sorts them by
// their order field.
type Store interface {
	GetSchedule(ctx context.Context) (*content.Schedule, error)
	PutSchedule(ctx context.Context, s *content.Schedule) error

	ListNews(ctx context.Context) ([]content.NewsPost, error)
	GetNews(ctx context.Context, id string) (*content.NewsPost, error)
	CreateNews(ctx context.Context, p *content.NewsPost) (string, error)
	UpdateNews(ctx context.Context, id string, p *content.NewsPost) error
	DeleteNews(ctx context.Context, id string) error

	ListFlyers(ctx context.Context) ([]content.Flyer, error)
	GetFlyer(ctx context.Context, id string) (*content.Flyer, error)
	CreateFlyer(ctx context.Context, f *content.Flyer) (string, error)
	UpdateFlyer(ctx context.Context, id string, f *content.Flyer) error
	DeleteFlyer(ctx context.Context, id string) error

	ListCompetitions(ctx context.Context) ([]content.CompetitionEvent, error)
	GetCompetition(ctx context.Context, id string) (*content.CompetitionEvent, error)
	CreateCompetition(ctx context.Context, e *content.CompetitionEvent) (string, error)
	UpdateCompetition(ctx context.Context, id string, e *content.CompetitionEvent) error
	DeleteCompetition(ctx context.Context, id string) error

	ListSponsors(ctx context.Context) ([]content.Sponsor, error)
	GetSponsor(ctx context.Context, id string) (*content.Sponsor, error)
	CreateSponsor(ctx context.Context, s *content.Sponsor) (string, error)
	UpdateSponsor(ctx context.Context, id string, s *content.Sponsor) error
	DeleteSponsor(ctx context.Context, id string) error
}
