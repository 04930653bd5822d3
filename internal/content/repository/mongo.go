package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tigerwc/clubsite/internal/content"
	"github.com/tigerwc/clubsite/pkg/logger"
	"github.com/tigerwc/clubsite/pkg/metrics"
)

// MongoStore implements Store on top of a MongoDB database. Documents use
// string ObjectID hexes for _id so IDs stay plain strings on the wire.
type MongoStore struct {
	schedule     *mongo.Collection
	news         *mongo.Collection
	flyers       *mongo.Collection
	competitions *mongo.Collection
	sponsors     *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		schedule:     db.Collection(content.CollectionSchedule),
		news:         db.Collection(content.CollectionNews),
		flyers:       db.Collection(content.CollectionFlyers),
		competitions: db.Collection(content.CollectionCompetitions),
		sponsors:     db.Collection(content.CollectionSponsors),
	}
}

// wrap maps driver errors onto the store taxonomy and records the op outcome.
func wrap(collection, op string, err error) error {
	switch {
	case err == nil:
		metrics.StoreOps.WithLabelValues(collection, op, "ok").Inc()
		return nil
	case errors.Is(err, mongo.ErrNoDocuments), errors.Is(err, content.ErrNotFound):
		metrics.StoreOps.WithLabelValues(collection, op, "not_found").Inc()
		return content.ErrNotFound
	case content.IsValidation(err):
		metrics.StoreOps.WithLabelValues(collection, op, "invalid").Inc()
		return err
	default:
		metrics.StoreOps.WithLabelValues(collection, op, "error").Inc()
		logger.Errorf("content store: %s %s failed: %v", op, collection, err)
		return fmt.Errorf("%s %s: %w", op, collection, content.ErrUnavailable)
	}
}

// ---- schedule singleton ----

func (m *MongoStore) GetSchedule(ctx context.Context) (*content.Schedule, error) {
	var s content.Schedule
	err := m.schedule.FindOne(ctx, bson.M{"_id": content.ScheduleDocID}).Decode(&s)
	if err != nil {
		return nil, wrap(content.CollectionSchedule, "get", err)
	}
	metrics.StoreOps.WithLabelValues(content.CollectionSchedule, "get", "ok").Inc()
	return &s, nil
}

func (m *MongoStore) PutSchedule(ctx context.Context, s *content.Schedule) error {
	if err := s.Validate(); err != nil {
		return wrap(content.CollectionSchedule, "put", err)
	}
	s.ID = content.ScheduleDocID
	opts := options.Replace().SetUpsert(true)
	_, err := m.schedule.ReplaceOne(ctx, bson.M{"_id": content.ScheduleDocID}, s, opts)
	return wrap(content.CollectionSchedule, "put", err)
}

// ---- generic helpers ----

func listSorted[T any](ctx context.Context, col *mongo.Collection, name string, sortDoc bson.D) ([]T, error) {
	findOpts := options.Find()
	if sortDoc != nil {
		findOpts.SetSort(sortDoc)
	}
	cur, err := col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, wrap(name, "list", err)
	}
	defer cur.Close(ctx)
	out := []T{}
	for cur.Next(ctx) {
		var d T
		if err := cur.Decode(&d); err != nil {
			return nil, wrap(name, "list", err)
		}
		out = append(out, d)
	}
	if err := cur.Err(); err != nil {
		return nil, wrap(name, "list", err)
	}
	metrics.StoreOps.WithLabelValues(name, "list", "ok").Inc()
	return out, nil
}

func getByID[T any](ctx context.Context, col *mongo.Collection, name, id string) (*T, error) {
	var d T
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, wrap(name, "get", err)
	}
	metrics.StoreOps.WithLabelValues(name, "get", "ok").Inc()
	return &d, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, name, id string) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrap(name, "delete", err)
	}
	if res.DeletedCount == 0 {
		return wrap(name, "delete", content.ErrNotFound)
	}
	return wrap(name, "delete", nil)
}

func replaceByID(ctx context.Context, col *mongo.Collection, name, id string, doc interface{}) error {
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return wrap(name, "update", err)
	}
	if res.MatchedCount == 0 {
		return wrap(name, "update", content.ErrNotFound)
	}
	return wrap(name, "update", nil)
}

// ---- news ----

func (m *MongoStore) ListNews(ctx context.Context) ([]content.NewsPost, error) {
	return listSorted[content.NewsPost](ctx, m.news, content.CollectionNews, bson.D{{Key: "date", Value: -1}})
}

func (m *MongoStore) GetNews(ctx context.Context, id string) (*content.NewsPost, error) {
	return getByID[content.NewsPost](ctx, m.news, content.CollectionNews, id)
}

func (m *MongoStore) CreateNews(ctx context.Context, p *content.NewsPost) (string, error) {
	if err := p.Validate(); err != nil {
		return "", wrap(content.CollectionNews, "create", err)
	}
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	_, err := m.news.InsertOne(ctx, p)
	if err := wrap(content.CollectionNews, "create", err); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (m *MongoStore) UpdateNews(ctx context.Context, id string, p *content.NewsPost) error {
	if err := p.Validate(); err != nil {
		return wrap(content.CollectionNews, "update", err)
	}
	p.ID = id
	return replaceByID(ctx, m.news, content.CollectionNews, id, p)
}

func (m *MongoStore) DeleteNews(ctx context.Context, id string) error {
	return deleteByID(ctx, m.news, content.CollectionNews, id)
}

// ---- flyers ----

func (m *MongoStore) ListFlyers(ctx context.Context) ([]content.Flyer, error) {
	return listSorted[content.Flyer](ctx, m.flyers, content.CollectionFlyers, bson.D{{Key: "date", Value: -1}})
}

func (m *MongoStore) GetFlyer(ctx context.Context, id string) (*content.Flyer, error) {
	return getByID[content.Flyer](ctx, m.flyers, content.CollectionFlyers, id)
}

func (m *MongoStore) CreateFlyer(ctx context.Context, f *content.Flyer) (string, error) {
	if err := f.Validate(); err != nil {
		return "", wrap(content.CollectionFlyers, "create", err)
	}
	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}
	_, err := m.flyers.InsertOne(ctx, f)
	if err := wrap(content.CollectionFlyers, "create", err); err != nil {
		return "", err
	}
	return f.ID, nil
}

func (m *MongoStore) UpdateFlyer(ctx context.Context, id string, f *content.Flyer) error {
	if err := f.Validate(); err != nil {
		return wrap(content.CollectionFlyers, "update", err)
	}
	f.ID = id
	return replaceByID(ctx, m.flyers, content.CollectionFlyers, id, f)
}

func (m *MongoStore) DeleteFlyer(ctx context.Context, id string) error {
	return deleteByID(ctx, m.flyers, content.CollectionFlyers, id)
}

// ---- competitions ----

func (m *MongoStore) ListCompetitions(ctx context.Context) ([]content.CompetitionEvent, error) {
	return listSorted[content.CompetitionEvent](ctx, m.competitions, content.CollectionCompetitions, bson.D{{Key: "date", Value: 1}})
}

func (m *MongoStore) GetCompetition(ctx context.Context, id string) (*content.CompetitionEvent, error) {
	return getByID[content.CompetitionEvent](ctx, m.competitions, content.CollectionCompetitions, id)
}

func (m *MongoStore) CreateCompetition(ctx context.Context, e *content.CompetitionEvent) (string, error) {
	if err := e.Validate(); err != nil {
		return "", wrap(content.CollectionCompetitions, "create", err)
	}
	if e.ID == "" {
		e.ID = primitive.NewObjectID().Hex()
	}
	_, err := m.competitions.InsertOne(ctx, e)
	if err := wrap(content.CollectionCompetitions, "create", err); err != nil {
		return "", err
	}
	return e.ID, nil
}

func (m *MongoStore) UpdateCompetition(ctx context.Context, id string, e *content.CompetitionEvent) error {
	if err := e.Validate(); err != nil {
		return wrap(content.CollectionCompetitions, "update", err)
	}
	e.ID = id
	return replaceByID(ctx, m.competitions, content.CollectionCompetitions, id, e)
}

func (m *MongoStore) DeleteCompetition(ctx context.Context, id string) error {
	return deleteByID(ctx, m.competitions, content.CollectionCompetitions, id)
}

// ---- sponsors ----

func (m *MongoStore) ListSponsors(ctx context.Context) ([]content.Sponsor, error) {
	return listSorted[content.Sponsor](ctx, m.sponsors, content.CollectionSponsors, nil)
}

func (m *MongoStore) GetSponsor(ctx context.Context, id string) (*content.Sponsor, error) {
	return getByID[content.Sponsor](ctx, m.sponsors, content.CollectionSponsors, id)
}

func (m *MongoStore) CreateSponsor(ctx context.Context, s *content.Sponsor) (string, error) {
	if err := s.Validate(); err != nil {
		return "", wrap(content.CollectionSponsors, "create", err)
	}
	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	_, err := m.sponsors.InsertOne(ctx, s)
	if err := wrap(content.CollectionSponsors, "create", err); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (m *MongoStore) UpdateSponsor(ctx context.Context, id string, s *content.Sponsor) error {
	if err := s.Validate(); err != nil {
		return wrap(content.CollectionSponsors, "update", err)
	}
	s.ID = id
	return replaceByID(ctx, m.sponsors, content.CollectionSponsors, id, s)
}

func (m *MongoStore) DeleteSponsor(ctx context.Context, id string) error {
	return deleteByID(ctx, m.sponsors, content.CollectionSponsors, id)
}
