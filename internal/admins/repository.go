package admins

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Admin is an account allowed into the editing panel. Accounts are
// provisioned out of band; there is no self-service signup.
type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Repository defines persistence operations for admin accounts
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	UpsertByEmail(ctx context.Context, a *Admin) (*Admin, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	if err := r.col.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) UpsertByEmail(ctx context.Context, a *Admin) (*Admin, error) {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	a.Email = normalizeEmail(a.Email)

	filter := bson.M{"email": a.Email}
	repl := bson.M{"$set": bson.M{
		"email":        a.Email,
		"passwordHash": a.PasswordHash,
		"updatedAt":    a.UpdatedAt,
		"createdAt":    a.CreatedAt,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated Admin
	if err := r.col.FindOneAndUpdate(ctx, filter, repl, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return a, nil
		}
		return nil, err
	}
	return &updated, nil
}

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*Admin
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: map[string]*Admin{}}
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) UpsertByEmail(ctx context.Context, a *Admin) (*Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	a.Email = normalizeEmail(a.Email)
	cp := *a
	r.accounts[cp.Email] = &cp
	return a, nil
}
