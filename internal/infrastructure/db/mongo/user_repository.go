package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

const userCollection = "users"

// MongoUserRepository persists users in the "users" collection. Email
// uniqueness is enforced by the unique index (see EnsureUserIndexes), so a
// duplicate racing past a service-level pre-check still fails here.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Name         string    `bson:"name"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toDoc(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func toUser(mu mongoUser) *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Email:        mu.Email,
		Name:         mu.Name,
		PasswordHash: mu.PasswordHash,
		CreatedAt:    mu.CreatedAt.UTC(),
		UpdatedAt:    mu.UpdatedAt.UTC(),
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.coll.InsertOne(ctx, toDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUser(mu), nil
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(ctx, bson.M{}, opts)
}

// Update applies a partial $set patch. An empty patch performs no write and
// returns the current record, leaving updated_at untouched.
func (r *MongoUserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return r.FindByID(ctx, id)
	}

	set := bson.M{"updated_at": patch.UpdatedAt.UTC()}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return toUser(mu), nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// SearchByName matches the name field against a case-sensitive substring,
// ordered alphabetically. The term is escaped so it is never interpreted as a
// pattern.
func (r *MongoUserRepository) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(name)}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.findMany(ctx, filter, opts)
}

func (r *MongoUserRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, toUser(mu))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
