package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const (
	collectionMenu    = "menu"
	collectionReviews = "reviews"
)

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(collectionMenu)}
}

type mongoMenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Recipe   string             `bson:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty"`
}

func (m mongoMenuItem) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:       m.ID.Hex(),
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
		Recipe:   m.Recipe,
		Image:    m.Image,
	}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.MenuItem{}
	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	return items, cur.Err()
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuItemNotFound
	}

	var mi mongoMenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	item := mi.toDomain()
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMenuItem{
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Recipe:   item.Recipe,
		Image:    item.Image,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"recipe":   item.Recipe,
			"image":    item.Image,
		}},
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.EstimatedDocumentCount(ctx)
}

// ReviewRepository serves the read-only review listing.
type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(collectionReviews)}
}

type mongoReview struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []domain.Review{}
	for cur.Next(ctx) {
		var mr mongoReview
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, domain.Review{
			ID:      mr.ID.Hex(),
			Name:    mr.Name,
			Details: mr.Details,
			Rating:  mr.Rating,
		})
	}
	return reviews, cur.Err()
}
