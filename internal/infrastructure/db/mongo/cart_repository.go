package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const collectionCarts = "carts"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(collectionCarts)}
}

type mongoCartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menu_item_id"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image,omitempty"`
	Price      float64            `bson:"price"`
}

func (m mongoCartItem) toDomain() domain.CartItem {
	return domain.CartItem{
		ID:         m.ID.Hex(),
		Email:      m.Email,
		MenuItemID: m.MenuItemID,
		Name:       m.Name,
		Image:      m.Image,
		Price:      m.Price,
	}
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.CartItem{}
	for cur.Next(ctx) {
		var mc mongoCartItem
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, mc.toDomain())
	}
	return items, cur.Err()
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCartItem{
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// DeleteMany removes all cart rows whose id is in ids. Ids that do not parse
// or do not match any row purge nothing; they are not errors.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("purge cart items: %w", err)
	}
	return res.DeletedCount, nil
}
