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

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

const (
	productsCollection = "products"
	countersCollection = "counters"
	productSequence    = "products"
)

// ProductRepository stores products under integer ids allocated from the
// counters collection.
type ProductRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		coll:     db.Collection(productsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *ProductRepository) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, listFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]*domain.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p domain.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patchSet(patch, time.Now().UTC())}, opts).Decode(&p)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProductRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": productSequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate product id: %w", err)
	}
	return counter.Seq, nil
}

// EnsureIndexes creates the search indexes on the products collection.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	return err
}

func listFilter(filter ports.ProductFilter) bson.M {
	if filter.Search == "" {
		return bson.M{}
	}
	re := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"brand": re},
	}}
}

// patchSet builds the $set document for the fields present in the patch.
func patchSet(p domain.ProductPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	put := func(key string, present bool, v any) {
		if present {
			set[key] = v
		}
	}
	put("name", p.Name != nil, deref(p.Name))
	put("brand", p.Brand != nil, deref(p.Brand))
	put("model", p.Model != nil, deref(p.Model))
	put("type", p.Type != nil, deref(p.Type))
	put("material", p.Material != nil, deref(p.Material))
	put("description", p.Description != nil, deref(p.Description))
	put("price", p.Price != nil, deref(p.Price))
	put("original_price", p.OriginalPrice != nil, deref(p.OriginalPrice))
	put("stock", p.Stock != nil, deref(p.Stock))
	put("sizes", p.Sizes != nil, p.Sizes)
	put("colors", p.Colors != nil, p.Colors)
	put("image", p.Image != nil, deref(p.Image))
	put("discount", p.Discount != nil, deref(p.Discount))
	return set
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrProductNotFound
	}
	return fmt.Errorf("product query: %w", err)
}
