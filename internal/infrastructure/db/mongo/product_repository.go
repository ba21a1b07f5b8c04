package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/primekart/storefront-api/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository persists catalog entries in the products collection.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// Product documents are open-shaped: title, price, and created_at are
// fixed, everything else rides along in the attributes map.
func productToDoc(p *domain.Product) bson.M {
	doc := bson.M{
		"title":      p.Title,
		"price":      p.Price,
		"created_at": p.CreatedAt,
	}
	for k, v := range p.Attributes {
		if k == "title" || k == "price" || k == "created_at" || k == "_id" {
			continue
		}
		doc[k] = v
	}
	return doc
}

func docToProduct(doc bson.M) *domain.Product {
	p := &domain.Product{Attributes: make(map[string]any)}
	for k, v := range doc {
		switch k {
		case "_id":
			if oid, ok := v.(primitive.ObjectID); ok {
				p.ID = oid.Hex()
			}
		case "title":
			p.Title, _ = v.(string)
		case "price":
			switch n := v.(type) {
			case float64:
				p.Price = n
			case int32:
				p.Price = float64(n)
			case int64:
				p.Price = float64(n)
			}
		case "created_at":
			if dt, ok := v.(primitive.DateTime); ok {
				p.CreatedAt = dt.Time().UTC()
			}
		default:
			p.Attributes[k] = v
		}
	}
	if len(p.Attributes) == 0 {
		p.Attributes = nil
	}
	return p
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, productToDoc(product))
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidProductID
	}

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return docToProduct(doc), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]*domain.Product, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, docToProduct(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
