package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amathumitha2210/Customer-Management/internal/domain"
	"github.com/amathumitha2210/Customer-Management/internal/pkg/log"
)

type MongoCustomerRepo struct{ coll *mongo.Collection }

func NewMongoCustomerRepo(db *mongo.Database) *MongoCustomerRepo {
	return &MongoCustomerRepo{coll: db.Collection("customers")}
}

// EnsureIndexes creates the unique nic index. The store is the sole
// point of serialization for nic uniqueness across writers.
func (r *MongoCustomerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nic", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoCustomerRepo) ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(search); s != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"name": re},
			bson.M{"nic": re},
			bson.M{"addresses.city": re},
		}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	out := []domain.Customer{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}

	// Total is computed on the same filter, independent of skip/limit.
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MongoCustomerRepo) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var c domain.Customer
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoCustomerRepo) CreateCustomer(ctx context.Context, c domain.Customer) (string, error) {
	c.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return "", domain.ErrDuplicateNIC
	}
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *MongoCustomerRepo) UpdateCustomer(ctx context.Context, id string, c domain.Customer) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	// Embedded sequences are replaced wholesale, never merged.
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":          c.Name,
		"dob":           c.Dob,
		"nic":           c.NIC,
		"mobiles":       c.Mobiles,
		"addresses":     c.Addresses,
		"familyMembers": c.FamilyMembers,
	}})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateNIC
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoCustomerRepo) BulkUpsertCustomers(ctx context.Context, batch []domain.Customer) (int64, int64, error) {
	models := make([]mongo.WriteModel, 0, len(batch))
	for _, c := range batch {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"nic": c.NIC}).
			SetUpdate(bson.M{"$set": bson.M{
				"name":          c.Name,
				"dob":           c.Dob,
				"mobiles":       c.Mobiles,
				"addresses":     c.Addresses,
				"familyMembers": c.FamilyMembers,
			}}).
			SetUpsert(true))
	}

	res, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && res != nil {
			// Unordered write: rows that lost a nic race fail alone,
			// siblings in the batch still land.
			log.Error.Printf("bulk_upsert partial failures=%d", len(bwe.WriteErrors))
			return res.UpsertedCount, res.ModifiedCount, nil
		}
		return 0, 0, err
	}
	return res.UpsertedCount, res.ModifiedCount, nil
}
