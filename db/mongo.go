package db

import (
	"context"
	"errors"

	"voyago/globals"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// Connect establishes the MongoDB connection, wires the mongo-backed stores
// and ensures indexes. Call once from main before serving.
func Connect(ctx context.Context, cfg *globals.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	Client = client

	database := client.Database(cfg.MongoDB)
	users := database.Collection("users")
	packages := database.Collection("packages")
	itineraries := database.Collection("itineraries")

	// Unique email is enforced by the store, not application logic.
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	_, err = packages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "activities.location", Value: "2dsphere"}},
	})
	if err != nil {
		return nil, err
	}

	Users = &mongoUsers{col: users}
	Packages = &mongoPackages{col: packages}
	Itineraries = &mongoItineraries{col: itineraries}
	return client, nil
}

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *mongoUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"userid": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *mongoUsers) Insert(ctx context.Context, u *models.User) error {
	_, err := s.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

type mongoPackages struct {
	col *mongo.Collection
}

func (s *mongoPackages) FindAll(ctx context.Context) ([]models.Package, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *mongoPackages) FindByID(ctx context.Context, id string) (*models.Package, error) {
	var p models.Package
	err := s.col.FindOne(ctx, bson.M{"packageid": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *mongoPackages) Insert(ctx context.Context, p *models.Package) error {
	_, err := s.col.InsertOne(ctx, p)
	return err
}

func (s *mongoPackages) Replace(ctx context.Context, p *models.Package) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"packageid": p.PackageID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPackages) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"packageid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoItineraries struct {
	col *mongo.Collection
}

func (s *mongoItineraries) FindByID(ctx context.Context, id string) (*models.Itinerary, error) {
	var it models.Itinerary
	err := s.col.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (s *mongoItineraries) FindByUser(ctx context.Context, userID string) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var itineraries []models.Itinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (s *mongoItineraries) Insert(ctx context.Context, it *models.Itinerary) error {
	_, err := s.col.InsertOne(ctx, it)
	return err
}

func (s *mongoItineraries) Replace(ctx context.Context, it *models.Itinerary) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"itineraryid": it.ItineraryID}, it)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoItineraries) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"itineraryid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
