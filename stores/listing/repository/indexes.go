package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/database/mongoclient"
	"github.com/solmart/goapi/domain"
)

// EnsureIndexes creates the unique mint index Create relies on for its
// duplicate-key conflict mapping. CreateOne is a no-op when the index
// already exists.
func EnsureIndexes(c ctx.Ctx, client *mongoclient.Client) error {
	collection := client.Database(client.DbName).Collection(string(domain.TableListings))
	if _, err := collection.Indexes().CreateOne(c, mongo.IndexModel{
		Keys:    bson.D{{Key: "mint", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		c.WithField("err", err).Error("create mint index failed")
		return err
	}
	return nil
}
