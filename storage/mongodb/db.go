package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/educircle/backend/core"
)

// queryTimeout bounds every store round trip.
const queryTimeout = 10 * time.Second

// collections
const (
	assignmentsCollection = "assignments"
	submissionsCollection = "submissions"
	reviewsCollection     = "reviews"
	bookmarksCollection   = "bookmarks"
)

// Open connects to the cluster and waits for it to be reachable.
// The returned client is a long-lived resource shared by all concurrent
// requests; it must be released with Close on shutdown.
func Open(conf *core.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Database.URI()).SetAppName(conf.AppName))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to cluster")
	}
	if err = ping(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ping waits for the cluster to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, client *mongo.Client) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = client.Ping(ctx, readpref.Primary()); err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "cluster ping timeout")
	}
	return nil
}

// Close releases the shared client.
func Close(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// wrapErr annotates a store failure. A disconnected shared client cannot
// recover mid-flight, so it surfaces as a shutdown error for the server to
// act on.
func wrapErr(err error, msg string) error {
	if err == mongo.ErrClientDisconnected {
		return core.NewShutdownError(msg + ": " + err.Error())
	}
	return errors.Wrap(err, msg)
}
