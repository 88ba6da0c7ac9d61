package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	maxPoolSize  = 50
	writeTimeout = 2500 * time.Millisecond
)

type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDB(connectionString string, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wc := writeconcern.Majority()
	wc.WTimeout = writeTimeout

	clientOptions := options.Client().
		ApplyURI(connectionString).
		SetMaxPoolSize(maxPoolSize).
		SetWriteConcern(wc)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoDB{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

// PoolConfig reports the connection pool size and write timeout in effect.
// Surfaced by the health endpoint.
func (m *MongoDB) PoolConfig() (uint64, time.Duration) {
	return maxPoolSize, writeTimeout
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
