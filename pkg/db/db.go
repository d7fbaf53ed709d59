package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"liyu1981.xyz/energy-meter-service/pkg/common"
)

var ErrNotConnected = errors.New("database client not connected")

type Options struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// DB owns the MongoDB client for the readings collection. It is built in
// main and injected; the connection itself is opened asynchronously and
// its state is observable through the StatusTracker.
type DB struct {
	opts   Options
	status *StatusTracker

	mu       sync.RWMutex
	client   *mongo.Client
	readings *mongo.Collection
}

func New(opts Options) *DB {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	return &DB{opts: opts, status: NewStatusTracker()}
}

func (d *DB) Status() *StatusTracker { return d.status }

// Readings returns the collection handle, or nil while no client exists.
func (d *DB) Readings() *mongo.Collection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.readings
}

// Connect opens the connection in the background. A failure never stops
// the process; it is recorded in the status tracker and the driver keeps
// monitoring, so a backend that comes up later flips the status back to
// Connected through the heartbeat events.
func (d *DB) Connect(ctx context.Context) {
	go d.connect(ctx)
}

func (d *DB) connect(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameStorage,
		zap.String(common.LoggerFieldMeterCategory, common.LoggerCategoryStorageConnect),
	)

	if d.opts.URI == "" {
		err := errors.New("no MongoDB connection string configured")
		d.status.SetFailed(err)
		logger.Error("MongoDB connect failed", zap.Error(err))
		return
	}

	clientOpts := options.Client().
		ApplyURI(d.opts.URI).
		SetConnectTimeout(d.opts.ConnectTimeout).
		SetServerSelectionTimeout(d.opts.ConnectTimeout).
		SetServerMonitor(d.serverMonitor())

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		d.status.SetFailed(err)
		logger.Error("MongoDB connect failed", zap.Error(err))
		return
	}

	d.mu.Lock()
	d.client = client
	d.readings = client.Database(d.opts.Database).Collection(d.opts.Collection)
	d.mu.Unlock()

	pingCtx, cancel := context.WithTimeout(ctx, d.opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		d.status.SetFailed(err)
		logger.Error("MongoDB ping failed", zap.Error(err))
		return
	}

	d.status.SetConnected()
	logger.Info("Connected to MongoDB",
		zap.String("database", d.opts.Database),
		zap.String("collection", d.opts.Collection))

	if err := d.EnsureIndexes(ctx); err != nil {
		logger.Warn("Index creation failed", zap.Error(err))
	}
}

func (d *DB) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(*event.ServerHeartbeatSucceededEvent) {
			d.status.SetConnected()
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			d.status.SetError(e.Failure)
		},
		ServerClosed: func(*event.ServerClosedEvent) {
			d.status.SetDisconnected()
		},
	}
}

// EnsureIndexes creates the query indexes on the readings collection:
// timestamp descending, and (deviceId, timestamp descending).
func (d *DB) EnsureIndexes(ctx context.Context) error {
	coll := d.Readings()
	if coll == nil {
		return ErrNotConnected
	}
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "deviceId", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}

func (d *DB) Disconnect(ctx context.Context) error {
	d.mu.RLock()
	client := d.client
	d.mu.RUnlock()
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
