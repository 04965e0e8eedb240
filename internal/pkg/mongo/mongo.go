// Package mongo resolves the document store client on first use.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mx-space/blog-summarizer/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ErrDisabled is returned when no MongoDB URI is configured.
var ErrDisabled = errors.New("document store is not configured")

type connectFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// Lazy holds at most one connected client. Concurrent first callers share a
// single connect attempt; a failed attempt is not remembered.
type Lazy struct {
	uri        string
	database   string
	collection string
	timeout    time.Duration
	logger     *zap.Logger
	connect    connectFunc

	mu     sync.Mutex
	client *mongo.Client
}

func NewLazy(cfg config.MongoRuntimeConfig, logger *zap.Logger) *Lazy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lazy{
		uri:        cfg.URI,
		database:   cfg.Database,
		collection: cfg.Collection,
		timeout:    cfg.ConnectTimeout(),
		logger:     logger,
		connect:    dial,
	}
}

func dial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func (l *Lazy) Enabled() bool { return l != nil && l.uri != "" }

// Client returns the shared client, connecting when none is held.
func (l *Lazy) Client(ctx context.Context) (*mongo.Client, error) {
	if !l.Enabled() {
		return nil, ErrDisabled
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client != nil {
		return l.client, nil
	}

	connectCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	client, err := l.connect(connectCtx, l.uri)
	if err != nil {
		l.logger.Warn("mongo connect failed", zap.Error(err))
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	l.logger.Info("mongo connected", zap.String("database", l.database))
	l.client = client
	return client, nil
}

// Collection returns the full text collection handle.
func (l *Lazy) Collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := l.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(l.database).Collection(l.collection), nil
}

// Connected reports whether a client is currently held.
func (l *Lazy) Connected() bool {
	if !l.Enabled() {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.client != nil
}

// Ping checks the held client without forcing a connection.
func (l *Lazy) Ping(ctx context.Context) error {
	if !l.Enabled() {
		return ErrDisabled
	}
	l.mu.Lock()
	client := l.client
	l.mu.Unlock()
	if client == nil {
		return nil
	}
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the held client, if any.
func (l *Lazy) Disconnect(ctx context.Context) error {
	if !l.Enabled() {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client == nil {
		return nil
	}
	err := l.client.Disconnect(ctx)
	l.client = nil
	return err
}
