// Package di owns construction and lifecycle of the application's shared
// resources: the Mongo client, the optional Redis client, the event bus and
// the feature modules.
package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"campushub/internal/auth"
	"campushub/internal/catering"
	"campushub/internal/catering/adapter/persistence"
	"campushub/internal/catering/usecase"
	"campushub/internal/config"
	"campushub/internal/shared/eventbus"
	"campushub/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Container holds the application's shared resources with proper lifecycle
// management. The Mongo client is opened in Initialize and closed in Close;
// nothing else owns the connection.
type Container struct {
	mu sync.RWMutex

	Config *config.Config
	Logger logger.Logger

	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	Bus         *eventbus.EventBus

	AuthModule     *auth.AuthModule
	CateringModule *catering.CateringModule
}

// NewContainer creates an empty container around the given configuration.
func NewContainer(cfg *config.Config, log logger.Logger) *Container {
	return &Container{
		Config: cfg,
		Logger: log,
	}
}

// Initialize connects to the data stores and builds the modules.
func (c *Container) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.Config.MongoDBURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	c.MongoClient = client
	c.MongoDB = client.Database(c.Config.DatabaseName)

	c.Bus = eventbus.NewEventBus(c.Logger)
	c.subscribeEventLogging()

	if c.Config.JournalEnabled() {
		c.RedisClient = redis.NewClient(&redis.Options{
			Addr:     c.Config.RedisAddr,
			Password: c.Config.RedisPassword,
			DB:       c.Config.RedisDB,
		})
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping Redis: %w", err)
		}
		c.subscribeEventJournal()
	}

	authModule, err := auth.NewAuthModule(c.MongoDB, c.Config, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}
	c.AuthModule = authModule

	cateringModule, err := catering.NewCateringModule(c.MongoDB, c.Config, c.Bus, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create catering module: %w", err)
	}
	c.CateringModule = cateringModule

	return nil
}

// RegisterRoutes mounts both modules on the router.
func (c *Container) RegisterRoutes(router fiber.Router) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	middleware := c.AuthModule.GetMiddleware()
	router.Use(middleware.RequestID())

	c.AuthModule.RegisterRoutes(router)
	c.CateringModule.RegisterRoutes(router, middleware)
}

// HealthCheck pings the data stores.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoClient != nil {
		if err := c.MongoClient.Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}
	return nil
}

// Close releases the container's resources in reverse order of acquisition.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Error("Failed to close Redis client", zap.Error(err))
		}
		c.RedisClient = nil
	}

	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil {
			c.Logger.Error("Failed to disconnect MongoDB client", zap.Error(err))
			return err
		}
		c.MongoClient = nil
		c.MongoDB = nil
	}

	return nil
}

// subscribeEventLogging attaches an audit-log subscriber for every domain
// event type.
func (c *Container) subscribeEventLogging() {
	log := c.Logger.WithComponent("events")
	handler := func(ctx context.Context, event eventbus.Event) error {
		log.Info("Domain event",
			zap.String("eventType", event.Type),
			zap.String("eventId", event.ID),
			zap.Any("data", event.Data))
		return nil
	}
	for _, eventType := range domainEventTypes() {
		c.Bus.Subscribe(eventType, handler)
	}
}

// subscribeEventJournal attaches the Redis Streams journal for every domain
// event type.
func (c *Container) subscribeEventJournal() {
	journal := persistence.NewRedisEventJournal(c.RedisClient, c.Logger)
	for _, eventType := range domainEventTypes() {
		c.Bus.Subscribe(eventType, journal.Record)
	}
}

func domainEventTypes() []string {
	return []string{
		usecase.EventMealPublished,
		usecase.EventRequestDelivered,
		usecase.EventPaymentRecorded,
	}
}
