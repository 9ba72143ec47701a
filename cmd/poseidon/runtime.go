package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wyfcoding/poseidon/pkg/cache"
	"github.com/wyfcoding/poseidon/pkg/config"
	"github.com/wyfcoding/poseidon/pkg/db"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/mq"
	"github.com/wyfcoding/poseidon/pkg/retry"
)

// runtime 进程级资源：配置、日志、数据库、可选的 Redis 与 Kafka
type runtime struct {
	cfg       *config.Config
	db        *db.DB
	redis     *cache.RedisCache
	producer  *mq.KafkaProducer
	publisher mq.Publisher
	metrics   *metrics.Metrics
}

// startupBackoff 启动时等待数据库与 Redis 就绪
func startupBackoff(attempts int) retry.Backoff {
	return retry.Backoff{Attempts: attempts, Initial: 500 * time.Millisecond, Max: 5 * time.Second}
}

func setup(ctx context.Context, withBrokers bool) (*runtime, error) {
	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	backoff := startupBackoff(cfg.Database.ConnectAttempts)

	var database *db.DB
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		database, err = db.Init(db.Config{
			Driver:             cfg.Database.Driver,
			DSN:                cfg.Database.DSN,
			MaxOpenConns:       cfg.Database.MaxOpenConns,
			MaxIdleConns:       cfg.Database.MaxIdleConns,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			LogEnabled:         cfg.Database.LogEnabled,
			SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
		})
		if err != nil {
			logger.Warn(ctx, "database not ready", "driver", cfg.Database.Driver, "error", err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:       cfg,
		db:        database,
		publisher: mq.LogPublisher{},
		metrics:   metrics.New(cfg.ServiceName),
	}
	if !withBrokers {
		return rt, nil
	}

	if cfg.Redis.Enabled {
		var rc *cache.RedisCache
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			var err error
			rc, err = cache.New(cache.Config{
				Host:         cfg.Redis.Host,
				Port:         cfg.Redis.Port,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.DB,
				MaxPoolSize:  cfg.Redis.MaxPoolSize,
				ReadTimeout:  cfg.Redis.ReadTimeout,
				WriteTimeout: cfg.Redis.WriteTimeout,
			})
			if err != nil {
				logger.Warn(ctx, "redis not ready", "addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port), "error", err)
			}
			return err
		})
		if err != nil {
			rt.close()
			return nil, err
		}
		rt.redis = rc
	}

	if cfg.Kafka.Enabled {
		rt.producer = mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			TopicPrefix:  cfg.Kafka.TopicPrefix,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		rt.publisher = rt.producer
	}
	return rt, nil
}

func (rt *runtime) redisClient() *redis.Client {
	if rt.redis == nil {
		return nil
	}
	return rt.redis.GetClient()
}

func (rt *runtime) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if rt.producer != nil {
		errs = append(errs, rt.producer.Close())
	}
	if rt.redis != nil {
		errs = append(errs, rt.redis.Close())
	}
	if rt.db != nil {
		errs = append(errs, rt.db.Close())
	}
	if err := errors.Join(errs...); err != nil {
		logger.Error(ctx, "failed to release resources", "error", err)
	}
}
