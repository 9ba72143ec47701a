// Package mq 提供领域事件发布：Kafka 生产者与仅记录日志的发布者
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/wyfcoding/poseidon/pkg/logger"
)

// Publisher 事件发布者接口
type Publisher interface {
	// Publish 发布事件，topic 不含前缀
	Publish(ctx context.Context, topic string, key string, event any) error
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	Brokers      []string
	TopicPrefix  string
	MaxRetries   int
	RetryBackoff int
}

// KafkaProducer Kafka 生产者
type KafkaProducer struct {
	writer *kafka.Writer
	config KafkaConfig
}

// NewProducer 创建 Kafka 生产者
func NewProducer(cfg KafkaConfig) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Compression:            kafka.Gzip,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            cfg.MaxRetries,
		WriteBackoffMin:        time.Duration(cfg.RetryBackoff) * time.Millisecond,
		WriteBackoffMax:        time.Duration(cfg.RetryBackoff*10) * time.Millisecond,
	}

	logger.Info(context.Background(), "Kafka producer created successfully", "brokers", cfg.Brokers)
	return &KafkaProducer{
		writer: writer,
		config: cfg,
	}
}

// Publish 发送单条 JSON 消息
func (kp *KafkaProducer) Publish(ctx context.Context, topic string, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	fullTopic := Topic(kp.config.TopicPrefix, topic)
	msg := kafka.Message{
		Topic: fullTopic,
		Key:   []byte(key),
		Value: data,
	}

	if err := kp.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error(ctx, "Failed to send Kafka message", "topic", fullTopic, "key", key, "error", err)
		return err
	}

	logger.Debug(ctx, "Kafka message sent", "topic", fullTopic, "key", key)
	return nil
}

// Close 关闭生产者
func (kp *KafkaProducer) Close() error {
	return kp.writer.Close()
}

// LogPublisher 仅记录日志的发布者，未启用 Kafka 时使用
type LogPublisher struct{}

// Publish 记录事件
func (LogPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	logger.Debug(ctx, "Publishing event", "topic", topic, "key", key, "event", event)
	return nil
}

// Topic 拼接 topic 前缀
func Topic(prefix, topic string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return topic
	}
	return prefix + "." + topic
}
