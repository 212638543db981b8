//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

const redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"

// KafkaEnv — брокер Redpanda (Kafka API) и базовый префикс топиков теста.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

// StartKafkaTC — одноузловой Redpanda с автосозданием топиков.
func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	ctr, err := redpanda.Run(ctx, redpandaImage,
		tc.WithLifecycleHooks(lifecycleLog("redpanda")),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := ctr.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(ctr)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(ctr) }
	return &KafkaEnv{Container: ctr, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}

// UniqueTopicAndGroup — topic и group с суффиксом по времени, чтобы тесты не пересекались.
func UniqueTopicAndGroup(base string) (topic, group string) {
	suffix := time.Now().UTC().Format("20060102T150405") + "-" + UniqSuffix()
	return base + "-" + suffix, base + "-g-" + suffix
}

// EnsureTopic — создаёт топик из одной партиции и ждёт, пока он появится в метаданных.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(broker), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if topicErr := resp.Errors[topic]; topicErr != nil && !errors.Is(topicErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, topicErr)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if err == nil && len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %q not ready: %v", topic, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}
