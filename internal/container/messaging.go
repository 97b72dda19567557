package container

import (
	"github.com/samber/do"
	"github.com/serroba/link-shortener/internal/audit"
	"github.com/serroba/link-shortener/internal/messaging"
	"go.uber.org/zap"
)

// PublisherGroupPackage provides the link created publish function. Without
// Redis events are dropped.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		publisher, err := messaging.NewRedisPublisher(client.Client, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[audit.LinkCreatedEvent], error) {
		if !do.MustInvoke[*Options](i).RedisEnabled() {
			return messaging.NoopPublish[audit.LinkCreatedEvent](), nil
		}

		group, err := do.Invoke[*messaging.PublisherGroup](i)
		if err != nil {
			return nil, err
		}

		return messaging.NewPublishFunc[audit.LinkCreatedEvent](group.Publisher(), audit.TopicLinkCreated), nil
	})
}

// ConsumerGroupPackage provides the audit consumer group reading link events.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		subscriber, err := messaging.NewRedisSubscriber(client.Client, opts.ConsumerGroup, logger)
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer[audit.LinkCreatedEvent](subscriber, audit.TopicLinkCreated, audit.NewLog(logger).LinkCreated, logger))

		return group, nil
	})
}
