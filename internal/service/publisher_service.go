package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"crm-hub-be/pkg/events"
	pkgNats "crm-hub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ChangeTopic is the in-process topic carrying change events for one table.
func ChangeTopic(table string) string {
	return fmt.Sprintf("changes.%s", table)
}

type IPublisherService interface {
	// PublishChange announces a committed row write on the local bus and
	// mirrors it to NATS for other instances. Delivery is best effort;
	// a lost notification only delays the next snapshot.
	PublishChange(ctx context.Context, change events.ChangeEvent) error
}

type publisherService struct {
	pubSub  *gochannel.GoChannel
	natsPub *pkgNats.Publisher
}

func NewPublisherService(pubSub *gochannel.GoChannel, natsPub *pkgNats.Publisher) IPublisherService {
	return &publisherService{
		pubSub:  pubSub,
		natsPub: natsPub,
	}
}

func (s *publisherService) PublishChange(ctx context.Context, change events.ChangeEvent) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(ChangeTopic(change.Table), msg); err != nil {
		return err
	}

	if s.natsPub != nil {
		if err := s.natsPub.PublishChange(ctx, change); err != nil {
			log.Printf("[WARN] Failed to mirror change to NATS: %v", err)
		}
	}

	return nil
}
