package service

import (
	"context"
	"encoding/json"

	"gorestaurant/agg-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting order stats consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("order stats consumer stopped")
				return
			}
			c.Logger.Warn("error reading message", zap.Error(err))
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("error unmarshaling message",
				zap.ByteString("key", message.Key),
				zap.Error(err),
			)
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.OrderPlaced {
		return
	}

	if err := c.Store.RecordOrder(ctx, event); err != nil {
		c.Logger.Error("error recording order", zap.Int("order_id", event.OrderID), zap.Error(err))
		return
	}

	c.Logger.Debug("recorded order",
		zap.Int("order_id", event.OrderID),
		zap.String("name", event.Name),
		zap.Int("quantity", event.Quantity),
	)
}
