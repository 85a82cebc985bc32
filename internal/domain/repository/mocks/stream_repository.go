package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/transit-network/internal/domain"
)

type StreamRepository struct {
	mock.Mock
}

func (m *StreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *StreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if v := args.Get(0); v != nil {
		return v.([]domain.StreamMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	return m.Called(ctx, stream, group, messageIDs).Error(0)
}

func (m *StreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}
