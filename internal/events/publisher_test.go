package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/phixelforge/internal/models"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)

	var sent kafka.Message
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			sent = msgs[0]
			return nil
		})

	p := NewPublisher(writer)
	p.Publish(context.Background(), models.EventImageCreated, "img-1", "user-1", map[string]string{"title": "sunset"})

	assert.Equal(t, "img-1", string(sent.Key))

	var event models.Event
	require.NoError(t, json.Unmarshal(sent.Value, &event))
	assert.Equal(t, models.EventImageCreated, event.Type)
	assert.Equal(t, "img-1", event.EntityID)
	assert.Equal(t, "user-1", event.UserID)
	assert.NotEmpty(t, event.EventID)
	assert.NotZero(t, event.Timestamp)
}

func TestPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	p := NewPublisher(writer)
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), models.EventLikeToggled, "img-1", "user-1", nil)
	})
}

func TestPublisher_NilWriter(t *testing.T) {
	p := NewPublisher(nil)
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), models.EventAlbumCreated, "album-1", "user-1", nil)
	})
	assert.NoError(t, p.Close())
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().Close().Return(nil)

	assert.NoError(t, NewPublisher(writer).Close())
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "activity")
	assert.Equal(t, "activity", w.Topic)
	assert.NotNil(t, w.Addr)
}
