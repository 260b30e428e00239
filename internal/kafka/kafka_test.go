package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"paygate/internal/config"
	"paygate/internal/domain"
	"paygate/tests"

	mock_kafka "paygate/internal/kafka/mocks"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/golang/mock/gomock"

	"github.com/stretchr/testify/assert"
)

func SetupTest(t *testing.T) (*KafkaConsumer, *mock_kafka.MockPromotionDB, *mock_kafka.MockConsumer, *mock_kafka.MockPartitionConsumer, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockDB := mock_kafka.NewMockPromotionDB(ctrl)
	mockConsumer := mock_kafka.NewMockConsumer(ctrl)
	mockPartitionConsumer := mock_kafka.NewMockPartitionConsumer(ctrl)

	cfg := config.Config{
		Kafka: config.KafkaConfig{
			Topic:          "test-topic",
			MaxRetries:     3,
			InitialBackoff: 10 * time.Millisecond,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	kafkaConsumer, err := NewKafkaConsumer(context.Background(), cfg, logger, &sarama.Config{}, mockConsumer, mockDB)
	assert.NoError(t, err)

	return kafkaConsumer, mockDB, mockConsumer, mockPartitionConsumer, ctrl
}

func upsertEvent(promo domain.Promotion) domain.PromotionEvent {
	return domain.PromotionEvent{
		Type:      domain.PromotionUpserted,
		Code:      promo.Code,
		Promotion: promo,
	}
}

func TestKafkaConsumer_Consume_Upsert(t *testing.T) {
	kafkaConsumer, mockDB, mockConsumer, mockPartitionConsumer, ctrl := SetupTest(t)
	defer ctrl.Finish()

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(mockPartitionConsumer, nil)

	messages := make(chan *sarama.ConsumerMessage, 1)

	mockPartitionConsumer.EXPECT().Messages().Return((<-chan *sarama.ConsumerMessage)(messages)).AnyTimes()
	mockPartitionConsumer.EXPECT().Errors().Return(nil).AnyTimes()
	mockPartitionConsumer.EXPECT().Close().Return(nil)

	event := upsertEvent(tests.PromoPercent)
	eventBytes, _ := json.Marshal(event)

	if err := kafkaConsumer.validateEvent(event); err != nil {
		t.Logf("Validation failed")
	}
	messages <- &sarama.ConsumerMessage{Value: eventBytes}
	close(messages)

	mockDB.EXPECT().UpsertPromotion(gomock.Any(), tests.PromoPercent).Return(nil)

	err := kafkaConsumer.Consume(context.Background())

	assert.NoError(t, err)
}

func TestKafkaConsumer_Consume_Deactivate(t *testing.T) {
	kafkaConsumer, mockDB, mockConsumer, mockPartitionConsumer, ctrl := SetupTest(t)
	defer ctrl.Finish()

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(mockPartitionConsumer, nil)

	messages := make(chan *sarama.ConsumerMessage, 1)
	mockPartitionConsumer.EXPECT().Messages().Return((<-chan *sarama.ConsumerMessage)(messages)).AnyTimes()
	mockPartitionConsumer.EXPECT().Errors().Return(nil).AnyTimes()
	mockPartitionConsumer.EXPECT().Close().Return(nil)

	event := domain.PromotionEvent{
		Type: domain.PromotionDeactivated,
		Code: "SUMMER50",
	}
	eventBytes, _ := json.Marshal(event)
	messages <- &sarama.ConsumerMessage{Value: eventBytes}
	close(messages)

	mockDB.EXPECT().DeactivatePromotion(gomock.Any(), "SUMMER50").Return(nil)

	err := kafkaConsumer.Consume(context.Background())

	assert.NoError(t, err)
}

func TestKafkaConsumer_Consume_InvalidEventSkipped(t *testing.T) {
	kafkaConsumer, _, mockConsumer, mockPartitionConsumer, ctrl := SetupTest(t)
	defer ctrl.Finish()

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(mockPartitionConsumer, nil)

	messages := make(chan *sarama.ConsumerMessage, 1)
	mockPartitionConsumer.EXPECT().Messages().Return((<-chan *sarama.ConsumerMessage)(messages)).AnyTimes()
	mockPartitionConsumer.EXPECT().Errors().Return(nil).AnyTimes()
	mockPartitionConsumer.EXPECT().Close().Return(nil)

	// unknown event type never reaches the store
	messages <- &sarama.ConsumerMessage{Value: []byte(`{"type":"promotion.exploded","code":"SUMMER50"}`)}
	close(messages)

	err := kafkaConsumer.Consume(context.Background())

	assert.NoError(t, err)
}

func TestKafkaConsumer_Consume_PartitionError(t *testing.T) {
	kafkaConsumer, _, mockConsumer, _, ctrl := SetupTest(t)
	defer ctrl.Finish()

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	expectedErr := errors.New("test-partition-error")
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(nil, expectedErr)

	err := kafkaConsumer.Consume(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expectedErr.Error())
}

func TestKafkaConsumer_Consume_ProcessingError(t *testing.T) {
	kafkaConsumer, mockDB, mockConsumer, mockPartitionConsumer, ctrl := SetupTest(t)
	defer ctrl.Finish()

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(mockPartitionConsumer, nil)

	messages := make(chan *sarama.ConsumerMessage, 1)
	mockPartitionConsumer.EXPECT().Messages().Return((<-chan *sarama.ConsumerMessage)(messages)).AnyTimes()
	mockPartitionConsumer.EXPECT().Errors().Return(nil).AnyTimes()
	mockPartitionConsumer.EXPECT().Close().Return(nil)

	event := upsertEvent(tests.PromoPercent)
	eventBytes, _ := json.Marshal(event)
	messages <- &sarama.ConsumerMessage{Value: eventBytes}
	close(messages)

	expectedErr := errors.New("test-db-error")

	mockDB.EXPECT().UpsertPromotion(gomock.Any(), tests.PromoPercent).Return(expectedErr).Times(kafkaConsumer.cfg.Kafka.MaxRetries + 1)

	err := kafkaConsumer.Consume(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expectedErr.Error())
}

func TestKafkaConsumer_Close_Success(t *testing.T) {
	kafkaConsumer, _, mockConsumer, _, ctrl := SetupTest(t)
	defer ctrl.Finish()

	mockConsumer.EXPECT().Close().Return(nil)

	err := kafkaConsumer.Close()
	assert.NoError(t, err)
}

func TestKafkaConsumer_Close_Error(t *testing.T) {
	kafkaConsumer, _, mockConsumer, _, ctrl := SetupTest(t)
	defer ctrl.Finish()

	expectedErr := errors.New("test-close-error")
	mockConsumer.EXPECT().Close().Return(expectedErr)

	err := kafkaConsumer.Close()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expectedErr.Error())
}

func TestKafkaConsumer_GetError_NoError(t *testing.T) {
	kafkaConsumer, _, _, _, ctrl := SetupTest(t)
	defer ctrl.Finish()

	err := kafkaConsumer.GetError()
	assert.NoError(t, err)
}

func TestKafkaConsumer_GetError_Error(t *testing.T) {
	kafkaConsumer, _, _, _, ctrl := SetupTest(t)
	defer ctrl.Finish()

	expectedErr := errors.New("test-error")
	kafkaConsumer.errChan <- expectedErr

	err := kafkaConsumer.GetError()
	assert.Error(t, err)
	assert.Equal(t, expectedErr, err)
}

func TestKafkaConsumer_Consume_ContextCancellation(t *testing.T) {
	kafkaConsumer, _, mockConsumer, mockPartitionConsumer, ctrl := SetupTest(t)
	defer ctrl.Finish()

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(mockPartitionConsumer, nil)

	messages := make(chan *sarama.ConsumerMessage)
	mockPartitionConsumer.EXPECT().Messages().Return((<-chan *sarama.ConsumerMessage)(messages)).AnyTimes()
	mockPartitionConsumer.EXPECT().Errors().Return(nil).AnyTimes()
	mockPartitionConsumer.EXPECT().Close().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- kafkaConsumer.Consume(ctx)
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Consume with canceled context")
	}
}

func TestKafkaConsumer_Consume_UnmarshalError_Critical(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_kafka.NewMockPromotionDB(ctrl)
	mockConsumer := mock_kafka.NewMockConsumer(ctrl)
	mockPartitionConsumer := mock_kafka.NewMockPartitionConsumer(ctrl)

	cfg := config.Config{
		Kafka: config.KafkaConfig{
			Topic:                         "test-topic",
			MaxRetries:                    3,
			InitialBackoff:                10 * time.Millisecond,
			TreatUnmarshalErrorAsCritical: true,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	kafkaConsumer, err := NewKafkaConsumer(context.Background(), cfg, logger, &sarama.Config{}, mockConsumer, mockDB)
	assert.NoError(t, err)

	partitions := []int32{0}
	mockConsumer.EXPECT().Partitions(kafkaConsumer.topic).Return(partitions, nil)
	mockConsumer.EXPECT().ConsumePartition(kafkaConsumer.topic, int32(0), sarama.OffsetNewest).Return(mockPartitionConsumer, nil)

	messages := make(chan *sarama.ConsumerMessage, 1)
	mockPartitionConsumer.EXPECT().Messages().Return(messages).AnyTimes()
	mockPartitionConsumer.EXPECT().Errors().Return(nil).AnyTimes()
	mockPartitionConsumer.EXPECT().Close().Return(nil)

	messages <- &sarama.ConsumerMessage{Value: []byte("this is not json")}
	close(messages)

	err = kafkaConsumer.Consume(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal event")
}
