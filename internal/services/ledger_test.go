package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxn() *models.TransactionDB {
	return &models.TransactionDB{
		TransactionID: uuid.New(),
		CardID:        uuid.New(),
		Operation:     models.OperationWithdrawal,
		Amount:        decimal.NewFromInt(280),
		Currency:      models.CurrencySGD,
		CreatedAt:     time.Unix(1700000000, 0),
	}
}

func TestLedger_Record(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTransactionWriter(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)
	txn := newTxn()

	writer.EXPECT().Save(ctx, txn).Return(nil)
	kw.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, txn.CardID.String(), string(msgs[0].Key))

		var event models.TransactionEvent
		require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
		assert.Equal(t, models.TransactionEvent{
			TransactionID: txn.TransactionID.String(),
			Timestamp:     1700000000,
			Amount:        280,
			Currency:      "SGD",
			CardID:        txn.CardID.String(),
			Operation:     "withdrawal",
		}, event)
		return nil
	})

	assert.NoError(t, services.NewLedger(writer, kw).Record(ctx, txn))
}

func TestLedger_Record_PublishFailureIsNotAnError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTransactionWriter(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)

	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	kw.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

	assert.NoError(t, services.NewLedger(writer, kw).Record(ctx, newTxn()))
}

func TestLedger_Record_SaveFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTransactionWriter(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)

	dbErr := errors.New("db error")
	writer.EXPECT().Save(ctx, gomock.Any()).Return(dbErr)

	assert.ErrorIs(t, services.NewLedger(writer, kw).Record(ctx, newTxn()), dbErr)
}

func TestLedger_Record_WithoutKafka(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTransactionWriter(ctrl)
	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	assert.NoError(t, services.NewLedger(writer, nil).Record(ctx, newTxn()))
}
