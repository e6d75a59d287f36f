package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/segmentio/kafka-go"
)

// TransactionWriter persists transaction history rows.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Ledger records completed transactions and announces them on Kafka.
type Ledger struct {
	writer      TransactionWriter
	kafkaWriter KafkaWriter
}

// NewLedger creates a new Ledger. kafkaWriter may be nil.
func NewLedger(writer TransactionWriter, kafkaWriter KafkaWriter) *Ledger {
	return &Ledger{writer: writer, kafkaWriter: kafkaWriter}
}

// Record stores txn and publishes its event. Only the store can fail the call.
func (l *Ledger) Record(ctx context.Context, txn *models.TransactionDB) error {
	if err := l.writer.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction",
			"transaction_id", txn.TransactionID, "operation", txn.Operation, "error", err)
		return err
	}

	amount, _ := txn.Amount.Float64()
	l.publishTransaction(ctx, models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		Timestamp:     txn.CreatedAt.Unix(),
		Amount:        amount,
		Currency:      txn.Currency,
		CardID:        txn.CardID.String(),
		Operation:     txn.Operation,
	})
	return nil
}

// publishTransaction publishes a transaction to Kafka.
func (l *Ledger) publishTransaction(ctx context.Context, event models.TransactionEvent) {
	if l.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.CardID),
		Value: data,
	}

	if err := l.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", event.TransactionID, "amount", event.Amount)
	}
}
