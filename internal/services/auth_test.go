package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/repositories"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const validCard = "4111111111111111"

func TestAuthService_IssueCard(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	tests := []struct {
		name       string
		cardNumber string
		pin        string
		opening    decimal.Decimal
		setup      func(writer *services.MockCardWriter, accounts *services.MockAccountStore)
		wantErr    error
	}{
		{
			name:       "successful issue",
			cardNumber: validCard,
			pin:        "123456",
			opening:    decimal.NewFromInt(1000),
			setup: func(writer *services.MockCardWriter, accounts *services.MockAccountStore) {
				writer.EXPECT().Save(ctx, validCard, gomock.Any(), "Alice Tan").
					DoAndReturn(func(_ context.Context, _, pinHash, _ string) (uuid.UUID, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(pinHash), []byte("123456")))
						return cardID, nil
					})
				accounts.EXPECT().Credit(ctx, cardID, decEq("1000")).Return(decimal.NewFromInt(1000), nil)
			},
		},
		{
			name:       "luhn failure",
			cardNumber: "4111111111111112",
			pin:        "123456",
			wantErr:    services.ErrInvalidCardNumber,
		},
		{
			name:       "short pin",
			cardNumber: validCard,
			pin:        "1234",
			wantErr:    services.ErrInvalidPIN,
		},
		{
			name:       "negative opening balance",
			cardNumber: validCard,
			pin:        "123456",
			opening:    decimal.NewFromInt(-1),
			wantErr:    services.ErrNegativeBalance,
		},
		{
			name:       "duplicate card",
			cardNumber: validCard,
			pin:        "123456",
			setup: func(writer *services.MockCardWriter, accounts *services.MockAccountStore) {
				writer.EXPECT().Save(ctx, validCard, gomock.Any(), "Alice Tan").Return(uuid.Nil, repositories.ErrAlreadyExists)
			},
			wantErr: services.ErrCardAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := services.NewMockCardWriter(ctrl)
			accounts := services.NewMockAccountStore(ctrl)
			if tt.setup != nil {
				tt.setup(writer, accounts)
			}

			svc := services.NewAuthService(services.NewMockCardReader(ctrl), writer, accounts, services.NewMockJWTGenerator(ctrl))
			id, err := svc.IssueCard(ctx, tt.cardNumber, tt.pin, "Alice Tan", tt.opening)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, cardID, id)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	card := &models.CardDB{CardID: cardID, CardNumber: validCard, PinHash: string(hash)}

	tests := []struct {
		name       string
		cardNumber string
		pin        string
		card       *models.CardDB
		readerErr  error
		jwtErr     error
		wantToken  string
		wantErr    error
	}{
		{
			name:       "successful login",
			cardNumber: validCard,
			pin:        "123456",
			card:       card,
			wantToken:  "token123",
		},
		{
			name:       "invalid card number never reaches the store",
			cardNumber: "1234567890",
			pin:        "123456",
			wantErr:    services.ErrInvalidCardNumber,
		},
		{
			name:       "unknown card",
			cardNumber: validCard,
			pin:        "123456",
			wantErr:    services.ErrInvalidCredentials,
		},
		{
			name:       "wrong pin",
			cardNumber: validCard,
			pin:        "654321",
			card:       card,
			wantErr:    services.ErrInvalidCredentials,
		},
		{
			name:       "reader error",
			cardNumber: validCard,
			pin:        "123456",
			readerErr:  errors.New("db error"),
			wantErr:    errors.New("db error"),
		},
		{
			name:       "jwt error",
			cardNumber: validCard,
			pin:        "123456",
			card:       card,
			jwtErr:     errors.New("jwt error"),
			wantErr:    errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockCardReader(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)

			if !errors.Is(tt.wantErr, services.ErrInvalidCardNumber) {
				reader.EXPECT().GetByNumber(ctx, tt.cardNumber).Return(tt.card, tt.readerErr)
			}
			if tt.card != nil && tt.pin == "123456" {
				jwt.EXPECT().Generate(ctx, cardID).Return(tt.wantToken, tt.jwtErr)
			}

			svc := services.NewAuthService(reader, services.NewMockCardWriter(ctrl), services.NewMockAccountStore(ctrl), jwt)
			token, err := svc.Login(ctx, tt.cardNumber, tt.pin)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
