package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/logger"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/models"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidCardNumber  = errors.New("invalid card number")
	ErrInvalidPIN         = errors.New("pin must be 6 digits")
	ErrInvalidCredentials = errors.New("invalid card number or pin")
	ErrCardAlreadyExists  = errors.New("card already exists")
	ErrNegativeBalance    = errors.New("opening balance must not be negative")
)

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// CardReader defines read-only operations for cards.
type CardReader interface {
	GetByNumber(ctx context.Context, cardNumber string) (*models.CardDB, error)
}

// CardWriter defines write operations for cards.
type CardWriter interface {
	Save(ctx context.Context, cardNumber, pinHash, holderName string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, cardID uuid.UUID) (string, error)
}

// AuthService handles card issuance and login.
type AuthService struct {
	reader   CardReader
	writer   CardWriter
	accounts AccountStore
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader CardReader, writer CardWriter, accounts AccountStore, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		accounts: accounts,
		jwt:      jwt,
	}
}

func checkCard(cardNumber, pin string) error {
	if cardNumber == "" || goluhn.Validate(cardNumber) != nil {
		return ErrInvalidCardNumber
	}
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPIN
	}
	return nil
}

// IssueCard stores a new card and opens its account with openingBalance.
func (svc *AuthService) IssueCard(ctx context.Context, cardNumber, pin, holderName string, openingBalance decimal.Decimal) (uuid.UUID, error) {
	if err := checkCard(cardNumber, pin); err != nil {
		return uuid.Nil, err
	}
	if openingBalance.IsNegative() {
		return uuid.Nil, ErrNegativeBalance
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash pin", "err", err)
		return uuid.Nil, err
	}

	cardID, err := svc.writer.Save(ctx, cardNumber, string(pinHash), holderName)
	if errors.Is(err, repositories.ErrAlreadyExists) {
		return uuid.Nil, ErrCardAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save card", "err", err)
		return uuid.Nil, err
	}

	if _, err := svc.accounts.Credit(ctx, cardID, openingBalance.Round(2)); err != nil {
		logger.Log.Errorw("failed to open account", "cardID", cardID, "err", err)
		return uuid.Nil, fmt.Errorf("open account: %w", err)
	}

	return cardID, nil
}

// Login checks the card number and PIN and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, cardNumber, pin string) (string, error) {
	if err := checkCard(cardNumber, pin); err != nil {
		return "", err
	}

	card, err := svc.reader.GetByNumber(ctx, cardNumber)
	if err != nil {
		logger.Log.Errorw("failed to get card", "err", err)
		return "", err
	}
	if card == nil {
		logger.Log.Infow("card does not exist")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(card.PinHash), []byte(pin)); err != nil {
		logger.Log.Infow("invalid pin", "cardID", card.CardID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, card.CardID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
