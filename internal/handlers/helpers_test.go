package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-atm-kiosk/internal/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTokener returns a tokener that accepts any request as cardID.
func newTokener(ctrl *gomock.Controller, cardID uuid.UUID) *MockTokener {
	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		AnyTimes().
		Return("valid-token", nil)
	tokener.EXPECT().
		GetClaims(gomock.Any(), "valid-token").
		AnyTimes().
		Return(&jwt.Claims{CardID: cardID}, nil)
	return tokener
}

// body encodes v as JSON; strings are sent as they are.
func body(v any) io.Reader {
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func errorMessage(t *testing.T, b *bytes.Buffer) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(b.Bytes(), &resp))
	return resp.Error
}

type decimalEq struct{ want decimal.Decimal }

func decEq(s string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(s)}
}

func (m decimalEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}
