package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Session - игровая сессия, открытая после согласия с условиями
type Session struct {
	ID          string
	AgreedAt    time.Time
	ClosedAt    *time.Time
	Rounds      int64
	TotalBet    decimal.Decimal
	TotalProfit decimal.Decimal
	LastActive  time.Time
}

// ConsentClaims - claims токена согласия, Subject = ID сессии
type ConsentClaims struct {
	jwt.RegisteredClaims
}

// AgreementData - ответ на принятие условий
type AgreementData struct {
	SessionID   string
	AccessToken string
}
