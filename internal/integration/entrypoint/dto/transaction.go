// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. The amount sign determines classification: positive is
// income, negative is an expense.
type CreateTransactionRequest struct {
	AccountID          string  `json:"account_id" binding:"required,uuid"`
	Amount             float64 `json:"amount" binding:"required"`
	Name               string  `json:"name" binding:"required,min=1,max=255"`
	MerchantName       string  `json:"merchant_name" binding:"max=255"`
	Category           string  `json:"category"`
	Date               string  `json:"date" binding:"required"`
	IsPending          bool    `json:"is_pending"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency string  `json:"recurring_frequency" binding:"omitempty,oneof=weekly monthly"`
}

// ListTransactionsQuery represents the query parameters for listing
// transactions.
type ListTransactionsQuery struct {
	AccountID string `form:"account_id" binding:"omitempty,uuid"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                 string    `json:"id"`
	AccountID          string    `json:"account_id"`
	Amount             float64   `json:"amount"`
	CurrencyCode       string    `json:"currency_code"`
	Name               string    `json:"name"`
	MerchantName       string    `json:"merchant_name,omitempty"`
	Category           string    `json:"category"`
	Date               string    `json:"date"`
	IsPending          bool      `json:"is_pending"`
	IsRecurring        bool      `json:"is_recurring"`
	RecurringFrequency string    `json:"recurring_frequency,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalCount   int64                 `json:"total_count"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 t.ID.String(),
		AccountID:          t.AccountID.String(),
		Amount:             t.Amount.InexactFloat64(),
		CurrencyCode:       t.CurrencyCode,
		Name:               t.Name,
		MerchantName:       t.MerchantName,
		Category:           string(t.Category),
		Date:               t.Date.Format("2006-01-02"),
		IsPending:          t.IsPending,
		IsRecurring:        t.IsRecurring,
		RecurringFrequency: string(t.RecurringFrequency),
		CreatedAt:          t.CreatedAt,
	}
}
