// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finpulse/backend/internal/application/usecase/account"
	"github.com/finpulse/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	InstitutionName  string  `json:"institution_name" binding:"max=255"`
	Name             string  `json:"name" binding:"required,min=1,max=255"`
	Type             string  `json:"type" binding:"required"`
	CurrentBalance   float64 `json:"current_balance"`
	AvailableBalance float64 `json:"available_balance"`
	CurrencyCode     string  `json:"currency_code" binding:"omitempty,len=3"`
}

// UpdateAccountRequest represents the request body for account update.
// Absent fields are left unchanged.
type UpdateAccountRequest struct {
	Name             *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	CurrentBalance   *float64 `json:"current_balance,omitempty"`
	AvailableBalance *float64 `json:"available_balance,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID               string    `json:"id"`
	InstitutionName  string    `json:"institution_name"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	CurrentBalance   float64   `json:"current_balance"`
	AvailableBalance float64   `json:"available_balance"`
	CurrencyCode     string    `json:"currency_code"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance float64           `json:"total_balance"`
	NetWorth     float64           `json:"net_worth"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID.String(),
		InstitutionName:  a.InstitutionName,
		Name:             a.Name,
		Type:             string(a.Type),
		CurrentBalance:   a.CurrentBalance.InexactFloat64(),
		AvailableBalance: a.AvailableBalance.InexactFloat64(),
		CurrencyCode:     a.CurrencyCode,
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ToAccountListResponse converts a ListAccountsOutput to an AccountListResponse DTO.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, 0, len(output.Accounts))
	for _, a := range output.Accounts {
		accounts = append(accounts, ToAccountResponse(a))
	}

	return AccountListResponse{
		Accounts:     accounts,
		TotalBalance: output.TotalBalance.InexactFloat64(),
		NetWorth:     output.NetWorth.InexactFloat64(),
	}
}
