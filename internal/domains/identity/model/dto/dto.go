package dto

import (
	"studyspot/internal/domains/identity/model"
	"studyspot/shared"
	"studyspot/shared/constant"
	"studyspot/shared/timezone"

	"github.com/google/uuid"
)

// The three login shapes are separate requests resolved by the caller
// picking an endpoint, instead of inferring intent from which fields
// happen to be present on a single payload.

type RegisterRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

func (r *RegisterRequest) ToModel() model.Account {
	return model.Account{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Email:     shared.NormalizeEmail(r.Email),
		IsDemo:    false,
		CreatedAt: timezone.Now(),
	}
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// QuickLoginRequest carries an already-known account object which is adopted
// as the session directly, without registry validation.
type QuickLoginRequest struct {
	ID     string `json:"id"    validate:"required"`
	Name   string `json:"name"  validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email,max=100"`
	IsDemo bool   `json:"isDemo"`
}

func (r *QuickLoginRequest) ToModel() model.Account {
	return model.Account{
		ID:     r.ID,
		Name:   r.Name,
		Email:  shared.NormalizeEmail(r.Email),
		IsDemo: r.IsDemo,
	}
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsDemo    bool   `json:"isDemo"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (r *AccountResponse) FromModel(account model.Account) {
	r.ID = account.ID
	r.Name = account.Name
	r.Email = account.Email
	r.IsDemo = account.IsDemo

	if !account.CreatedAt.IsZero() {
		r.CreatedAt = timezone.Format(account.CreatedAt, constant.DateFormat)
	}
}

type GetAccountsResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	TotalData int               `json:"total_data"`
}

func (r *GetAccountsResponse) FromModels(models []model.Account) {
	r.TotalData = len(models)

	r.Accounts = make([]AccountResponse, len(models))
	for i, mod := range models {
		r.Accounts[i].FromModel(mod)
	}
}

type SessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Account       *AccountResponse `json:"account,omitempty"`
}
