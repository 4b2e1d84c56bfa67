package repository

import (
	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/model"
)

// Mapper converts between a domain record and its database model
type Mapper[E any, M any] struct {
	ToModel  func(E) *M
	ToEntity func(*M) E
}

// optionalText stores an empty string as NULL
func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// TransactionMapper maps transactions and their loaded owner
var TransactionMapper = Mapper[*entity.Transaction, model.Transaction]{
	ToModel: func(t *entity.Transaction) *model.Transaction {
		return &model.Transaction{
			ID:              t.ID,
			TransactionType: int(t.Type),
			Amount:          t.Amount,
			Currency:        optionalText(t.Currency),
			Account:         t.Account,
			Project:         optionalText(t.Project),
			Category:        optionalText(t.Category),
			Subcategory:     t.Subcategory,
			Name:            optionalText(t.Name),
			Store:           optionalText(t.Store),
			Note:            optionalText(t.Note),
			Tags:            optionalText(t.Tags),
			Date:            optionalText(t.Date),
			Time:            optionalText(t.Time),
			Fee:             t.Fee,
			FeeName:         optionalText(t.FeeName),
			Bonus:           t.Bonus,
			BonusName:       optionalText(t.BonusName),
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
			IsActive:        t.IsActive,
			UserID:          t.UserID,
		}
	},
	ToEntity: func(m *model.Transaction) *entity.Transaction {
		t := &entity.Transaction{
			ID:          m.ID,
			Type:        entity.TransactionType(m.TransactionType),
			Amount:      m.Amount,
			Currency:    textOf(m.Currency),
			Account:     m.Account,
			Project:     textOf(m.Project),
			Category:    textOf(m.Category),
			Subcategory: m.Subcategory,
			Name:        textOf(m.Name),
			Store:       textOf(m.Store),
			Note:        textOf(m.Note),
			Tags:        textOf(m.Tags),
			Date:        textOf(m.Date),
			Time:        textOf(m.Time),
			Fee:         m.Fee,
			FeeName:     textOf(m.FeeName),
			Bonus:       m.Bonus,
			BonusName:   textOf(m.BonusName),
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
			IsActive:    m.IsActive,
			UserID:      m.UserID,
		}
		if m.User != nil {
			t.User = userToEntity(m.User)
		}
		return t
	},
}

// AppURLMapper maps app urls and their loaded transaction
var AppURLMapper = Mapper[*entity.AppURL, model.AppURL]{
	ToModel: func(a *entity.AppURL) *model.AppURL {
		return &model.AppURL{
			ID:            a.ID,
			URL:           a.URL,
			IsFinished:    a.IsFinished,
			TransactionID: a.TransactionID,
			CreatedAt:     a.CreatedAt,
			UpdatedAt:     a.UpdatedAt,
		}
	},
	ToEntity: func(m *model.AppURL) *entity.AppURL {
		a := &entity.AppURL{
			ID:            m.ID,
			URL:           m.URL,
			IsFinished:    m.IsFinished,
			TransactionID: m.TransactionID,
			CreatedAt:     m.CreatedAt,
			UpdatedAt:     m.UpdatedAt,
		}
		if m.Transaction != nil {
			a.Transaction = TransactionMapper.ToEntity(m.Transaction)
		}
		return a
	},
}

// BalanceMapper maps balance adjustments
var BalanceMapper = Mapper[*entity.Balance, model.Balance]{
	ToModel: func(b *entity.Balance) *model.Balance {
		return &model.Balance{
			ID:        b.ID,
			Account:   b.Account,
			Amount:    b.Amount,
			Date:      optionalText(b.Date),
			Time:      optionalText(b.Time),
			Note:      optionalText(b.Note),
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
			IsActive:  b.IsActive,
		}
	},
	ToEntity: func(m *model.Balance) *entity.Balance {
		return &entity.Balance{
			ID:        m.ID,
			Account:   m.Account,
			Amount:    m.Amount,
			Date:      textOf(m.Date),
			Time:      textOf(m.Time),
			Note:      textOf(m.Note),
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			IsActive:  m.IsActive,
		}
	},
}

func userToModel(u *entity.User) *model.User {
	return &model.User{
		ID:          u.ID,
		FederatedID: u.FederatedID,
		Email:       u.Email,
		UserName:    u.UserName,
		Picture:     optionalText(u.Picture),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:          m.ID,
		FederatedID: m.FederatedID,
		Email:       m.Email,
		UserName:    m.UserName,
		Picture:     textOf(m.Picture),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		LastLoginAt: m.LastLoginAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
