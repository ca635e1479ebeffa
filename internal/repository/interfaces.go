package repository

import (
	"context"

	"github.com/alexanderramin/tally/internal/domain"
)

// RecordStore persists the single record set wholesale.
type RecordStore interface {
	Load(ctx context.Context) (*domain.RecordSet, error)
	Save(ctx context.Context, rs *domain.RecordSet) error
}
