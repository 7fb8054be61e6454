package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tutorbook/internal/model"
	"tutorbook/internal/storage"
)

const auditKey = "audit"

// AuditRepository holds the append-only audit trail under one store key.
type AuditRepository struct {
	store storage.Store
}

func NewAuditRepository(store storage.Store) *AuditRepository {
	return &AuditRepository{store: store}
}

// GetAll loads the trail, oldest entry first.
func (r *AuditRepository) GetAll(ctx context.Context) ([]model.AuditEntry, error) {
	raw, err := r.store.Get(ctx, auditKey)
	if err != nil {
		return nil, fmt.Errorf("load audit trail: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var entries []model.AuditEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode audit trail: %w", err)
	}
	return entries, nil
}

// Append adds one entry to the end of the trail.
func (r *AuditRepository) Append(ctx context.Context, entry *model.AuditEntry) error {
	entries, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(append(entries, *entry))
	if err != nil {
		return fmt.Errorf("encode audit trail: %w", err)
	}
	if err := r.store.Set(ctx, auditKey, raw); err != nil {
		return fmt.Errorf("save audit trail: %w", err)
	}
	return nil
}
