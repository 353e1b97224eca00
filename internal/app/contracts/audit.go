package contracts

import (
	"context"
	"emr-service/internal/app/models"
)

// AuditLogRepository appends compliance entries. Callers treat failures as
// collaborator failures: logged, never propagated into the primary flow.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *models.AuditLog) error
}
