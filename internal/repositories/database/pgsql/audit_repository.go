package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(db *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, trfID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT entry_id, trf_id, changed_by, changed_by_name, from_status, to_status, remarks, changed_at
		FROM trf_audit
		WHERE trf_id = $1
		ORDER BY changed_at ASC, entry_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, trfID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries for TRF %s: %w", trfID, err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var entry domain.AuditEntry
		var fromStatus *string
		err := rows.Scan(
			&entry.EntryID,
			&entry.TRFID,
			&entry.ChangedBy,
			&entry.ChangedByName,
			&fromStatus,
			&entry.ToStatus,
			&entry.Remarks,
			&entry.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if fromStatus != nil {
			entry.FromStatus = domain.TRFStatus(*fromStatus)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating audit rows: %w", err)
	}
	return entries, nil
}
