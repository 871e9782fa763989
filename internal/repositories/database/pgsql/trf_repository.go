package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trf-online/trf-backend/internal/apperrors"
	"github.com/trf-online/trf-backend/internal/core/domain"
	portsrepo "github.com/trf-online/trf-backend/internal/core/ports/repositories"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxTRFRepository struct {
	BaseRepository
}

func newPgxTRFRepository(db *pgxpool.Pool) portsrepo.TRFRepositoryFacade {
	return &PgxTRFRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TRFRepositoryFacade = (*PgxTRFRepository)(nil)

// trfColumns is the column list shared by every SELECT on trfs. Stage
// evidence, accommodation and arrangements live in jsonb columns so the
// aggregate round-trips without a flattening layer.
const trfColumns = `
	trf_id, trf_number, employee_id, department, status,
	admin_dept_verify, parallel_approval, pm_approval, ga_process,
	travel_purpose, start_date, end_date, purpose_remarks, estimated_cost,
	accommodation, travel_arrangements, submitted_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTRF(row pgx.Row) (*domain.TravelRequest, error) {
	var trf domain.TravelRequest
	err := row.Scan(
		&trf.TRFID,
		&trf.TRFNumber,
		&trf.EmployeeID,
		&trf.Department,
		&trf.Status,
		&trf.AdminDeptVerify,
		&trf.ParallelApproval,
		&trf.PMApproval,
		&trf.GAProcess,
		&trf.TravelPurpose,
		&trf.StartDate,
		&trf.EndDate,
		&trf.PurposeRemarks,
		&trf.EstimatedCost,
		&trf.Accommodation,
		&trf.TravelArrangements,
		&trf.SubmittedAt,
		&trf.CreatedAt,
		&trf.CreatedBy,
		&trf.LastUpdatedAt,
		&trf.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &trf, nil
}

func (r *PgxTRFRepository) FindTRFByID(ctx context.Context, trfID string) (*domain.TravelRequest, error) {
	query := `SELECT ` + trfColumns + ` FROM trfs WHERE trf_id = $1;`
	trf, err := scanTRF(r.Pool.QueryRow(ctx, query, trfID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("TRF %s not found", trfID))
		}
		return nil, fmt.Errorf("failed to find TRF by ID %s: %w", trfID, err)
	}
	return trf, nil
}

func (r *PgxTRFRepository) ListTRFs(ctx context.Context, filter portsrepo.TRFFilter) ([]domain.TravelRequest, error) {
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, "department = $"+strconv.Itoa(len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		conditions = append(conditions, "status = ANY($"+strconv.Itoa(len(args))+")")
	}

	query := `SELECT ` + trfColumns + ` FROM trfs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query TRFs: %w", err)
	}
	defer rows.Close()

	trfs := []domain.TravelRequest{}
	for rows.Next() {
		trf, err := scanTRF(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan TRF row: %w", err)
		}
		trfs = append(trfs, *trf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating TRF rows: %w", err)
	}
	return trfs, nil
}

func (r *PgxTRFRepository) SaveTRF(ctx context.Context, trf domain.TravelRequest, entry domain.AuditEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO trfs (` + strings.TrimSpace(trfColumns) + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, query,
		trf.TRFID, trf.TRFNumber, trf.EmployeeID, trf.Department, trf.Status,
		trf.AdminDeptVerify, trf.ParallelApproval, trf.PMApproval, trf.GAProcess,
		trf.TravelPurpose, trf.StartDate, trf.EndDate, trf.PurposeRemarks, trf.EstimatedCost,
		trf.Accommodation, trf.TravelArrangements, trf.SubmittedAt,
		trf.CreatedAt, trf.CreatedBy, trf.LastUpdatedAt, trf.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.NewAppError(409, fmt.Sprintf("TRF number %s already exists", trf.TRFNumber), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert TRF: %w", err)
	}

	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTRFWithAudit writes the mutated aggregate conditional on the status
// the caller read, and appends the audit entry in the same transaction. A
// lost race surfaces as apperrors.ErrConflict so the caller can reload; this
// is what serializes the parallel HoD/HR merge.
func (r *PgxTRFRepository) UpdateTRFWithAudit(ctx context.Context, trf domain.TravelRequest, expectedStatus domain.TRFStatus, entry domain.AuditEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE trfs SET
			status = $1,
			admin_dept_verify = $2,
			parallel_approval = $3,
			pm_approval = $4,
			ga_process = $5,
			submitted_at = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE trf_id = $9 AND status = $10;
	`
	ct, err := tx.Exec(ctx, query,
		trf.Status,
		trf.AdminDeptVerify, trf.ParallelApproval, trf.PMApproval, trf.GAProcess,
		trf.SubmittedAt, trf.LastUpdatedAt, trf.LastUpdatedBy,
		trf.TRFID, expectedStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update TRF %s: %w", trf.TRFID, err)
	}
	if ct.RowsAffected() == 0 {
		// Either the TRF is gone or someone changed the status after our read.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM trfs WHERE trf_id = $1);`, trf.TRFID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check TRF existence for %s: %w", trf.TRFID, err)
		}
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("TRF %s not found", trf.TRFID))
		}
		return apperrors.NewAppError(409, fmt.Sprintf("TRF %s changed since it was read", trf.TRFID), apperrors.ErrConflict)
	}

	if err := insertAuditEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTRFRepository) UpdateTRFContent(ctx context.Context, trf domain.TravelRequest) error {
	query := `
		UPDATE trfs SET
			travel_purpose = $1,
			start_date = $2,
			end_date = $3,
			purpose_remarks = $4,
			estimated_cost = $5,
			accommodation = $6,
			travel_arrangements = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE trf_id = $10;
	`
	ct, err := r.Pool.Exec(ctx, query,
		trf.TravelPurpose, trf.StartDate, trf.EndDate, trf.PurposeRemarks, trf.EstimatedCost,
		trf.Accommodation, trf.TravelArrangements,
		trf.LastUpdatedAt, trf.LastUpdatedBy,
		trf.TRFID,
	)
	if err != nil {
		return fmt.Errorf("failed to update TRF content for %s: %w", trf.TRFID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("TRF %s not found", trf.TRFID))
	}
	return nil
}

// insertAuditEntry appends one trail line inside the caller's transaction.
func insertAuditEntry(ctx context.Context, tx pgx.Tx, entry domain.AuditEntry) error {
	var fromStatus *string
	if entry.FromStatus != "" {
		s := string(entry.FromStatus)
		fromStatus = &s
	}
	query := `
		INSERT INTO trf_audit (entry_id, trf_id, changed_by, changed_by_name, from_status, to_status, remarks, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		entry.EntryID, entry.TRFID, entry.ChangedBy, entry.ChangedByName,
		fromStatus, string(entry.ToStatus), entry.Remarks, entry.ChangedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to append audit entry for TRF %s", entry.TRFID), apperrors.ErrAuditWrite)
	}
	return nil
}
