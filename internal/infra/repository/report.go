package repository

import (
	"context"

	"coolslate/internal/infra"
	"coolslate/internal/infra/db"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReportRepository struct{}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (r *ReportRepository) Create(ctx context.Context, tx db.DBTX, rec *shared.CompletionReport) (uuid.UUID, error) {
	const q = `
		INSERT INTO completion_reports (id, order_id, file_path, file_size)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id uuid.UUID
	err := tx.QueryRow(ctx, q, rec.ID, rec.OrderID, rec.FilePath, rec.FileSize).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create completion report", err)
	}
	return id, nil
}

func (r *ReportRepository) FindByOrder(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (*shared.CompletionReport, error) {
	var rec shared.CompletionReport
	err := tx.QueryRow(ctx, `
		SELECT id, order_id, file_path, file_size, uploaded_at
		FROM completion_reports WHERE order_id = $1`,
		orderID,
	).Scan(&rec.ID, &rec.OrderID, &rec.FilePath, &rec.FileSize, &rec.UploadedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find completion report", err)
	}
	return &rec, nil
}
