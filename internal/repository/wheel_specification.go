package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/wheelspec/internal/model"
	"github.com/jackc/pgx/v5/pgtype"
)

const wheelSpecificationsTable = "wheel_specifications"

// WheelSpecificationRepository persists and lists wheel specification forms.
type WheelSpecificationRepository struct {
	db DBTX
}

func NewWheelSpecificationRepository(db DBTX) *WheelSpecificationRepository {
	return &WheelSpecificationRepository{db: db}
}

// recordColumns lists the form columns in insert/select order.
func recordColumns() []string {
	cols := []string{model.ColumnFormNumber, model.ColumnSubmittedBy, model.ColumnSubmittedDate}
	return append(cols, model.DimensionColumns()...)
}

func recordArgs(spec *model.WheelSpecification) []any {
	args := []any{
		spec.FormNumber,
		spec.SubmittedBy,
		pgtype.Date{Time: spec.SubmittedDate, Valid: true},
	}
	for _, f := range model.DimensionFields {
		args = append(args, *f.Value(&spec.Dimensions))
	}
	return args
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ph, ", ")
}

// Insert stores spec as a new row. The identity and creation timestamp are
// assigned by the database.
func (r *WheelSpecificationRepository) Insert(ctx context.Context, spec *model.WheelSpecification) (*model.StoredWheelSpecification, error) {
	cols := recordColumns()
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s, %s",
		wheelSpecificationsTable,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
		model.ColumnID,
		model.ColumnCreatedAt,
	)

	stored := &model.StoredWheelSpecification{
		WheelSpecification: *spec,
		Status:             model.StatusSaved,
	}

	err := r.db.QueryRow(ctx, stmt, recordArgs(spec)...).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert wheel specification: %w", err)
	}

	return stored, nil
}

// List returns every stored form matching filter, ordered by identity.
func (r *WheelSpecificationRepository) List(ctx context.Context, filter model.WheelSpecificationFilter) ([]model.StoredWheelSpecification, error) {
	cols := append([]string{model.ColumnID}, recordColumns()...)
	cols = append(cols, model.ColumnCreatedAt)

	var (
		conditions []string
		args       []any
	)
	where := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.FormNumber != nil {
		where(model.ColumnFormNumber, *filter.FormNumber)
	}
	if filter.SubmittedBy != nil {
		where(model.ColumnSubmittedBy, *filter.SubmittedBy)
	}
	if filter.SubmittedDate != nil {
		where(model.ColumnSubmittedDate, pgtype.Date{Time: *filter.SubmittedDate, Valid: true})
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), wheelSpecificationsTable)
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY " + model.ColumnID

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wheel specifications: %w", err)
	}
	defer rows.Close()

	specs := []model.StoredWheelSpecification{}
	for rows.Next() {
		var (
			spec          model.StoredWheelSpecification
			submittedDate time.Time
		)

		dest := []any{&spec.ID, &spec.FormNumber, &spec.SubmittedBy, &submittedDate}
		for _, f := range model.DimensionFields {
			dest = append(dest, f.Value(&spec.Dimensions))
		}
		dest = append(dest, &spec.CreatedAt)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan wheel specification: %w", err)
		}

		spec.SubmittedDate = time.Date(submittedDate.Year(), submittedDate.Month(), submittedDate.Day(), 0, 0, 0, 0, time.UTC)
		spec.Status = model.StatusSaved
		specs = append(specs, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list wheel specifications: %w", err)
	}

	return specs, nil
}
