package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RIZZA-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочника марок и моделей автомобилей
// Справочник статический, владеет им сидинг БД; сервис его только читает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListMakes получает все марки, отсортированные по имени
func (r *Repository) ListMakes(ctx context.Context) ([]*domain.VehicleMake, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("vehicle_makes").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMakes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMakes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	makes := make([]*domain.VehicleMake, 0)
	for rows.Next() {
		var make domain.VehicleMake
		if err := rows.Scan(&make.ID, &make.Name); err != nil {
			return nil, fmt.Errorf("%w: ListMakes - scan row: %v", ErrScanRow, err)
		}
		makes = append(makes, &make)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMakes - rows error: %v", ErrScanRow, err)
	}

	return makes, nil
}

// ListModels получает модели марки, отсортированные по имени
// Для несуществующей марки возвращает пустой список, не ошибку
func (r *Repository) ListModels(ctx context.Context, makeID int64) ([]*domain.VehicleModel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "make_id", "name", "image_key").
		From("vehicle_models").
		Where(squirrel.Eq{"make_id": makeID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListModels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListModels - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	models := make([]*domain.VehicleModel, 0)
	for rows.Next() {
		var model domain.VehicleModel
		if err := rows.Scan(&model.ID, &model.MakeID, &model.Name, &model.ImageKey); err != nil {
			return nil, fmt.Errorf("%w: ListModels - scan row: %v", ErrScanRow, err)
		}
		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListModels - rows error: %v", ErrScanRow, err)
	}

	return models, nil
}

// GetModelWithMake получает модель вместе с маркой, проверяя принадлежность
// модели марке. Используется при валидации запроса на бронирование
func (r *Repository) GetModelWithMake(ctx context.Context, makeID, modelID int64) (*domain.VehicleModelWithMake, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"m.id",
		"m.make_id",
		"m.name",
		"m.image_key",
		"mk.id",
		"mk.name",
	).
		From("vehicle_models m").
		Join("vehicle_makes mk ON mk.id = m.make_id").
		Where(squirrel.Eq{"m.id": modelID, "m.make_id": makeID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetModelWithMake - build select query: %v", ErrBuildQuery, err)
	}

	var result domain.VehicleModelWithMake
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.Model.ID,
		&result.Model.MakeID,
		&result.Model.Name,
		&result.Model.ImageKey,
		&result.Make.ID,
		&result.Make.Name,
	)

	if err == sql.ErrNoRows {
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetModelWithMake - scan row: %v", ErrScanRow, err)
	}

	return &result, nil
}
