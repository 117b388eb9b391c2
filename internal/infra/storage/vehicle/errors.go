package vehicle

import "errors"

var (
	// ErrModelNotFound возвращается, когда пара (makeId, modelId) не найдена в справочнике
	ErrModelNotFound = errors.New("vehicle.repository: model not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("vehicle.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("vehicle.repository: failed to scan row")
)
