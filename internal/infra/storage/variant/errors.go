package variant

import "errors"

var (
	// ErrVariantNotFound возвращается, когда вариант не найден
	ErrVariantNotFound = errors.New("variant.repository: variant not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("variant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("variant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("variant.repository: failed to scan row")
)
