package check_day

import "errors"

var (
	// ErrVariantNotFound возвращается, когда вариант не найден в каталоге
	ErrVariantNotFound = errors.New("check_day: variant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_day: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_day: internal error")
)
