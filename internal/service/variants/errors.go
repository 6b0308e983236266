package variants

import "errors"

var (
	// ErrVariantNotFound возвращается, когда вариант не найден
	ErrVariantNotFound = errors.New("variant not found")

	// ErrInvalidCapacity возвращается при недопустимой вместимости
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
