package admit_booking

import "errors"

var (
	// ErrVariantNotFound возвращается, когда вариант не найден в каталоге
	ErrVariantNotFound = errors.New("admit_booking: variant not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (неположительное количество, конец диапазона раньше начала и т.п.)
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrLockTimeout возвращается, когда блокировка варианта не захвачена
	// до истечения дедлайна вызывающего; ошибка временная, вызывающий
	// может повторить запрос целиком
	ErrLockTimeout = errors.New("admit_booking: variant lock not acquired within deadline")

	// ErrInternal возвращается при ошибках хранилища; частичных записей
	// после этой ошибки не остается
	ErrInternal = errors.New("admit_booking: internal error")
)
