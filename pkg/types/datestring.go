package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout формат календарной даты (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// DateString represents a calendar date as a "YYYY-MM-DD" string.
// Используется для дат бронирования с точностью до календарного дня,
// без времени и часового пояса.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку формата YYYY-MM-DD
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date string format: %v", err)
	}
	return DateString(s), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что строка является корректной датой
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date string format: %v", err)
	}
	return nil
}

// Time конвертирует дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string format: %v", err)
	}
	return t, nil
}

// Before возвращает true, если дата d раньше other
// Формат YYYY-MM-DD допускает лексикографическое сравнение
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After возвращает true, если дата d позже other
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// AddDays возвращает дату, сдвинутую на days дней (days может быть отрицательным)
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// DaysUntil возвращает количество дней от d до other
// Для d == other возвращает 0, для other раньше d — отрицательное число
func (d DateString) DaysUntil(other DateString) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// Scan реализует sql.Scanner
// Поддерживает time.Time (DATE колонки через lib/pq), string и []byte
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		*d = DateString(v)
		return nil
	case []byte:
		*d = DateString(v)
		return nil
	case nil:
		*d = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateString", src)
	}
}

// Value реализует driver.Valuer
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}
