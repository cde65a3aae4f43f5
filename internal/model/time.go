package model

import (
	"fmt"
	"strconv"
	"time"
)

const (
	dateLayout          = "2006-01-02"
	localDateTimeLayout = "2006-01-02T15:04:05.999999999"
)

// Date — календарная дата без времени, в JSON представляется как "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate отбрасывает время суток и часовой пояс.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LocalDateTime — дата и время без часового пояса ("YYYY-MM-DDTHH:MM:SS[.fff]").
// Значение хранится в UTC и выводится ровно так, как было получено.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime переносит показания часов t в UTC без пересчёта пояса.
func NewLocalDateTime(t time.Time) LocalDateTime {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return LocalDateTime{Time: time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)}
}

// ParseLocalDateTime разбирает дату-время. Секунды и их дробная часть необязательны:
// "2025-10-20T10:15" присылает поле datetime-local браузера.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		var shortErr error
		if t, shortErr = time.Parse("2006-01-02T15:04", s); shortErr != nil {
			return LocalDateTime{}, fmt.Errorf("invalid date-time %q: %w", s, err)
		}
	}
	return LocalDateTime{Time: t}, nil
}

func (t LocalDateTime) String() string {
	return t.Format(localDateTimeLayout)
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *LocalDateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
