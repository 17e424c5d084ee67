package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration — длительность работ, сериализуется как "HH:MM:SS" (или "D HH:MM:SS" от суток).
type Duration time.Duration

// String форматирует длительность в "HH:MM:SS".
func (d Duration) String() string {
	total := int64(time.Duration(d) / time.Second)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	days := total / 86400
	rest := total % 86400
	hms := fmt.Sprintf("%02d:%02d:%02d", rest/3600, rest%3600/60, rest%60)
	if days > 0 {
		return fmt.Sprintf("%s%d %s", sign, days, hms)
	}
	return sign + hms
}

// Seconds возвращает длительность в целых секундах (так она хранится в БД).
func (d Duration) Seconds() int64 {
	return int64(time.Duration(d) / time.Second)
}

// DurationFromSeconds строит Duration из секунд.
func DurationFromSeconds(s int64) Duration {
	return Duration(time.Duration(s) * time.Second)
}

// ParseDuration разбирает "HH:MM:SS", "MM:SS" или "D HH:MM:SS".
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var days int64
	if i := strings.IndexByte(s, ' '); i > 0 {
		n, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		days = n
		s = strings.TrimSpace(s[i+1:])
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q: expected HH:MM:SS", s)
	}
	if len(parts) == 2 {
		parts = append([]string{"0"}, parts...)
	}

	var nums [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		nums[i] = n
	}
	if nums[1] > 59 || nums[2] > 59 {
		return 0, fmt.Errorf("invalid duration %q: minutes and seconds must be below 60", s)
	}

	total := days*86400 + nums[0]*3600 + nums[1]*60 + nums[2]
	return DurationFromSeconds(total), nil
}

// MarshalJSON реализует json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON реализует json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string in HH:MM:SS format")
	}
	parsed, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateLayout — формат календарных дат.
const DateLayout = "2006-01-02"

// Date — календарная дата без времени, сериализуется как "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate усекает время до даты.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// String форматирует дату как YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON реализует json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON реализует json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string in YYYY-MM-DD format")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Optional различает отсутствующее в JSON поле и поле, явно переданное (в том числе null).
// Используется в частичных обновлениях.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some возвращает заданное значение Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON вызывается только для присутствующих ключей, поэтому само наличие вызова означает Set.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

// Or возвращает значение, если оно задано, иначе fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}
