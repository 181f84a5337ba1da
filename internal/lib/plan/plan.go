// Package plan переводит код тарифного плана в срок действия членства.
package plan

import "time"

// Коды тарифных планов.
const (
	ThreeDays   = "3-days"
	FifteenDays = "15-days"
	ThirtyDays  = "30-days"
)

var days = map[string]int{
	ThreeDays:   3,
	FifteenDays: 15,
	ThirtyDays:  30,
}

// Codes возвращает известные коды планов в порядке возрастания срока.
func Codes() []string {
	return []string{ThreeDays, FifteenDays, ThirtyDays}
}

// Days возвращает количество дней плана и признак того, что код известен.
func Days(code string) (int, bool) {
	d, ok := days[code]
	return d, ok
}

// ExpiresAt считает окончание членства, начиная с from, в календарных днях.
// Для неизвестного кода срок не добавляется: результат равен from, ok = false.
func ExpiresAt(code string, from time.Time) (time.Time, bool) {
	d, ok := Days(code)
	if !ok {
		return from, false
	}
	return from.AddDate(0, 0, d), true
}
