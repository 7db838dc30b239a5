package dues

import (
	"errors"
	"time"
)

var ErrInvalidMonth = errors.New("invalid dues month")

// Month is one slot of the fixed ten-month academic-year ledger. July and
// August are outside the dues cycle and have no records.
type Month string

const (
	September Month = "September"
	October   Month = "October"
	November  Month = "November"
	December  Month = "December"
	January   Month = "January"
	February  Month = "February"
	March     Month = "March"
	April     Month = "April"
	May       Month = "May"
	June      Month = "June"
)

// AcademicYearMonths is the canonical ledger order: a member's records are
// listed September first regardless of calendar year.
var AcademicYearMonths = [10]Month{
	September, October, November, December,
	January, February, March, April, May, June,
}

var academicIndex = map[Month]int{
	September: 0, October: 1, November: 2, December: 3,
	January: 4, February: 5, March: 6, April: 7, May: 8, June: 9,
}

var calendarMonth = map[Month]time.Month{
	September: time.September, October: time.October, November: time.November, December: time.December,
	January: time.January, February: time.February, March: time.March, April: time.April,
	May: time.May, June: time.June,
}

func NewMonth(s string) (Month, error) {
	m := Month(s)
	if !m.IsValid() {
		return "", ErrInvalidMonth
	}
	return m, nil
}

func (m Month) IsValid() bool {
	_, ok := academicIndex[m]
	return ok
}

func (m Month) String() string {
	return string(m)
}

// AcademicIndex returns the position within the September-first ledger order.
func (m Month) AcademicIndex() int {
	return academicIndex[m]
}

// Calendar returns the calendar month this ledger slot falls in.
func (m Month) Calendar() time.Month {
	return calendarMonth[m]
}

// MonthOfDate maps a calendar date onto a ledger month. The second return is
// false for July and August, which carry no dues.
func MonthOfDate(t time.Time) (Month, bool) {
	for m, cal := range calendarMonth {
		if cal == t.Month() {
			return m, true
		}
	}
	return "", false
}
