package engine

import "time"

// TimeHandler tracks the budget of one search. The hard limit is enforced
// through the search context; the soft limit decides whether another
// iteration is worth starting.
type TimeHandler struct {
	start    time.Time
	budget   time.Duration
	softStop time.Time
}

func (th *TimeHandler) StartTime(budget time.Duration, softFraction float64) {
	th.start = time.Now()
	th.budget = budget
	th.softStop = time.Time{}
	if budget > 0 {
		th.softStop = th.start.Add(time.Duration(float64(budget) * softFraction))
	}
}

// SoftLimitReached is true once the soft share of the budget is spent. It is
// always false without a budget.
func (th *TimeHandler) SoftLimitReached() bool {
	return th.budget > 0 && time.Now().After(th.softStop)
}

func (th *TimeHandler) Elapsed() time.Duration {
	return time.Since(th.start)
}
