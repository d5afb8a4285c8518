package catalog

import (
	"fmt"
	"math"
	"time"
)

const (
	BucketExpired     = "expired"
	BucketDueToday    = "due_today"
	BucketDueTomorrow = "due_tomorrow"
	BucketSoon        = "soon"
	BucketNormal      = "normal"
)

// Classification is a deadline's urgency bucket and display label, computed
// against a caller-supplied now. It is never stored.
type Classification struct {
	Bucket string `json:"bucket"`
	Label  string `json:"label"`
}

// Classify buckets a deadline by days remaining, rounding partial days up:
// a deadline any amount ahead of now is at least "Tomorrow", and "Today"
// covers deadlines up to 24h in the past.
func Classify(deadline, now time.Time) Classification {
	days := diffDays(deadline, now)
	switch {
	case days < 0:
		return Classification{Bucket: BucketExpired, Label: "Expired"}
	case days == 0:
		return Classification{Bucket: BucketDueToday, Label: "Today"}
	case days == 1:
		return Classification{Bucket: BucketDueTomorrow, Label: "Tomorrow"}
	case days <= 7:
		return Classification{Bucket: BucketSoon, Label: fmt.Sprintf("%d days left", days)}
	default:
		return Classification{Bucket: BucketNormal, Label: deadline.Format("1/2/2006")}
	}
}

// Urgent reports whether the deadline is within the next 7 days and not past.
func Urgent(deadline, now time.Time) bool {
	days := diffDays(deadline, now)
	return days >= 0 && days <= 7
}

func diffDays(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
