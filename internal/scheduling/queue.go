package scheduling

import "fmt"

// Queue is the scheduling category a card belongs to. It decides how the
// due fields of a State are read.
type Queue string

const (
	QueueNew        Queue = "new"
	QueueLearning   Queue = "learning"
	QueueReview     Queue = "review"
	QueueRelearning Queue = "relearning"
	QueueSuspended  Queue = "suspended"
)

func ParseQueue(s string) (Queue, error) {
	switch q := Queue(s); q {
	case QueueNew, QueueLearning, QueueReview, QueueRelearning, QueueSuspended:
		return q, nil
	}
	return "", fmt.Errorf("unknown queue %q", s)
}

// stepped reports whether due is a moment (learning steps) rather than a day.
func (q Queue) stepped() bool {
	return q == QueueLearning || q == QueueRelearning
}
