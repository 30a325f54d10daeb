package schedule

import (
	"errors"
	"time"
)

var (
	ErrNegativeDuration  = errors.New("duration must be a positive value")
	ErrMinutesOutOfRange = errors.New("minutes must be less than 60")
	ErrDurationTooLong   = errors.New("total flight duration exceeds the maximum")
	ErrZeroDuration      = errors.New("flight duration must be greater than zero")
)

// FlightDuration 由小时与分钟计算飞行时长
func FlightDuration(hours, minutes int, maxDuration time.Duration) (time.Duration, error) {
	if hours < 0 || minutes < 0 {
		return 0, ErrNegativeDuration
	}
	if minutes >= 60 {
		return 0, ErrMinutesOutOfRange
	}
	if int64(hours) > int64(maxDuration/time.Hour) {
		return 0, ErrDurationTooLong
	}
	duration := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if duration > maxDuration {
		return 0, ErrDurationTooLong
	}
	if duration == 0 {
		return 0, ErrZeroDuration
	}
	return duration, nil
}
