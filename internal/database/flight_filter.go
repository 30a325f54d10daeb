package database

import (
	sq "github.com/Masterminds/squirrel"
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"gorm.io/gorm"
	"strings"
	"time"
)

// withArrivalDestination 连接到达机场与其目的地, 别名分别为 arr 与 d
func withArrivalDestination(query *gorm.DB) *gorm.DB {
	return query.
		Joins("JOIN airports AS arr ON arr.airport_id = flights.arrival_airport_id").
		Joins("JOIN destinations AS d ON d.destination_id = arr.destination_id")
}

// locationMatches 城市或国家包含给定文本(不区分大小写)
func locationMatches(location string) sq.Sqlizer {
	pattern := "%" + strings.ToLower(strings.TrimSpace(location)) + "%"
	return sq.Or{
		sq.Expr("LOWER(d.city) LIKE ?", pattern),
		sq.Expr("LOWER(d.country) LIKE ?", pattern),
	}
}

// buildFlightCondition 将过滤条件转换为WHERE子句, 无条件时返回空字符串
func buildFlightCondition(filter *FlightFilter) (string, []interface{}, error) {
	if filter == nil {
		return "", nil, nil
	}
	conditions := sq.And{}
	if filter.PilotId != 0 {
		conditions = append(conditions, sq.Eq{"flights.pilot_id": filter.PilotId})
	}
	if filter.DepartingAfter != nil {
		conditions = append(conditions, sq.Gt{"flights.departure_time": filter.DepartingAfter.UTC()})
	}
	if filter.DepartureDay != nil {
		day := filter.DepartureDay
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		conditions = append(conditions,
			sq.GtOrEq{"flights.departure_time": start.UTC()},
			sq.Lt{"flights.departure_time": start.AddDate(0, 0, 1).UTC()},
		)
	}
	if filter.Status != "" {
		conditions = append(conditions, sq.Eq{"flights.status": filter.Status})
	}
	if filter.ExcludeStatus != "" {
		conditions = append(conditions, sq.NotEq{"flights.status": filter.ExcludeStatus})
	}
	if filter.Destination != "" {
		conditions = append(conditions, locationMatches(filter.Destination))
	}
	if len(conditions) == 0 {
		return "", nil, nil
	}
	return conditions.ToSql()
}
