// Package schedule 航班排班核心规则: 飞行员可用性, 航班状态与飞行时长
package schedule

import (
	. "github.com/half-nothing/simple-fms/internal/interfaces/operation"
	"github.com/half-nothing/simple-fms/internal/utils"
	"time"
)

// Window 航班占用飞行员的时间段
type Window struct {
	Departure time.Time
	Arrival   time.Time
}

func WindowOf(flight *Flight) Window {
	return Window{Departure: flight.DepartureTime, Arrival: flight.ArrivalTime}
}

func (w Window) Duration() time.Duration { return w.Arrival.Sub(w.Departure) }

// contains 判断时间点是否落在窗口内, strict为true时端点不计入
func (w Window) contains(t time.Time, strict bool) bool {
	if strict {
		return t.After(w.Departure) && t.Before(w.Arrival)
	}
	return !t.Before(w.Departure) && !t.After(w.Arrival)
}

// Overlaps 已有航班与候选航班是否冲突:
// 已有航班的出发或到达时间落在候选窗口内, 或已有航班完全覆盖候选窗口
func Overlaps(candidate, existing Window, strict bool) bool {
	if candidate.contains(existing.Departure, strict) || candidate.contains(existing.Arrival, strict) {
		return true
	}
	return !existing.Departure.After(candidate.Departure) && !existing.Arrival.Before(candidate.Arrival)
}

// Checker 基于已分配航班判断飞行员是否空闲
type Checker struct {
	flights         FlightOperationInterface
	pilots          PilotOperationInterface
	strict          bool
	cancelledBlocks bool
}

// NewChecker strict为true时首尾相接不算冲突, cancelledBlocks为true时已取消的航班同样占用飞行员
func NewChecker(flights FlightOperationInterface, pilots PilotOperationInterface, strict bool, cancelledBlocks bool) *Checker {
	return &Checker{flights: flights, pilots: pilots, strict: strict, cancelledBlocks: cancelledBlocks}
}

func (checker *Checker) conflicting(assigned []*Flight, candidate Window, excludeFlightId uint) []*Flight {
	conflicts := make([]*Flight, 0)
	for _, flight := range assigned {
		if flight.ID == excludeFlightId || (flight.Status == Cancelled && !checker.cancelledBlocks) {
			continue
		}
		if Overlaps(candidate, WindowOf(flight), checker.strict) {
			conflicts = append(conflicts, flight)
		}
	}
	return conflicts
}

// Conflicts 返回与候选窗口冲突的该飞行员的航班, excludeFlightId 用于改期时排除航班自身
func (checker *Checker) Conflicts(pilotId uint, candidate Window, excludeFlightId uint) ([]*Flight, error) {
	assigned, err := checker.flights.GetPilotFlights(pilotId, checker.cancelledBlocks)
	if err != nil {
		return nil, err
	}
	return checker.conflicting(assigned, candidate, excludeFlightId), nil
}

func (checker *Checker) IsPilotAvailable(pilotId uint, departure, arrival time.Time, excludeFlightId uint) (bool, error) {
	conflicts, err := checker.Conflicts(pilotId, Window{Departure: departure, Arrival: arrival}, excludeFlightId)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// AvailablePilots 返回在候选窗口内空闲的全部飞行员
func (checker *Checker) AvailablePilots(candidate Window, excludeFlightId uint) ([]*Pilot, error) {
	pilots, err := checker.pilots.GetPilots()
	if err != nil {
		return nil, err
	}
	assigned, err := checker.flights.GetAssignedFlights(checker.cancelledBlocks)
	if err != nil {
		return nil, err
	}
	byPilot := make(map[uint][]*Flight)
	for _, flight := range assigned {
		if flight.PilotId != nil {
			byPilot[*flight.PilotId] = append(byPilot[*flight.PilotId], flight)
		}
	}
	return utils.Filter(pilots, func(pilot *Pilot) bool {
		return len(checker.conflicting(byPilot[pilot.ID], candidate, excludeFlightId)) == 0
	}), nil
}
