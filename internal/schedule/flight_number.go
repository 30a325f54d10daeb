package schedule

import (
	"github.com/labstack/gommon/random"
	"math/rand/v2"
)

type FlightNumberGenerator interface {
	Next() string
}

// RandomFlightNumber 航空公司代码加上 100-9999 之间的三到四位数字
type RandomFlightNumber struct {
	airlineCodes []string
}

func NewRandomFlightNumber(airlineCodes []string) *RandomFlightNumber {
	return &RandomFlightNumber{airlineCodes: airlineCodes}
}

func (generator *RandomFlightNumber) Next() string {
	code := generator.airlineCodes[rand.IntN(len(generator.airlineCodes))]
	digits := uint8(3 + rand.IntN(2))
	return code + random.String(1, "123456789") + random.String(digits-1, random.Numeric)
}
