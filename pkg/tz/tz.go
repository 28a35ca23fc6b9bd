package tz

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultName is the zone campus schedules are expressed in.
const DefaultName = "Asia/Jakarta"

// Jakarta is Western Indonesia Time (WIB, UTC+7, no DST).
var Jakarta *time.Location

func init() {
	var err error
	Jakarta, err = Load(DefaultName)
	if err != nil {
		panic("tz: " + err.Error())
	}
}

// Load resolves an IANA zone name using the embedded zone database when the
// host has none.
func Load(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return loc, nil
}
