package analytics

import "time"

const (
	// LutealPhaseDays is assumed constant for every user.
	LutealPhaseDays   = 14
	fertileWindowSide = 2
)

type FertileWindow struct {
	OvulationDate Date `json:"ovulation_date"`
	Start         Date `json:"start"`
	End           Date `json:"end"`
}

// EstimateFertileWindow places ovulation LutealPhaseDays before the end of
// a cycle starting at base and returns the five days centred on it.
func EstimateFertileWindow(base *time.Time, avgCycleLength *int) *FertileWindow {
	if base == nil || base.IsZero() || avgCycleLength == nil || *avgCycleLength <= 0 {
		return nil
	}

	ovulation := addDays(*base, *avgCycleLength-LutealPhaseDays)
	return &FertileWindow{
		OvulationDate: NewDate(ovulation),
		Start:         NewDate(addDays(ovulation, -fertileWindowSide)),
		End:           NewDate(addDays(ovulation, fertileWindowSide)),
	}
}
