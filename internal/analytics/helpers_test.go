package analytics

import (
	"time"

	"github.com/terraincognita07/mcycle/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func intPtr(value int) *int {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func cycleAt(id uint, start string, length *int) models.Cycle {
	return models.Cycle{ID: id, UserID: 1, StartDate: mustParseDay(start), CycleLength: length}
}

// cyclesFromLengths builds a history starting at first where each later
// cycle starts the given number of days after the previous one.
func cyclesFromLengths(first string, lengths ...int) []models.Cycle {
	start := mustParseDay(first)
	cycles := []models.Cycle{{ID: 1, UserID: 1, StartDate: start}}
	for index, length := range lengths {
		start = start.AddDate(0, 0, length)
		cycles = append(cycles, models.Cycle{
			ID:          uint(index + 2),
			UserID:      1,
			StartDate:   start,
			CycleLength: intPtr(length),
		})
	}
	return cycles
}

type cycleFixture struct {
	id     uint
	start  string
	length int
}

func buildFixtureCycles(fixtures []cycleFixture) []models.Cycle {
	cycles := make([]models.Cycle, 0, len(fixtures))
	for _, fixture := range fixtures {
		var length *int
		if fixture.length > 0 {
			length = intPtr(fixture.length)
		}
		cycles = append(cycles, cycleAt(fixture.id, fixture.start, length))
	}
	return cycles
}
