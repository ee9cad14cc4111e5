package services

import (
	"errors"
	"testing"
	"time"
)

func TestCycleServiceCreateDerivesLengthsAndPrediction(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)

	first, err := service.Create(1, CycleInput{StartDate: dayPtr("2024-01-01")})
	if err != nil {
		t.Fatalf("create first cycle: %v", err)
	}
	if first.CycleLength != nil {
		t.Fatalf("expected nil cycle length for first cycle, got %d", *first.CycleLength)
	}
	if first.BleedingDuration != nil {
		t.Fatalf("expected nil bleeding duration without end date, got %d", *first.BleedingDuration)
	}
	if first.PredictedNext == nil || !first.PredictedNext.Equal(mustParseDay("2024-01-29")) {
		t.Fatalf("expected default 28-day projection 2024-01-29, got %v", first.PredictedNext)
	}

	second, err := service.Create(1, CycleInput{
		StartDate: dayPtr("2024-01-29"),
		EndDate:   dayPtr("2024-02-02"),
		Notes:     stringPtr("  cramps on day one  "),
	})
	if err != nil {
		t.Fatalf("create second cycle: %v", err)
	}
	if second.CycleLength == nil || *second.CycleLength != 28 {
		t.Fatalf("expected cycle length 28, got %v", second.CycleLength)
	}
	if second.BleedingDuration == nil || *second.BleedingDuration != 5 {
		t.Fatalf("expected bleeding duration 5, got %v", second.BleedingDuration)
	}
	if second.PredictedNext == nil || !second.PredictedNext.Equal(mustParseDay("2024-02-26")) {
		t.Fatalf("expected projection 2024-02-26, got %v", second.PredictedNext)
	}
	if second.Notes == nil || *second.Notes != "cramps on day one" {
		t.Fatalf("expected trimmed notes, got %v", second.Notes)
	}
}

func TestCycleServiceCreateBackdatedUsesOnlyEarlierHistory(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)
	for _, start := range []string{"2024-01-01", "2024-02-10"} {
		if _, err := service.Create(1, CycleInput{StartDate: dayPtr(start)}); err != nil {
			t.Fatalf("create %s: %v", start, err)
		}
	}

	backdated, err := service.Create(1, CycleInput{StartDate: dayPtr("2024-01-15")})
	if err != nil {
		t.Fatalf("create backdated cycle: %v", err)
	}
	if backdated.CycleLength == nil || *backdated.CycleLength != 14 {
		t.Fatalf("expected length from 2024-01-01 to be 14, got %v", backdated.CycleLength)
	}
	if backdated.PredictedNext == nil || !backdated.PredictedNext.Equal(mustParseDay("2024-01-29")) {
		t.Fatalf("expected projection 2024-01-29, got %v", backdated.PredictedNext)
	}
}

func TestCycleServiceCreateValidation(t *testing.T) {
	t.Parallel()

	service := NewCycleService(&stubCycleRepo{})

	if _, err := service.Create(1, CycleInput{}); !errors.Is(err, ErrStartDateRequired) {
		t.Fatalf("expected ErrStartDateRequired, got %v", err)
	}
	_, err := service.Create(1, CycleInput{StartDate: dayPtr("2024-03-10"), EndDate: dayPtr("2024-03-09")})
	if !errors.Is(err, ErrInvalidCycleRange) {
		t.Fatalf("expected ErrInvalidCycleRange, got %v", err)
	}
}

func TestCycleServiceUpdateRecomputesBleedingOnly(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)
	if _, err := service.Create(1, CycleInput{StartDate: dayPtr("2024-01-01")}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	created, err := service.Create(1, CycleInput{StartDate: dayPtr("2024-01-30"), EndDate: dayPtr("2024-02-03")})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	updated, err := service.Update(1, created.ID, CycleUpdate{
		StartDate:  dayPtr("2024-01-31"),
		EndDate:    dayPtr("2024-02-06"),
		EndDateSet: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.BleedingDuration == nil || *updated.BleedingDuration != 7 {
		t.Fatalf("expected bleeding duration 7, got %v", updated.BleedingDuration)
	}
	if updated.CycleLength == nil || *updated.CycleLength != 29 {
		t.Fatalf("expected cycle length to stay 29, got %v", updated.CycleLength)
	}

	cleared, err := service.Update(1, created.ID, CycleUpdate{EndDateSet: true})
	if err != nil {
		t.Fatalf("clear end date: %v", err)
	}
	if cleared.EndDate != nil || cleared.BleedingDuration != nil {
		t.Fatalf("expected cleared end date and bleeding duration, got %v / %v", cleared.EndDate, cleared.BleedingDuration)
	}

	kept, err := service.Update(1, created.ID, CycleUpdate{Notes: stringPtr("spotting")})
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if kept.EndDate != nil {
		t.Fatalf("expected omitted end date to stay cleared, got %v", kept.EndDate)
	}

	_, err = service.Update(1, created.ID, CycleUpdate{EndDate: dayPtr("2024-01-01"), EndDateSet: true})
	if !errors.Is(err, ErrInvalidCycleRange) {
		t.Fatalf("expected ErrInvalidCycleRange, got %v", err)
	}
}

func TestCycleServiceScopesByUser(t *testing.T) {
	t.Parallel()

	repo := &stubCycleRepo{}
	service := NewCycleService(repo)
	created, err := service.Create(1, CycleInput{StartDate: dayPtr("2024-01-01")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := service.Update(2, created.ID, CycleUpdate{}); !errors.Is(err, ErrCycleNotFound) {
		t.Fatalf("expected ErrCycleNotFound for another user, got %v", err)
	}
	if err := service.Delete(2, created.ID); !errors.Is(err, ErrCycleNotFound) {
		t.Fatalf("expected ErrCycleNotFound on delete for another user, got %v", err)
	}
	if err := service.Delete(1, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cycles, err := service.List(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cycles) != 0 {
		t.Fatalf("expected no cycles after delete, got %d", len(cycles))
	}
}

func TestBleedingDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   *string
		want  *int
	}{
		{name: "ongoing period", start: "2024-01-01", end: nil, want: nil},
		{name: "single day", start: "2024-01-01", end: stringPtr("2024-01-01"), want: intPtr(1)},
		{name: "five days", start: "2024-01-01", end: stringPtr("2024-01-05"), want: intPtr(5)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var end *time.Time
			if testCase.end != nil {
				end = dayPtr(*testCase.end)
			}
			got := BleedingDuration(mustParseDay(testCase.start), end)
			switch {
			case testCase.want == nil && got != nil:
				t.Fatalf("expected nil, got %d", *got)
			case testCase.want != nil && (got == nil || *got != *testCase.want):
				t.Fatalf("expected %d, got %v", *testCase.want, got)
			}
		})
	}
}
