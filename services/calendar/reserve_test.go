package calendar

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mawid/models"
)

func reserveInput() models.ReserveInput {
	return models.ReserveInput{
		Year:        2024,
		Month:       3,
		Day:         5,
		Slot:        "10:00",
		Name:        "Sara",
		PhoneNumber: "0500000000",
	}
}

func TestReserve(t *testing.T) {
	t.Parallel()

	t.Run("missing contact fields fail before any store access", func(t *testing.T) {
		store := newFakeStore(sampleMonth())
		store.reserveErr = errors.New("store must not be touched")
		svc := newTestService(store, nil)

		for _, in := range []models.ReserveInput{
			{Year: 2024, Month: 3, Day: 5, Slot: "10:00", Name: "", PhoneNumber: "0500000000"},
			{Year: 2024, Month: 3, Day: 5, Slot: "10:00", Name: "Sara", PhoneNumber: ""},
			{Year: 2024, Month: 3, Day: 5, Slot: "10:00", Name: "   ", PhoneNumber: "0500000000"},
		} {
			_, _, err := svc.Reserve(context.Background(), in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		}
		if store.bookingCount() != 0 {
			t.Fatalf("validation failure must not create bookings")
		}
	})

	t.Run("successful reservation removes the slot", func(t *testing.T) {
		store := newFakeStore(sampleMonth())
		svc := newTestService(store, nil)

		booking, view, err := svc.Reserve(context.Background(), reserveInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if booking.ID == "" {
			t.Fatalf("expected booking ID to be set")
		}
		if booking.Slot != "10:00" || booking.Day != 5 {
			t.Fatalf("unexpected booking %+v", booking)
		}
		if view.HasSlot(5, "10:00") {
			t.Fatalf("booked slot still offered")
		}
		if got := view.SlotsByDay[5]; len(got) != 1 || got[0] != "11:00" {
			t.Fatalf("expected day 5 to keep [11:00], got %v", got)
		}
		if store.bookingCount() != 1 {
			t.Fatalf("expected one booking record, got %d", store.bookingCount())
		}
	})

	t.Run("second reservation of the same slot fails", func(t *testing.T) {
		store := newFakeStore(sampleMonth())
		svc := newTestService(store, nil)

		if _, _, err := svc.Reserve(context.Background(), reserveInput()); err != nil {
			t.Fatalf("first reservation failed: %v", err)
		}
		_, _, err := svc.Reserve(context.Background(), reserveInput())
		if !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable, got %v", err)
		}
		if store.bookingCount() != 1 {
			t.Fatalf("expected exactly one booking record, got %d", store.bookingCount())
		}
	})

	t.Run("slot never offered fails", func(t *testing.T) {
		svc := newTestService(newFakeStore(sampleMonth()), nil)

		in := reserveInput()
		in.Slot = "23:00"
		_, _, err := svc.Reserve(context.Background(), in)
		if !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable, got %v", err)
		}
	})

	t.Run("unconfigured month fails", func(t *testing.T) {
		svc := newTestService(newFakeStore(), nil)

		_, _, err := svc.Reserve(context.Background(), reserveInput())
		if !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("expected ErrSlotUnavailable, got %v", err)
		}
	})

	t.Run("booking the last slot drops the day from the view", func(t *testing.T) {
		store := newFakeStore(sampleMonth())
		svc := newTestService(store, nil)

		in := reserveInput()
		in.Day = 12
		in.Slot = "09:00"
		_, view, err := svc.Reserve(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if view.HasDay(12) {
			t.Fatalf("day 12 lost its last slot and must not be offered")
		}

		view, err = svc.MonthAvailability(context.Background(), 2024, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if view.HasDay(12) {
			t.Fatalf("day 12 still offered on a fresh read")
		}
	})

	t.Run("store failure surfaces as repository error", func(t *testing.T) {
		store := newFakeStore(sampleMonth())
		store.reserveErr = errors.New("write rejected")
		svc := newTestService(store, nil)

		_, _, err := svc.Reserve(context.Background(), reserveInput())
		if !errors.Is(err, ErrRepository) {
			t.Fatalf("expected ErrRepository, got %v", err)
		}
	})

	t.Run("successful reservation invalidates the cached view", func(t *testing.T) {
		store := newFakeStore(sampleMonth())
		cache := newFakeViewCache()
		svc := newTestService(store, cache)

		// Warm the cache with the pre-booking view.
		if _, err := svc.MonthAvailability(context.Background(), 2024, 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, _, err := svc.Reserve(context.Background(), reserveInput()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cache.invalidates == 0 {
			t.Fatalf("expected the cached view to be invalidated")
		}

		view, err := svc.MonthAvailability(context.Background(), 2024, 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if view.HasSlot(5, "10:00") {
			t.Fatalf("stale cached view served after reservation")
		}
	})
}

func TestReserveConcurrent(t *testing.T) {
	t.Parallel()

	const callers = 32

	store := newFakeStore(sampleMonth())
	svc := newTestService(store, nil)

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Reserve(context.Background(), reserveInput())
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotUnavailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one success, got %d", successes)
	}
	if conflicts != callers-1 {
		t.Fatalf("expected %d conflicts, got %d", callers-1, conflicts)
	}
	if store.bookingCount() != 1 {
		t.Fatalf("expected exactly one booking record, got %d", store.bookingCount())
	}
}
