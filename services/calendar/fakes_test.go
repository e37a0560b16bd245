package calendar

import (
	"context"
	"sync"

	"mawid/models"
)

// fakeStore backs both repository interfaces with in-memory state guarded by
// one mutex, mirroring the store-side atomicity of the mongo implementation:
// Reserve removes the slot and appends the booking under a single lock.
type fakeStore struct {
	mu       sync.Mutex
	months   map[string]*models.MonthRecord
	bookings []models.Booking

	getErr     error
	replaceErr error
	reserveErr error
	listErr    error
}

func newFakeStore(records ...*models.MonthRecord) *fakeStore {
	s := &fakeStore{months: map[string]*models.MonthRecord{}}
	for _, rec := range records {
		s.months[rec.ID] = rec
	}
	return s
}

func copyRecord(rec *models.MonthRecord) *models.MonthRecord {
	if rec == nil {
		return nil
	}
	out := &models.MonthRecord{ID: rec.ID, Days: make([]models.DayAvailability, len(rec.Days))}
	for i, d := range rec.Days {
		slots := make([]string, len(d.Slots))
		copy(slots, d.Slots)
		out.Days[i] = models.DayAvailability{Day: d.Day, Slots: slots}
	}
	return out
}

func (s *fakeStore) GetMonth(_ context.Context, year, month int) (*models.MonthRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	return copyRecord(s.months[models.MonthKey(year, month)]), nil
}

func (s *fakeStore) ReplaceMonth(_ context.Context, rec *models.MonthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.months[rec.ID] = copyRecord(rec)
	return nil
}

func (s *fakeStore) Reserve(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reserveErr != nil {
		return s.reserveErr
	}

	rec := s.months[models.MonthKey(booking.Year, booking.Month)]
	if rec == nil {
		return models.ErrSlotTaken
	}
	for i := range rec.Days {
		if rec.Days[i].Day != booking.Day {
			continue
		}
		for j, slot := range rec.Days[i].Slots {
			if slot == booking.Slot {
				rec.Days[i].Slots = append(rec.Days[i].Slots[:j], rec.Days[i].Slots[j+1:]...)
				s.bookings = append(s.bookings, *booking)
				return nil
			}
		}
	}
	return models.ErrSlotTaken
}

func (s *fakeStore) ListByMonth(_ context.Context, year, month int) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Year == year && b.Month == month {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) EnsureIndexes() error { return nil }

func (s *fakeStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// fakeViewCache records cache traffic for assertions.
type fakeViewCache struct {
	mu          sync.Mutex
	views       map[string]*models.AvailabilityView
	sets        int
	invalidates int
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{views: map[string]*models.AvailabilityView{}}
}

func (c *fakeViewCache) Get(_ context.Context, year, month int) (*models.AvailabilityView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	view, ok := c.views[models.MonthKey(year, month)]
	return view, ok
}

func (c *fakeViewCache) Set(_ context.Context, view *models.AvailabilityView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[models.MonthKey(view.Year, view.Month)] = view
	c.sets++
}

func (c *fakeViewCache) Invalidate(_ context.Context, year, month int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, models.MonthKey(year, month))
	c.invalidates++
}

func newTestService(store *fakeStore, cache ViewCache) *DefaultCalendarService {
	return &DefaultCalendarService{
		AvailabilityRepo: store,
		BookingRepo:      store,
		Cache:            cache,
	}
}

func sampleMonth() *models.MonthRecord {
	return &models.MonthRecord{
		ID: models.MonthKey(2024, 3),
		Days: []models.DayAvailability{
			{Day: 5, Slots: []string{"10:00", "11:00"}},
			{Day: 12, Slots: []string{"09:00"}},
			{Day: 20, Slots: []string{}},
		},
	}
}
