package service

import (
	"context"
	"fmt"
	"time"

	"clinic-portal-backend/internal/cache"
	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
)

// TimeSlot is one bookable opening in a doctor's day.
type TimeSlot struct {
	Start      string            `json:"start"`
	End        string            `json:"end"`
	ShiftLabel models.ShiftLabel `json:"shift_label"`
}

// ShiftSlots groups a day's slots under one shift label.
type ShiftSlots struct {
	Shift models.ShiftLabel `json:"shift"`
	Slots []TimeSlot        `json:"slots"`
}

// SlotGenerator produces the list of free, bookable slots for a doctor on a
// date. Every slot it emits passes the same collision test bookings go
// through, so a returned slot is always individually bookable at that
// instant. Results are served through the availability cache when one is
// configured.
type SlotGenerator struct {
	schedule      ScheduleSource
	bookings      BookingSource
	cache         *cache.AvailabilityCache
	bufferMinutes int
}

// Ensure SlotGenerator implements SlotServiceInterface
var _ SlotServiceInterface = (*SlotGenerator)(nil)

// NewSlotGenerator creates a new SlotGenerator
func NewSlotGenerator(schedule ScheduleSource, bookings BookingSource, availabilityCache *cache.AvailabilityCache, bufferMinutes int) *SlotGenerator {
	return &SlotGenerator{
		schedule:      schedule,
		bookings:      bookings,
		cache:         availabilityCache,
		bufferMinutes: bufferMinutes,
	}
}

// AvailableSlots returns the free slots for the doctor on the date, ordered
// by start time. Sundays, dates with no contract coverage and unknown
// doctors all yield an empty list.
func (g *SlotGenerator) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]TimeSlot, error) {
	if scheduling.IsSunday(date) {
		return []TimeSlot{}, nil
	}

	var cached []TimeSlot
	if g.cache.GetSlots(ctx, doctorID, date, &cached) {
		return cached, nil
	}

	covered, err := g.schedule.HasActiveContract(doctorID, date)
	if err != nil {
		return nil, err
	}
	if !covered {
		return []TimeSlot{}, nil
	}

	templates, err := g.schedule.TemplatesFor(doctorID, scheduling.DayOfWeek(date))
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return []TimeSlot{}, nil
	}

	existing, err := g.bookings.GetActiveByDoctorAndDate(doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}

	slots := []TimeSlot{}
	for _, template := range templates {
		window, err := template.Window()
		if err != nil {
			return nil, fmt.Errorf("schedule template %s has invalid times: %w", template.ID, err)
		}
		for _, candidate := range scheduling.Steps(window, template.SlotDurationMinutes) {
			if overlapsAny(existing, candidate, g.bufferMinutes, nil) {
				continue
			}
			slots = append(slots, TimeSlot{
				Start:      scheduling.FormatTimeOfDay(candidate.Start),
				End:        scheduling.FormatTimeOfDay(candidate.End),
				ShiftLabel: template.ShiftLabel,
			})
		}
	}

	g.cache.SetSlots(ctx, doctorID, date, slots)
	return slots, nil
}

// AvailableSlotsByShift returns the same slots grouped by shift label,
// preserving the order shifts appear in the day.
func (g *SlotGenerator) AvailableSlotsByShift(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]ShiftSlots, error) {
	slots, err := g.AvailableSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	return GroupSlotsByShift(slots), nil
}

// GroupSlotsByShift buckets slots by their shift label in first-seen order.
func GroupSlotsByShift(slots []TimeSlot) []ShiftSlots {
	grouped := []ShiftSlots{}
	index := map[models.ShiftLabel]int{}
	for _, slot := range slots {
		i, ok := index[slot.ShiftLabel]
		if !ok {
			i = len(grouped)
			index[slot.ShiftLabel] = i
			grouped = append(grouped, ShiftSlots{Shift: slot.ShiftLabel})
		}
		grouped[i].Slots = append(grouped[i].Slots, slot)
	}
	return grouped
}
