package timetable

import (
	"github.com/mwatari/lesson_scheduler/internal/model"
)

const (
	SlotDuration  = 45 // minutes
	BreakDuration = 10 // minutes
	SlotsPerBreak = 2  // a break is inserted after every 2 consecutive slots
	LunchStart    = "12:10"
	LunchEnd      = "13:00"
)

type ItemType string

const (
	ItemSlot  ItemType = "slot"
	ItemBreak ItemType = "break"
	ItemLunch ItemType = "lunch"
)

// TimeItem is one row of a day's timeline. Slot items carry the slot record
// and a 1-based ordinal counted over lesson slots only; break and lunch items
// carry neither.
type TimeItem struct {
	Type      ItemType          `json:"type"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Slot      *model.LessonSlot `json:"slot,omitempty"`
	Ordinal   int               `json:"ordinal,omitempty"`
}

// Generate produces the ordered timeline for a date: lesson slots, breaks
// and the lunch block, from the day's start time up to its end preset.
//
// Existing records for (date, startTime) are reused verbatim so that
// regeneration preserves booking history; positions without a record get a
// synthesized slot with status blocked. The result is deterministic for a
// fixed input, and malformed settings yield an empty timeline.
func Generate(date string, settings *model.DaySettings, existing []*model.LessonSlot) []TimeItem {
	start := settings.StartTime
	if start == "" {
		start = model.DefaultStartTime
	}
	endMin := TimeToMinutes(string(settings.EndTimeMode))
	if TimeToMinutes(start) < 0 || endMin < 0 {
		return nil
	}

	lunchStartMin := TimeToMinutes(LunchStart)
	lunchEndMin := TimeToMinutes(LunchEnd)

	byStart := make(map[string]*model.LessonSlot, len(existing))
	for _, s := range existing {
		if s.Date == date {
			byStart[s.StartTime] = s
		}
	}

	var items []TimeItem
	cur := start
	consecutive := 0
	ordinal := 0

	for {
		curMin := TimeToMinutes(cur)
		slotEndMin := curMin + SlotDuration
		if slotEndMin > endMin {
			break
		}

		if !settings.LunchBreakOpen {
			// Cursor inside the lunch window: emit the block once and jump
			// past it. The interruption resets the break cadence.
			if curMin >= lunchStartMin && curMin < lunchEndMin {
				if len(items) == 0 || items[len(items)-1].Type != ItemLunch {
					items = append(items, TimeItem{Type: ItemLunch, StartTime: LunchStart, EndTime: LunchEnd})
					consecutive = 0
				}
				cur = LunchEnd
				continue
			}
			// A slot straddling the window start is never emitted partially.
			if curMin < lunchStartMin && slotEndMin > lunchStartMin {
				items = append(items, TimeItem{Type: ItemLunch, StartTime: LunchStart, EndTime: LunchEnd})
				cur = LunchEnd
				consecutive = 0
				continue
			}
		} else {
			// Open lunch: exactly one full slot may be carved from the
			// window. Afterwards the cursor lands on the window end.
			if curMin >= lunchStartMin && curMin < lunchEndMin {
				if lunchEndMin-curMin >= SlotDuration {
					end := MinutesToTime(curMin + SlotDuration)
					ordinal++
					items = append(items, TimeItem{
						Type:      ItemSlot,
						StartTime: cur,
						EndTime:   end,
						Slot:      slotAt(date, cur, end, settings, byStart),
						Ordinal:   ordinal,
					})
					consecutive++
					cur = end
				}
				if TimeToMinutes(cur) < lunchEndMin {
					cur = LunchEnd
				}
				if cur == LunchEnd {
					consecutive = 1
				}
				continue
			}
			if curMin < lunchStartMin && slotEndMin > lunchStartMin {
				cur = LunchStart
				continue
			}
		}

		end := MinutesToTime(slotEndMin)
		ordinal++
		items = append(items, TimeItem{
			Type:      ItemSlot,
			StartTime: cur,
			EndTime:   end,
			Slot:      slotAt(date, cur, end, settings, byStart),
			Ordinal:   ordinal,
		})
		consecutive++
		cur = end

		if consecutive >= SlotsPerBreak {
			breakStartMin := TimeToMinutes(cur)
			breakEndMin := breakStartMin + BreakDuration
			if breakEndMin < endMin {
				lunchJustEnded := cur == LunchEnd
				// A break never sits flush against the lunch window on
				// either side.
				touchesLunch := breakStartMin < lunchEndMin && breakEndMin >= lunchStartMin
				if !lunchJustEnded && !touchesLunch {
					items = append(items, TimeItem{Type: ItemBreak, StartTime: cur, EndTime: MinutesToTime(breakEndMin)})
					cur = MinutesToTime(breakEndMin)
				}
			}
			consecutive = 0
		}
	}

	return items
}

// slotAt reuses the persisted record for the position or synthesizes a fresh
// blocked slot with the deterministic ID.
func slotAt(date, start, end string, settings *model.DaySettings, byStart map[string]*model.LessonSlot) *model.LessonSlot {
	if s, ok := byStart[start]; ok {
		return s
	}
	return &model.LessonSlot{
		ID:        SlotID(date, start),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		RoomName:  settings.DefaultRoom,
		TeacherID: model.DefaultTeacherID,
		Status:    model.SlotStatusBlocked,
	}
}

// Summary counts slot items by status. Break and lunch rows are ignored.
type Summary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

func DaySummary(items []TimeItem) Summary {
	var sum Summary
	for _, item := range items {
		if item.Type != ItemSlot || item.Slot == nil {
			continue
		}
		sum.Total++
		switch item.Slot.Status {
		case model.SlotStatusAvailable:
			sum.Available++
		case model.SlotStatusConfirmed:
			sum.Confirmed++
		case model.SlotStatusPending:
			sum.Pending++
		}
	}
	return sum
}
