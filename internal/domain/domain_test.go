package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "07:00", want: 420},
		{in: "19:55", want: 19*60 + 55},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "08:40:00", want: 8*60 + 40},
		{in: "08:40:59", want: 8*60 + 40},
		{in: " 09:30 ", want: 9*60 + 30},
		{in: "7:00", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
		{in: "+7:00", wantErr: true},
		{in: "-0:30", wantErr: true},
		{in: "07:+5", wantErr: true},
		{in: "07:00:zz", wantErr: true},
		{in: "07:00:99", wantErr: true},
		{in: "07:00:", wantErr: true},
		{in: "07:00:00:00", wantErr: true},
		{in: "０7:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	var v struct {
		Start TimeOfDay `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"13:20"}`), &v))
	assert.Equal(t, NewTimeOfDay(13, 20), v.Start)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"13:20"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"1:20pm"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"start":"07:00:zz"}`), &v))
}

func TestOverlaps(t *testing.T) {
	m := MustTimeOfDay
	assert.True(t, Overlaps(m("07:00"), m("09:00"), m("08:00"), m("10:00")))
	assert.True(t, Overlaps(m("08:00"), m("10:00"), m("07:00"), m("09:00")))
	assert.False(t, Overlaps(m("07:00"), m("09:00"), m("09:00"), m("11:00")))
	assert.False(t, Overlaps(m("09:00"), m("11:00"), m("07:00"), m("09:00")))
	assert.True(t, Overlaps(m("07:00"), m("12:00"), m("08:40"), m("09:30")))
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]Weekday{
		"Monday": Monday,
		"monday": Monday,
		"Senin":  Monday,
		"jumat":  Friday,
		"Jum'at": Friday,
		"Sabtu":  Saturday,
	} {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseWeekday("Sunday")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 5, Saturday.Index())
	assert.Equal(t, -1, Weekday("Minggu").Index())
	assert.False(t, Weekday("Sunday").Valid())
	assert.Equal(t, "Rabu", Wednesday.Indonesian())
}

func TestDefaultCalendar(t *testing.T) {
	c := DefaultCalendar()
	require.NoError(t, c.Validate())
	require.Len(t, c.Slots, 14)
	assert.Equal(t, WorkingDays, c.Days)
	assert.Equal(t, "07:00-07:50", c.Slots[0].String())
	assert.Equal(t, "12:30-13:20", c.Slots[6].String())
	assert.Equal(t, "19:55-20:45", c.Slots[13].String())
	for i, s := range c.Slots {
		assert.Equal(t, i+1, s.Number)
	}

	_, ok := c.SlotAt(MustTimeOfDay("12:10"))
	assert.False(t, ok, "lunch break is not a slot")
	s, ok := c.SlotAt(MustTimeOfDay("15:30"))
	require.True(t, ok)
	assert.Equal(t, 10, s.Number)
}

func TestCalendar_SlotSpan(t *testing.T) {
	c := DefaultCalendar()
	first, last, ok := c.SlotSpan(MustTimeOfDay("07:00"), MustTimeOfDay("09:30"))
	require.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)

	_, _, ok = c.SlotSpan(MustTimeOfDay("17:10"), MustTimeOfDay("18:15"))
	assert.False(t, ok)
}

func TestCalendar_Validate(t *testing.T) {
	slot := func(n int, s, e string) TimeSlot {
		return TimeSlot{Number: n, Start: MustTimeOfDay(s), End: MustTimeOfDay(e)}
	}
	tests := []struct {
		name string
		cal  Calendar
	}{
		{"no days", Calendar{Slots: DefaultSlots()}},
		{"unknown day", Calendar{Days: []Weekday{"Sunday"}, Slots: DefaultSlots()}},
		{"duplicate day", Calendar{Days: []Weekday{Monday, Monday}, Slots: DefaultSlots()}},
		{"no slots", Calendar{Days: WorkingDays}},
		{"inverted", Calendar{Days: WorkingDays, Slots: []TimeSlot{slot(1, "09:00", "08:00")}}},
		{"overlapping", Calendar{Days: WorkingDays, Slots: []TimeSlot{slot(1, "07:00", "08:00"), slot(2, "07:30", "08:30")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cal.Validate(), ErrInvalidSlotCalendar)
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "schedule_not_found", Code(ErrScheduleNotFound))
	assert.Equal(t, "invalid_day", Code(fmt.Errorf("update: %w", ErrInvalidDay)))
	assert.Empty(t, Code(fmt.Errorf("boom")))
	assert.Empty(t, Code(nil))
}
