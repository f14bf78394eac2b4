package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartment-availability-backend/internal/model"
)

func TestSummarize_SingleLocation(t *testing.T) {
	ds := fixedDataset()
	res := Search(ds, Request{Location: model.LocationKadri, Date: date(time.April, 15), GuestCount: 2, FlexibilityDays: 2})

	s := Summarize(ds, res)

	assert.False(t, s.Empty())
	assert.Equal(t, date(time.April, 13), s.From)
	assert.Equal(t, date(time.April, 17), s.To)
	require.Len(t, s.Flats, 3)

	assert.Equal(t, "101", s.Flats[0].Key)
	assert.Len(t, s.Flats[0].AvailableDates, 5)
	assert.True(t, s.Flats[0].OnTargetDate)

	assert.Equal(t, "202", s.Flats[1].Key)
	assert.Equal(t, []time.Time{date(time.April, 13), date(time.April, 17)}, s.Flats[1].AvailableDates)
	assert.False(t, s.Flats[1].OnTargetDate)

	assert.Equal(t, "102", s.Flats[2].Key)
	assert.Equal(t, 2, s.Flats[2].Flat.Capacity)
	assert.True(t, s.Flats[2].OnTargetDate)
}

func TestSummarize_AllLocationsKeepsSameIDsApart(t *testing.T) {
	ds := fixedDataset()
	res := Search(ds, Request{Location: model.LocationAll, Date: date(time.April, 14), GuestCount: 1, FlexibilityDays: 1})

	s := Summarize(ds, res)

	keys := make([]string, 0, len(s.Flats))
	for _, f := range s.Flats {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"kadri-101", "kadri-202", "bejai-101", "bejai-201", "kadri-102"}, keys)

	assert.Equal(t, model.LocationKadri, s.Flats[0].Flat.Location)
	assert.Equal(t, 3, s.Flats[0].Flat.Capacity)
	assert.Equal(t, model.LocationBejai, s.Flats[2].Flat.Location)
	assert.Equal(t, 2, s.Flats[2].Flat.Capacity)
	assert.Equal(t, []time.Time{date(time.April, 14)}, s.Flats[3].AvailableDates)
}

func TestSummarize_Empty(t *testing.T) {
	ds := fixedDataset()
	res := Search(ds, Request{Location: model.LocationBejai, Date: date(time.May, 10), GuestCount: 1, FlexibilityDays: 2})

	s := Summarize(ds, res)

	assert.True(t, s.Empty())
	assert.Equal(t, date(time.May, 8), s.From)
	assert.Equal(t, date(time.May, 12), s.To)
}
