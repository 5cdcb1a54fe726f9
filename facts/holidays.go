package facts

import "github.com/govcal/fedcal-engine/fedcal"

// Out-of-cycle holidays granted by presidential proclamation or executive
// order, nearly all Christmas Eves. Source: Federal Times compilation.
type proclamationRecord struct {
	date string
	name string
}

var proclamationHolidays = []proclamationRecord{
	{"1973-12-24", "Christmas Eve (proclaimed)"},
	{"1973-12-31", "New Year's Eve (proclaimed)"},
	{"1979-12-24", "Christmas Eve (proclaimed)"},
	{"2001-12-24", "Christmas Eve (proclaimed)"},
	{"2007-12-24", "Christmas Eve (proclaimed)"},
	{"2012-12-24", "Christmas Eve (proclaimed)"},
	{"2014-12-26", "Day after Christmas (proclaimed)"},
	{"2015-12-24", "Christmas Eve (proclaimed)"},
	{"2018-12-24", "Christmas Eve (proclaimed)"},
	{"2019-12-24", "Christmas Eve (proclaimed)"},
	{"2020-12-24", "Christmas Eve (proclaimed)"},
}

func proclaimedRecords() []fedcal.HolidayRecord {
	out := make([]fedcal.HolidayRecord, 0, len(proclamationHolidays))
	for _, p := range proclamationHolidays {
		legal := fedcal.MustDate(p.date)
		out = append(out, fedcal.HolidayRecord{
			Date:     legal,
			Name:     p.name,
			Kind:     fedcal.Proclaimed,
			Observed: legal, // proclamations name the day off directly
		})
	}
	return out
}
