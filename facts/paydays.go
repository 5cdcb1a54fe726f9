package facts

import "github.com/govcal/fedcal-engine/fedcal"

// civPaydayAnchor is a known civilian payday: the biweekly Friday
// immediately before the first payday of the Unix epoch. Anchoring there
// keeps every in-coverage payday a non-negative multiple of the cycle.
const civPaydayAnchor = "1969-12-19"

// Calendar coverage for payday math begins at the epoch.
const paydayFloor = "1970-01-01"

func paydayRules() []fedcal.PaydayRule {
	floor := fedcal.MustDate(paydayFloor)
	return []fedcal.PaydayRule{
		{
			Population: fedcal.Civilian,
			Schedule:   fedcal.Biweekly,
			Anchor:     fedcal.MustDate(civPaydayAnchor),
			CycleDays:  14,
			Applicable: fedcal.Period{Start: floor}, // open-ended
		},
		{
			Population: fedcal.Military,
			Schedule:   fedcal.Semimonthly,
			Applicable: fedcal.Period{Start: floor},
		},
	}
}
