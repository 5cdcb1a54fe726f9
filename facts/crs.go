package facts

import "github.com/govcal/fedcal-engine/fedcal"

// crRecord is one continuing-resolution interval. Intervals represent
// stretches with no change in affected departments. exempt lists the
// departments already under full-year appropriations during the interval;
// every other department existing at the time was on the CR.
type crRecord struct {
	start, end string
	exempt     []fedcal.Department
}

// Continuing-resolution intervals, FY1999-FY2024. CR data do not exist for
// earlier fiscal years; see the engine's CRDataStart handling.
var continuingResolutions = []crRecord{
	{start: "1998-10-01", end: "1998-10-07"},
	{start: "1998-10-08", end: "1998-10-17", exempt: depts(fedcal.DOE)},
	{start: "1998-10-18", end: "1998-10-21", exempt: depts(fedcal.DOD, fedcal.DOE)},
	{start: "1999-10-01", end: "1999-10-09", exempt: depts(fedcal.DOE, fedcal.USDT)},
	{start: "1999-10-10", end: "1999-10-20", exempt: depts(fedcal.DOE, fedcal.DOT, fedcal.USDT)},
	{start: "1999-10-21", end: "1999-10-21",
		exempt: depts(fedcal.DOE, fedcal.DOT, fedcal.HUD, fedcal.USDT, fedcal.VA)},
	{start: "1999-10-23", end: "1999-10-25",
		exempt: depts(fedcal.DOE, fedcal.DOT, fedcal.HUD, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "1999-10-26", end: "1999-11-29",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOT, fedcal.HUD, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "2000-10-01", end: "2000-10-11", exempt: depts(fedcal.DOD)},
	{start: "2000-10-12", end: "2000-10-23",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOI, fedcal.DOT)},
	{start: "2000-10-24", end: "2000-10-27",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOI, fedcal.DOT, fedcal.HUD, fedcal.VA)},
	{start: "2000-10-28", end: "2000-11-06",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOI, fedcal.DOT, fedcal.HUD, fedcal.USDA, fedcal.VA)},
	{start: "2000-11-07", end: "2000-12-21",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOI, fedcal.DOS, fedcal.DOT, fedcal.HUD, fedcal.USDA, fedcal.VA)},
	{start: "2001-10-01", end: "2001-11-05"},
	{start: "2001-11-06", end: "2001-11-12", exempt: depts(fedcal.DOI)},
	{start: "2001-11-13", end: "2001-11-26", exempt: depts(fedcal.DOE, fedcal.DOI, fedcal.USDT)},
	{start: "2001-11-27", end: "2001-11-27",
		exempt: depts(fedcal.DOE, fedcal.DOI, fedcal.HUD, fedcal.USDT, fedcal.VA)},
	{start: "2001-11-29", end: "2001-12-18",
		exempt: depts(fedcal.DOC, fedcal.DOE, fedcal.DOI, fedcal.DOJ, fedcal.DOS, fedcal.HUD, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "2001-12-19", end: "2002-01-10",
		exempt: depts(fedcal.DOC, fedcal.DOE, fedcal.DOI, fedcal.DOJ, fedcal.DOS, fedcal.DOT, fedcal.HUD, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "2002-10-01", end: "2002-10-22"},
	{start: "2002-10-23", end: "2003-02-20", exempt: depts(fedcal.DOD)},
	{start: "2003-10-01", end: "2003-11-10", exempt: depts(fedcal.DHS, fedcal.DOD)},
	{start: "2003-11-11", end: "2003-12-01", exempt: depts(fedcal.DHS, fedcal.DOD, fedcal.DOI)},
	{start: "2003-12-02", end: "2004-01-23",
		exempt: depts(fedcal.DHS, fedcal.DOD, fedcal.DOE, fedcal.DOI)},
	{start: "2004-10-01", end: "2004-10-18", exempt: depts(fedcal.DOD)},
	{start: "2004-10-19", end: "2004-12-08", exempt: depts(fedcal.DHS, fedcal.DOD)},
	{start: "2005-10-01", end: "2005-10-18", exempt: depts(fedcal.DOI)},
	{start: "2005-10-19", end: "2005-11-10", exempt: depts(fedcal.DHS, fedcal.DOI)},
	{start: "2005-11-11", end: "2005-11-14", exempt: depts(fedcal.DHS, fedcal.DOI, fedcal.USDA)},
	{start: "2005-11-15", end: "2005-11-19",
		exempt: depts(fedcal.DHS, fedcal.DOI, fedcal.DOS, fedcal.USDA)},
	{start: "2005-11-20", end: "2005-11-22",
		exempt: depts(fedcal.DHS, fedcal.DOE, fedcal.DOI, fedcal.DOS, fedcal.USDA)},
	{start: "2005-11-23", end: "2005-11-30",
		exempt: depts(fedcal.DHS, fedcal.DOC, fedcal.DOE, fedcal.DOI, fedcal.DOJ, fedcal.DOS, fedcal.USDA)},
	{start: "2005-12-01", end: "2005-12-30",
		exempt: depts(fedcal.DHS, fedcal.DOC, fedcal.DOE, fedcal.DOI, fedcal.DOJ, fedcal.DOS, fedcal.DOT, fedcal.HUD, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "2006-10-01", end: "2006-10-04", exempt: depts(fedcal.DOD)},
	{start: "2006-10-05", end: "2007-09-30", exempt: depts(fedcal.DHS, fedcal.DOD)},
	{start: "2007-10-01", end: "2007-11-13"},
	{start: "2007-11-14", end: "2007-12-26", exempt: depts(fedcal.DOD)},
	{start: "2008-10-01", end: "2009-03-11", exempt: depts(fedcal.DHS, fedcal.DOD, fedcal.VA)},
	{start: "2009-10-01", end: "2009-10-21"},
	{start: "2009-10-22", end: "2009-10-28", exempt: depts(fedcal.USDA)},
	{start: "2009-10-29", end: "2009-10-29", exempt: depts(fedcal.DHS, fedcal.DOE, fedcal.USDA)},
	{start: "2009-10-31", end: "2009-12-18",
		exempt: depts(fedcal.DHS, fedcal.DOE, fedcal.DOI, fedcal.USDA)},
	{start: "2009-12-19", end: "2009-12-19",
		exempt: depts(fedcal.DHS, fedcal.DOC, fedcal.DOE, fedcal.DOI, fedcal.DOJ, fedcal.DOL, fedcal.DOS, fedcal.DOT, fedcal.ED, fedcal.HUD, fedcal.IA, fedcal.PRES, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "2010-10-01", end: "2011-11-18"},
	{start: "2011-11-19", end: "2011-12-23",
		exempt: depts(fedcal.DOC, fedcal.DOJ, fedcal.DOT, fedcal.HUD, fedcal.USDA)},
	{start: "2012-10-01", end: "2013-03-26"},
	{start: "2013-03-27", end: "2013-09-30",
		exempt: depts(fedcal.DHS, fedcal.DOC, fedcal.DOD, fedcal.DOJ, fedcal.USDA, fedcal.VA)},
	{start: "2013-10-17", end: "2014-01-17"},
	{start: "2014-10-01", end: "2014-12-16"},
	{start: "2014-12-17", end: "2015-03-04",
		exempt: depts(fedcal.DOC, fedcal.DOD, fedcal.DOE, fedcal.DOI, fedcal.DOJ, fedcal.DOL, fedcal.DOS, fedcal.DOT, fedcal.ED, fedcal.HUD, fedcal.IA, fedcal.PRES, fedcal.USDA, fedcal.USDT, fedcal.VA)},
	{start: "2015-10-01", end: "2015-12-18"},
	{start: "2016-10-01", end: "2017-05-05", exempt: depts(fedcal.VA)},
	{start: "2017-10-01", end: "2018-01-20"},
	{start: "2018-01-22", end: "2018-03-23"},
	{start: "2018-10-01", end: "2018-12-21",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOL, fedcal.ED, fedcal.HHS, fedcal.VA)},
	{start: "2019-02-10", end: "2019-02-15",
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOL, fedcal.ED, fedcal.HHS, fedcal.VA)},
	{start: "2019-10-01", end: "2019-12-20"},
	{start: "2020-10-01", end: "2020-12-27"},
	{start: "2021-10-01", end: "2022-03-15"},
	{start: "2022-10-01", end: "2022-12-29"},
	{start: "2023-10-01", end: "2024-01-19"},
}
