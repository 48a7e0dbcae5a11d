package citation

import "strconv"

const recentYearFloor = 2015

// YearStats summarizes the publication years found in a reference list.
type YearStats struct {
	MinYear   int `json:"min_year"`
	MaxYear   int `json:"max_year"`
	YearRange int `json:"year_range"`
	Recent    int `json:"recent_references"`
}

// Summary is the agent-facing condensation of a citation extraction.
type Summary struct {
	TotalCitations  int       `json:"total_citations"`
	TotalReferences int       `json:"total_references"`
	Style           string    `json:"citation_style"`
	HasBibliography bool      `json:"has_bibliography"`
	HeavilyCited    bool      `json:"heavily_cited"`
	ReferenceYears  YearStats `json:"reference_years"`
}

// Summarize condenses a full extraction result.
func Summarize(res *Result) Summary {
	return Summary{
		TotalCitations:  res.CitationCount,
		TotalReferences: res.ReferenceCount,
		Style:           res.Style,
		HasBibliography: res.ReferenceCount > 0,
		HeavilyCited:    res.CitationCount > 20,
		ReferenceYears:  referenceYears(res.References),
	}
}

// referenceYears collects parseable years, stripping disambiguating
// letter suffixes like "2020a".
func referenceYears(refs []Entry) YearStats {
	var years []int
	for _, ref := range refs {
		if len(ref.Year) < 4 {
			continue
		}
		y, err := strconv.Atoi(ref.Year[:4])
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	if len(years) == 0 {
		return YearStats{}
	}

	stats := YearStats{MinYear: years[0], MaxYear: years[0]}
	for _, y := range years {
		if y < stats.MinYear {
			stats.MinYear = y
		}
		if y > stats.MaxYear {
			stats.MaxYear = y
		}
		if y >= recentYearFloor {
			stats.Recent++
		}
	}
	stats.YearRange = stats.MaxYear - stats.MinYear
	return stats
}
