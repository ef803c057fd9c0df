package listings

import (
	"testing"
	"time"

	"github.com/Adheeb11/PropVista/models"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

func fixtures() []models.Property {
	return []models.Property{
		{ID: 1, Title: "Sea Breeze Apartment", City: "Mumbai", Type: models.TypeRent,
			Price: 18000, Features: models.FeatureList{"Gym", "Parking", "Pool"}, CreatedAt: day(1)},
		{ID: 2, Title: "Green Villa", City: "Bengaluru", Type: models.TypeBuy,
			Price: 12000000, Features: models.FeatureList{"Garden"}, CreatedAt: day(2)},
		{ID: 3, Title: "City Gym Loft", City: "Mumbai", Type: models.TypeRent,
			Price: 25000, Features: models.FeatureList{"Gym"}, CreatedAt: day(3)},
		{ID: 4, Title: "Plot near highway", City: "Pune", Type: models.TypePlot,
			Price: 900000, CreatedAt: day(4)},
	}
}

func ids(props []models.Property) []int {
	out := make([]int, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []models.Property, want ...int) bool {
	got := ids(a)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func f64(v float64) *float64 { return &v }

func TestFilterTypeAndMaxPrice(t *testing.T) {
	got := Apply(fixtures(), Filter{Type: models.TypeRent, MaxPrice: f64(20000)}, SortByDate)
	if !equalIDs(got, 1) {
		t.Errorf("got %v, want [1]", ids(got))
	}
}

func TestFilterAmenitiesSuperset(t *testing.T) {
	got := Apply(fixtures(), Filter{Amenities: []string{"Gym", "Parking"}}, SortByDate)
	if !equalIDs(got, 1) {
		t.Errorf("got %v, want [1]", ids(got))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	got := Apply(fixtures(), Filter{Search: "mumbai"}, SortByDate)
	if !equalIDs(got, 3, 1) {
		t.Errorf("got %v, want [3 1]", ids(got))
	}
	// matches a feature name too
	got = Apply(fixtures(), Filter{Search: "garden"}, SortByDate)
	if !equalIDs(got, 2) {
		t.Errorf("got %v, want [2]", ids(got))
	}
}

func TestFilterCityExactMatch(t *testing.T) {
	if got := Apply(fixtures(), Filter{City: "mumbai"}, SortByDate); len(got) != 0 {
		t.Errorf("city match must be exact, got %v", ids(got))
	}
	if got := Apply(fixtures(), Filter{City: "Mumbai"}, SortByDate); len(got) != 2 {
		t.Errorf("got %v, want two Mumbai listings", ids(got))
	}
}

func TestFilterBoundsInclusive(t *testing.T) {
	got := Apply(fixtures(), Filter{MinPrice: f64(18000), MaxPrice: f64(18000)}, SortByDate)
	if !equalIDs(got, 1) {
		t.Errorf("bounds should be inclusive, got %v", ids(got))
	}
}

func TestConjunctiveSubset(t *testing.T) {
	props := fixtures()
	filter := Filter{City: "Mumbai", Type: models.TypeRent, MinPrice: f64(10000), Search: "gym"}
	got := Apply(props, filter, SortByPrice)
	if len(got) > len(props) {
		t.Fatal("output larger than input")
	}
	for i := range got {
		if !filter.Match(&got[i]) {
			t.Errorf("property %d violates a predicate", got[i].ID)
		}
	}
}

func TestSortByPriceAscendingStable(t *testing.T) {
	props := fixtures()
	// two listings with equal price keep their relative order
	props = append(props, models.Property{ID: 5, Title: "Twin A", Price: 18000, CreatedAt: day(5)})
	got := Apply(props, Filter{}, SortByPrice)
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Fatalf("not non-decreasing at %d: %v", i, ids(got))
		}
	}
	if !equalIDs(got, 1, 5, 3, 4, 2) {
		t.Errorf("got %v, want [1 5 3 4 2]", ids(got))
	}
}

func TestSortByDateNewestFirst(t *testing.T) {
	got := Apply(fixtures(), Filter{}, SortByDate)
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("not newest-first at %d: %v", i, ids(got))
		}
	}
}

func TestEmptyResultIsNotNil(t *testing.T) {
	got := Apply(fixtures(), Filter{City: "Atlantis"}, SortByDate)
	if got == nil {
		t.Fatal("empty result must be distinguishable from not-loaded")
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", ids(got))
	}
}

func TestInputNotMutated(t *testing.T) {
	props := fixtures()
	Apply(props, Filter{}, SortByPrice)
	if !equalIDs(props, 1, 2, 3, 4) {
		t.Errorf("input reordered: %v", ids(props))
	}
}

func TestParseSortMode(t *testing.T) {
	if ParseSortMode("price") != SortByPrice {
		t.Error("price should parse")
	}
	if ParseSortMode("") != SortByDate || ParseSortMode("bogus") != SortByDate {
		t.Error("default should be date")
	}
}

func TestCountByType(t *testing.T) {
	if n := CountByType(fixtures(), models.TypeRent); n != 2 {
		t.Errorf("got %d rent listings, want 2", n)
	}
}
