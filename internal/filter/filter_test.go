package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rooherbals/dms/internal/domain"
	"github.com/rooherbals/dms/internal/query"
)

func str(s string) *string { return &s }

func sampleDrivers() []domain.Driver {
	return []domain.Driver{
		{UserID: "1", FullName: "John Doe", Area: str("North"), Phone: str("12345"), IsActive: true},
		{UserID: "2", FullName: "Jane", Area: str("South"), Phone: str("67890"), IsActive: false},
	}
}

func TestDriversAreaMatch(t *testing.T) {
	got := Drivers(sampleDrivers(), State{Query: "nor", Status: query.StatusAll})

	require.Len(t, got, 1)
	require.Equal(t, domain.ID("1"), got[0].UserID)
}

func TestDriversStatusPartition(t *testing.T) {
	got := Drivers(sampleDrivers(), State{Query: "", Status: query.StatusInactive})

	require.Len(t, got, 1)
	require.Equal(t, domain.ID("2"), got[0].UserID)
}

func TestDriversPhoneMatchesVerbatim(t *testing.T) {
	got := Drivers(sampleDrivers(), State{Query: "678", Status: query.StatusAll})

	require.Len(t, got, 1)
	require.Equal(t, domain.ID("2"), got[0].UserID)
}

func TestDriversEmptyQueryMatchesAll(t *testing.T) {
	got := Drivers(sampleDrivers(), State{Query: "", Status: query.StatusAll})

	require.Len(t, got, 2)
}

func TestDriversNilFieldsNeverMatch(t *testing.T) {
	list := []domain.Driver{{UserID: "3", FullName: "Sunil", IsActive: true}}

	require.Empty(t, Drivers(list, State{Query: "north", Status: query.StatusAll}))
}

func TestDriversUnknownStatusAppliesNoPartition(t *testing.T) {
	got := Drivers(sampleDrivers(), State{Query: "", Status: query.Status("archived")})

	require.Len(t, got, 2)
}

func TestDriversIdempotent(t *testing.T) {
	st := State{Query: "jo", Status: query.StatusActive}

	once := Drivers(sampleDrivers(), st)
	twice := Drivers(once, st)
	require.Equal(t, once, twice)
}

func TestDriversFiltersCommute(t *testing.T) {
	list := sampleDrivers()
	st := State{Query: "j", Status: query.StatusInactive}

	combined := Drivers(list, st)
	textFirst := Drivers(Drivers(list, State{Query: st.Query, Status: query.StatusAll}), State{Status: st.Status})
	statusFirst := Drivers(Drivers(list, State{Status: st.Status}), State{Query: st.Query, Status: query.StatusAll})
	require.Equal(t, combined, textFirst)
	require.Equal(t, combined, statusFirst)
}

func TestDriversDoesNotMutateInput(t *testing.T) {
	list := sampleDrivers()
	snapshot := make([]domain.Driver, len(list))
	copy(snapshot, list)

	_ = Drivers(list, State{Query: "jane", Status: query.StatusActive})
	require.Equal(t, snapshot, list)
}

func TestProductsCaseFoldedMatch(t *testing.T) {
	list := []domain.Product{
		{ProductID: "P1", Name: "Herbal Shampoo", CategoryName: "Hair Care", IsActive: true},
		{ProductID: "P2", Name: "Green Tea", CategoryName: "Beverages", IsActive: true},
	}

	got := Products(list, State{Query: "HAIR", Status: query.StatusAll})
	require.Len(t, got, 1)
	require.Equal(t, domain.ID("P1"), got[0].ProductID)
}

func TestProductsPreserveInputOrder(t *testing.T) {
	list := []domain.Product{
		{ProductID: "P2", Name: "Aloe Gel", IsActive: true},
		{ProductID: "P1", Name: "Aloe Juice", IsActive: true},
	}

	got := Products(list, State{Query: "aloe", Status: query.StatusAll})
	require.Equal(t, domain.ID("P2"), got[0].ProductID)
	require.Equal(t, domain.ID("P1"), got[1].ProductID)
}
