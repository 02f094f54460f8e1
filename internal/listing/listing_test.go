package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SnakeO/dominion-llc/internal/catalog"
)

func sample() []catalog.Property {
	return []catalog.Property{
		{ID: "a", Beds: 3, Status: catalog.StatusRented, Price: catalog.NewAmount(79000)},
		{ID: "b", Beds: 2, Status: catalog.StatusAvailable, Price: catalog.NewAmount(62000)},
		{ID: "c", Beds: 3, Status: catalog.StatusAvailable},
		{ID: "d", Beds: 4, Price: catalog.NewAmount(189000)},
		{ID: "e", Beds: 3, Status: catalog.StatusAvailable, Price: catalog.NewAmount(145000)},
	}
}

func ids(props []catalog.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func intp(n int) *int { return &n }

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{name: "no criteria keeps order", c: Criteria{}, want: []string{"a", "b", "c", "d", "e"}},
		{name: "beds exact match", c: Criteria{Beds: intp(3)}, want: []string{"a", "c", "e"}},
		{name: "status exact match", c: Criteria{Status: catalog.StatusAvailable}, want: []string{"b", "c", "e"}},
		{name: "beds and status intersect", c: Criteria{Beds: intp(3), Status: catalog.StatusAvailable}, want: []string{"c", "e"}},
		{name: "no match", c: Criteria{Beds: intp(7)}, want: []string{}},
		{name: "status is case sensitive", c: Criteria{Status: "rented"}, want: []string{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ids(Apply(sample(), tc.c)))
		})
	}
}

func TestApplySortTreatsMissingPriceAsZero(t *testing.T) {
	t.Parallel()

	asc := Apply(sample(), Criteria{Sort: Ascending})
	require.Equal(t, []string{"c", "b", "a", "e", "d"}, ids(asc))

	desc := Apply(sample(), Criteria{Sort: Descending})
	require.Equal(t, []string{"d", "e", "a", "b", "c"}, ids(desc))
}

func TestAscendingThenDescendingReverses(t *testing.T) {
	t.Parallel()

	c := Criteria{Status: catalog.StatusAvailable, Sort: Ascending}
	asc := ids(Apply(sample(), c))
	c.Sort = Descending
	desc := ids(Apply(sample(), c))

	require.Len(t, desc, len(asc))
	for i := range asc {
		require.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := sample()
	_ = Apply(in, Criteria{Sort: Descending})
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(in))
}

func TestResetRestoresCatalogOrder(t *testing.T) {
	t.Parallel()

	c := Criteria{Beds: intp(3), Sort: Descending}
	require.Equal(t, Filtered, c.State())

	c = Reset()
	require.Equal(t, Unfiltered, c.State())
	require.Equal(t, ids(sample()), ids(Apply(sample(), c)))
}

func TestParseCriteria(t *testing.T) {
	t.Parallel()

	c := ParseCriteria(url.Values{"beds": {"3"}, "status": {"Rented"}, "sort": {"DESC"}})
	require.NotNil(t, c.Beds)
	require.Equal(t, 3, *c.Beds)
	require.Equal(t, "Rented", c.Status)
	require.Equal(t, Descending, c.Sort)
	require.Equal(t, "beds=3&sort=desc&status=Rented", c.Query())

	bad := ParseCriteria(url.Values{"beds": {"three"}, "sort": {"sideways"}})
	require.True(t, bad.IsZero())
	require.Empty(t, bad.Query())

	zero := ParseCriteria(url.Values{"beds": {"0"}})
	require.NotNil(t, zero.Beds, "zero bedrooms is a valid filter")
}

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	o := BuildOptions(sample(), Criteria{Beds: intp(3), Sort: Ascending})

	var bedValues []string
	for _, opt := range o.Beds {
		bedValues = append(bedValues, opt.Value)
	}
	require.Equal(t, []string{"", "2", "3", "4"}, bedValues)
	require.True(t, o.Beds[2].Selected)
	require.False(t, o.Beds[0].Selected)

	require.Equal(t, "", o.Status[0].Value)
	require.True(t, o.Status[0].Selected)
	require.Equal(t, catalog.StatusRented, o.Status[1].Value)
	require.Equal(t, catalog.StatusAvailable, o.Status[2].Value)

	require.True(t, o.Sort[1].Selected)
}

func TestParseCriteriaResetWins(t *testing.T) {
	c := ParseCriteria(url.Values{ParamBeds: {"3"}, ParamSort: {"desc"}, ParamReset: {"1"}})
	require.True(t, c.IsZero())
	require.Equal(t, Unfiltered, c.State())
	require.Equal(t, "", c.Query())
}
