package solver

import (
	"testing"
)

func TestAllTechniquesOrder(t *testing.T) {
	want := []string{
		"Propagation",
		"Hidden Single",
		"Locked Candidates",
		"Naked Pair",
		"Hidden Pair",
		"Naked Triple",
		"Hidden Triple",
		"Naked Quad",
		"Hidden Quad",
		"X-Wing",
		"Y-Wing",
		"Skyscraper",
	}
	techniques := AllTechniques()
	if len(techniques) != len(want) {
		t.Fatalf("got %d techniques, want %d", len(techniques), len(want))
	}
	for i, technique := range techniques {
		if technique.Name() != want[i] {
			t.Errorf("technique %d is %q, want %q", i, technique.Name(), want[i])
		}
	}
}

func TestTechniqueTiersAreOrdered(t *testing.T) {
	techniques := AllTechniques()
	for i := 1; i < len(techniques); i++ {
		if techniques[i].Tier() < techniques[i-1].Tier() {
			t.Errorf("%s (%s) is easier than the preceding %s (%s)",
				techniques[i].Name(), techniques[i].Tier(),
				techniques[i-1].Name(), techniques[i-1].Tier())
		}
	}
}

func TestFundamentalTechniques(t *testing.T) {
	techniques := FundamentalTechniques()
	if len(techniques) != 2 {
		t.Fatalf("got %d fundamental techniques, want 2", len(techniques))
	}
	for _, technique := range techniques {
		if technique.Tier() != TierFundamental {
			t.Errorf("%s has tier %s", technique.Name(), technique.Tier())
		}
	}
}

func TestTierStrings(t *testing.T) {
	cases := []struct {
		tier TechniqueTier
		want string
	}{
		{TierFundamental, "fundamental"},
		{TierBasic, "basic"},
		{TierIntermediate, "intermediate"},
		{TierUpperIntermediate, "upper intermediate"},
		{TierExpert, "expert"},
		{TechniqueTier(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.tier.String(); got != c.want {
			t.Errorf("tier %d: got %q, want %q", int(c.tier), got, c.want)
		}
	}
}
