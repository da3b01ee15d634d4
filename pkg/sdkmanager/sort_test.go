package sdkmanager

import "testing"

func TestSortPackages(t *testing.T) {
	catalog := []*Package{
		{RawName: "b"},
		{RawName: "A"},
		{RawName: "c"},
	}

	tests := []struct {
		name      string
		ascending bool
		want      []string
	}{
		{"ascending is case-insensitive", true, []string{"A", "b", "c"}},
		{"descending is the reverse", false, []string{"c", "b", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := SortPackages(catalog, tt.ascending)
			for i, want := range tt.want {
				if sorted[i].RawName != want {
					t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].RawName, want)
				}
			}
		})
	}
}

func TestSortPackagesDoesNotMutate(t *testing.T) {
	catalog := []*Package{
		{RawName: "b", State: StateInstalled},
		{RawName: "A", State: StateAvailable},
	}

	SortPackages(catalog, true)

	if catalog[0].RawName != "b" || catalog[1].RawName != "A" {
		t.Error("SortPackages reordered its input")
	}
	if catalog[0].State != StateInstalled || catalog[1].State != StateAvailable {
		t.Error("SortPackages changed entry state")
	}
}

func TestSortPackagesEmpty(t *testing.T) {
	if got := SortPackages(nil, false); len(got) != 0 {
		t.Errorf("sorting an empty catalog returned %d entries", len(got))
	}
}
