package util

import "testing"

func TestParsePageParams(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults on empty", "", "", 1, 20},
		{"valid values", "3", "50", 3, 50},
		{"zero page falls back", "0", "10", 1, 10},
		{"negative page falls back", "-2", "10", 1, 10},
		{"limit above cap falls back", "2", "500", 2, 20},
		{"garbage input falls back", "abc", "xyz", 1, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := ParsePageParams(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Errorf("ParsePageParams(%q, %q) = (%d, %d), want (%d, %d)",
					tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}
