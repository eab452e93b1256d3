package scale

import (
	"errors"
	"math"
	"testing"
)

// 混合值域量表：反向题的取反上界必须取自该题自身的选项值域
func mixedDomainScale() Scale {
	threePoint := []Option{
		{Text: "0", Value: 0, Weight: 1, DisplayOrder: 1},
		{Text: "1", Value: 1, Weight: 1, DisplayOrder: 2},
		{Text: "2", Value: 2, Weight: 1, DisplayOrder: 3},
	}
	return Scale{
		Code:     "mixed",
		Name:     "Mixed Domain",
		Category: "general",
		Questions: []Question{
			{Number: 1, Text: "forward", Options: threePoint},
			{Number: 2, Text: "reversed", ReverseScored: true, Options: threePoint},
		},
		Bands: []Band{
			{MinScore: 0, MaxScore: 4, Level: "any", Label: "Any", Priority: 1},
		},
	}
}

func TestReverseScoringUsesQuestionDomain(t *testing.T) {
	s := mixedDomainScale()

	cases := []struct {
		name           string
		responses      map[int]int
		wantRaw        int
		wantNormalized float64
	}{
		{
			name:           "reversed low value contributes its domain max",
			responses:      map[int]int{1: 0, 2: 0},
			wantRaw:        0,
			wantNormalized: 2, // 2 - 0
		},
		{
			name:           "reversed high value contributes zero",
			responses:      map[int]int{1: 0, 2: 2},
			wantRaw:        2,
			wantNormalized: 0,
		},
		{
			name:           "raw score keeps unreversed values",
			responses:      map[int]int{1: 2, 2: 1},
			wantRaw:        3,
			wantNormalized: 3, // 2 + (2-1)
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vr, err := Validate(&s, tc.responses)
			if err != nil {
				t.Fatal(err)
			}
			raw, normalized, contribs, err := scoreResponses(&s, vr)
			if err != nil {
				t.Fatal(err)
			}
			if raw != tc.wantRaw {
				t.Errorf("raw = %d, want %d", raw, tc.wantRaw)
			}
			if normalized != tc.wantNormalized {
				t.Errorf("normalized = %g, want %g", normalized, tc.wantNormalized)
			}
			if len(contribs) != 2 {
				t.Fatalf("contributions = %v", contribs)
			}
		})
	}
}

func TestReverseScoredExtremesInvertContribution(t *testing.T) {
	c := mustCatalog(t)
	s, _ := c.GetScale("pss10")

	lowest := fullResponses(10, 0)
	vr, err := Validate(s, lowest)
	if err != nil {
		t.Fatal(err)
	}
	_, _, contribs, err := scoreResponses(s, vr)
	if err != nil {
		t.Fatal(err)
	}

	// 选最低原始值时，反向题贡献最高，正向题贡献最低
	for _, contrib := range contribs {
		reversed := contrib.Question == 4 || contrib.Question == 5
		if reversed && contrib.Contribution != 4 {
			t.Errorf("reversed question %d contribution = %g, want 4", contrib.Question, contrib.Contribution)
		}
		if !reversed && contrib.Contribution != 0 {
			t.Errorf("forward question %d contribution = %g, want 0", contrib.Question, contrib.Contribution)
		}
	}
}

func TestScoreAppliesWeightsAndPrecision(t *testing.T) {
	s := Scale{
		Code:      "weighted",
		Name:      "Weighted",
		Precision: 1,
		Questions: []Question{
			{Number: 1, Text: "q1", Options: []Option{
				{Text: "0", Value: 0, Weight: 1, DisplayOrder: 1},
				{Text: "1", Value: 1, Weight: 1.25, DisplayOrder: 2},
			}},
			{Number: 2, Text: "q2", Options: []Option{
				{Text: "0", Value: 0, Weight: 1, DisplayOrder: 1},
				{Text: "1", Value: 1, Weight: 0.5, DisplayOrder: 2},
			}},
		},
		Bands: []Band{{MinScore: 0, MaxScore: 2, Level: "any", Label: "Any", Priority: 1}},
	}
	if _, err := NewCatalog([]Scale{s}); err != nil {
		t.Fatalf("weighted scale failed validation: %v", err)
	}

	vr, err := Validate(&s, map[int]int{1: 1, 2: 1})
	if err != nil {
		t.Fatal(err)
	}
	raw, normalized, _, err := scoreResponses(&s, vr)
	if err != nil {
		t.Fatal(err)
	}
	if raw != 2 {
		t.Errorf("raw = %d, want 2", raw)
	}
	// 1*1.25 + 1*0.5 = 1.75 → 保留一位小数 1.8
	if math.Abs(normalized-1.8) > 1e-9 {
		t.Errorf("normalized = %g, want 1.8", normalized)
	}
}

func TestScoreRejectsUnvalidatedInput(t *testing.T) {
	c := mustCatalog(t)
	phq9, _ := c.GetScale("phq9")
	gad7, _ := c.GetScale("gad7")

	cases := []struct {
		name string
		vr   ValidatedResponses
	}{
		{"zero value", ValidatedResponses{}},
		{"wrong scale", mustValidate(t, gad7, fullResponses(7, 0))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := scoreResponses(phq9, tc.vr)
			if !errors.Is(err, ErrUnvalidatedResponses) {
				t.Fatalf("want ErrUnvalidatedResponses, got %v", err)
			}
		})
	}
}

func mustValidate(t *testing.T, s *Scale, responses map[int]int) ValidatedResponses {
	t.Helper()
	vr, err := Validate(s, responses)
	if err != nil {
		t.Fatal(err)
	}
	return vr
}
