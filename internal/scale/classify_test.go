package scale

import (
	"errors"
	"testing"
)

// 全覆盖性质：每个可达整数得分都恰好落入一个分段（priority 裁决后）
func TestBuiltinScalesFullCoverage(t *testing.T) {
	c := mustCatalog(t)

	for _, code := range []string{"phq9", "gad7", "pss10"} {
		s, err := c.GetScale(code)
		if err != nil {
			t.Fatal(err)
		}
		for score := s.MinPossibleScore(); score <= s.MaxPossibleScore(); score++ {
			band, err := classify(s, float64(score))
			if err != nil {
				t.Fatalf("%s score %d unclassifiable: %v", code, score, err)
			}
			if band.Level == "" {
				t.Fatalf("%s score %d classified into empty band", code, score)
			}
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	c := mustCatalog(t)
	phq9, _ := c.GetScale("phq9")

	cases := []struct {
		score float64
		level string
	}{
		{0, "minimal"},
		{4, "minimal"},
		{5, "mild"},
		{9, "mild"},
		{10, "moderate"},
		{14, "moderate"},
		{15, "moderately_severe"},
		{19, "moderately_severe"},
		{20, "severe"},
		{27, "severe"},
	}
	for _, tc := range cases {
		band, err := classify(phq9, tc.score)
		if err != nil {
			t.Fatalf("score %g: %v", tc.score, err)
		}
		if band.Level != tc.level {
			t.Errorf("score %g → %s, want %s", tc.score, band.Level, tc.level)
		}
	}
}

func TestClassifyOverlapResolvedByPriority(t *testing.T) {
	s := &Scale{
		Code: "overlap",
		Bands: []Band{
			{MinScore: 0, MaxScore: 10, Level: "broad", Priority: 1},
			{MinScore: 5, MaxScore: 10, Level: "narrow", Priority: 3},
			{MinScore: 5, MaxScore: 7, Level: "middle", Priority: 2},
		},
	}

	band, err := classify(s, 6)
	if err != nil {
		t.Fatal(err)
	}
	if band.Level != "narrow" {
		t.Fatalf("score 6 → %s, want highest-priority narrow", band.Level)
	}

	band, err = classify(s, 3)
	if err != nil {
		t.Fatal(err)
	}
	if band.Level != "broad" {
		t.Fatalf("score 3 → %s, want broad", band.Level)
	}
}

func TestClassifyPriorityTieBreaksOnLowestMin(t *testing.T) {
	s := &Scale{
		Code: "tie",
		Bands: []Band{
			{MinScore: 4, MaxScore: 10, Level: "later", Priority: 2},
			{MinScore: 2, MaxScore: 10, Level: "earlier", Priority: 2},
		},
	}

	band, err := classify(s, 5)
	if err != nil {
		t.Fatal(err)
	}
	if band.Level != "earlier" {
		t.Fatalf("tied priority resolved to %s, want lowest-min earlier", band.Level)
	}
}

func TestClassifyUnclassifiableScore(t *testing.T) {
	s := &Scale{
		Code:  "gappy",
		Bands: []Band{{MinScore: 0, MaxScore: 5, Level: "only", Priority: 1}},
	}

	_, err := classify(s, 6)
	var unclassifiable *UnclassifiableScoreError
	if !errors.As(err, &unclassifiable) {
		t.Fatalf("want UnclassifiableScoreError, got %v", err)
	}
	if unclassifiable.ScaleCode != "gappy" || unclassifiable.Score != 6 {
		t.Fatalf("error carries %q %g", unclassifiable.ScaleCode, unclassifiable.Score)
	}
	if IsInputError(err) {
		t.Fatalf("configuration error misclassified as input error")
	}
}
