package scale_test

import (
	"errors"
	"reflect"
	"testing"

	"mindwell_backend/internal/scale"
)

func newEngine(t *testing.T) *scale.Engine {
	t.Helper()
	c, err := scale.NewCatalog(scale.BuiltinScales())
	if err != nil {
		t.Fatal(err)
	}
	return scale.NewEngine(scale.NewHolder(c))
}

func uniform(n, value int) map[int]int {
	m := make(map[int]int, n)
	for i := 1; i <= n; i++ {
		m[i] = value
	}
	return m
}

func TestScoreConcreteScenarios(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		name       string
		code       string
		responses  map[int]int
		wantRaw    int
		wantScore  float64
		wantLevel  string
		wantLabel  string
	}{
		{
			name:      "phq9 all zeros",
			code:      "phq9",
			responses: uniform(9, 0),
			wantRaw:   0, wantScore: 0,
			wantLevel: "minimal", wantLabel: "Minimal Depression",
		},
		{
			name:      "phq9 all threes",
			code:      "phq9",
			responses: uniform(9, 3),
			wantRaw:   27, wantScore: 27,
			wantLevel: "severe", wantLabel: "Severe Depression",
		},
		{
			name:      "gad7 moderate",
			code:      "gad7",
			responses: map[int]int{1: 2, 2: 1, 3: 3, 4: 2, 5: 1, 6: 0, 7: 2},
			wantRaw:   11, wantScore: 11,
			wantLevel: "moderate", wantLabel: "Moderate Anxiety",
		},
		{
			name:      "pss10 reversed extremes cancel out",
			code:      "pss10",
			responses: map[int]int{1: 0, 2: 0, 3: 0, 4: 4, 5: 4, 6: 0, 7: 0, 8: 0, 9: 0, 10: 0},
			wantRaw:   8, wantScore: 0,
			wantLevel: "low", wantLabel: "Low Stress",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Score(tc.code, tc.responses)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if result.RawScore != tc.wantRaw {
				t.Errorf("raw score = %d, want %d", result.RawScore, tc.wantRaw)
			}
			if result.NormalizedScore != tc.wantScore {
				t.Errorf("normalized score = %g, want %g", result.NormalizedScore, tc.wantScore)
			}
			if result.Band.Level != tc.wantLevel {
				t.Errorf("band level = %s, want %s", result.Band.Level, tc.wantLevel)
			}
			if result.Band.Label != tc.wantLabel {
				t.Errorf("band label = %q, want %q", result.Band.Label, tc.wantLabel)
			}
			if result.ScaleCode != tc.code {
				t.Errorf("scale code = %s", result.ScaleCode)
			}
			if len(result.Contributions) != len(tc.responses) {
				t.Errorf("contributions count = %d", len(result.Contributions))
			}
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	engine := newEngine(t)
	responses := map[int]int{1: 2, 2: 1, 3: 3, 4: 2, 5: 1, 6: 0, 7: 2}

	first, err := engine.Score("gad7", responses)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Score("gad7", responses)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different results:\n%+v\n%+v", first, second)
	}
}

// 评分结果自带量表元数据，评分之后的目录热替换不得影响已产出的结果
func TestScoreCarriesScaleMetadata(t *testing.T) {
	catalog, err := scale.NewCatalog(scale.BuiltinScales())
	if err != nil {
		t.Fatal(err)
	}
	holder := scale.NewHolder(catalog)
	engine := scale.NewEngine(holder)

	result, err := engine.Score("gad7", uniform(7, 3))
	if err != nil {
		t.Fatal(err)
	}

	// 换成一个不再包含 gad7 的目录
	replacement, err := scale.NewCatalog(scale.BuiltinScales()[:1])
	if err != nil {
		t.Fatal(err)
	}
	holder.Swap(replacement)

	if result.ScaleName != "GAD-7" {
		t.Errorf("scale name = %q, want %q", result.ScaleName, "GAD-7")
	}
	if result.Category != "anxiety" {
		t.Errorf("category = %q, want %q", result.Category, "anxiety")
	}
	if result.MaxScore != 21 {
		t.Errorf("max score = %d, want 21", result.MaxScore)
	}
}

func TestScoreContributionsOrderedByQuestion(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Score("phq9", uniform(9, 2))
	if err != nil {
		t.Fatal(err)
	}
	for i, contrib := range result.Contributions {
		if contrib.Question != i+1 {
			t.Fatalf("contribution %d is for question %d", i, contrib.Question)
		}
		if contrib.SelectedValue != 2 || contrib.Contribution != 2 {
			t.Fatalf("contribution %+v", contrib)
		}
	}
}

func TestScoreErrorKinds(t *testing.T) {
	engine := newEngine(t)

	t.Run("unknown scale", func(t *testing.T) {
		_, err := engine.Score("phq99", uniform(9, 0))
		var unknown *scale.UnknownScaleError
		if !errors.As(err, &unknown) {
			t.Fatalf("want UnknownScaleError, got %v", err)
		}
	})

	t.Run("missing response", func(t *testing.T) {
		responses := uniform(9, 0)
		delete(responses, 4)
		_, err := engine.Score("phq9", responses)
		var missing *scale.MissingResponseError
		if !errors.As(err, &missing) {
			t.Fatalf("want MissingResponseError, got %v", err)
		}
		if missing.Question != 4 {
			t.Fatalf("named question %d, want 4", missing.Question)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		responses := uniform(7, 0)
		responses[6] = 9
		_, err := engine.Score("gad7", responses)
		var invalid *scale.InvalidOptionValueError
		if !errors.As(err, &invalid) {
			t.Fatalf("want InvalidOptionValueError, got %v", err)
		}
		if invalid.Question != 6 || invalid.Value != 9 {
			t.Fatalf("named question %d value %d", invalid.Question, invalid.Value)
		}
	})
}

func TestGetScaleUnknown(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.GetScale("phq99")
	var unknown *scale.UnknownScaleError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownScaleError, got %v", err)
	}
}

func TestListScalesThroughEngine(t *testing.T) {
	engine := newEngine(t)

	var codes []string
	for s := range engine.ListScales("") {
		codes = append(codes, s.Code)
	}
	want := []string{"phq9", "gad7", "pss10"}
	if !reflect.DeepEqual(codes, want) {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
}
