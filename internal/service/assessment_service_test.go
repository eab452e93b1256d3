package service

import (
	"testing"

	"mindwell_backend/internal/model"
)

func record(scaleCode, level string) model.AssessmentRecord {
	return model.AssessmentRecord{ScaleCode: scaleCode, Level: level}
}

func TestBuildRiskSummary(t *testing.T) {
	cases := []struct {
		name      string
		latest    []model.AssessmentRecord
		wantLevel string
		wantRec   string
	}{
		{
			name:      "no assessments",
			latest:    nil,
			wantLevel: "low",
			wantRec:   "Continue monitoring mental health",
		},
		{
			name: "all minimal",
			latest: []model.AssessmentRecord{
				record("phq9", "minimal"),
				record("gad7", "minimal"),
				record("pss10", "low"),
			},
			wantLevel: "low",
			wantRec:   "Continue monitoring mental health",
		},
		{
			name: "one moderate",
			latest: []model.AssessmentRecord{
				record("phq9", "moderate"),
				record("gad7", "mild"),
			},
			wantLevel: "medium",
			wantRec:   "Consider professional consultation",
		},
		{
			name: "severe dominates moderate",
			latest: []model.AssessmentRecord{
				record("phq9", "severe"),
				record("gad7", "moderate"),
			},
			wantLevel: "high",
			wantRec:   "Immediate professional consultation recommended",
		},
		{
			name: "moderately severe counts as high risk",
			latest: []model.AssessmentRecord{
				record("phq9", "moderately_severe"),
			},
			wantLevel: "high",
			wantRec:   "Immediate professional consultation recommended",
		},
		{
			name: "pss10 high counts as high risk",
			latest: []model.AssessmentRecord{
				record("pss10", "high"),
			},
			wantLevel: "high",
			wantRec:   "Immediate professional consultation recommended",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary := BuildRiskSummary(tc.latest)
			if summary.OverallRiskLevel != tc.wantLevel {
				t.Errorf("overall risk = %s, want %s", summary.OverallRiskLevel, tc.wantLevel)
			}
			if summary.TotalAssessments != len(tc.latest) {
				t.Errorf("total = %d", summary.TotalAssessments)
			}
			if len(summary.Recommendations) != 1 || summary.Recommendations[0] != tc.wantRec {
				t.Errorf("recommendations = %v", summary.Recommendations)
			}
		})
	}
}
