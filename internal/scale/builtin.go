package scale

// 四级频率选项（PHQ-9 / GAD-7 共用）
func frequencyOptions() []Option {
	return []Option{
		{Text: "Not at all", Value: 0, Weight: 1.0, DisplayOrder: 1},
		{Text: "Several days", Value: 1, Weight: 1.0, DisplayOrder: 2},
		{Text: "More than half the days", Value: 2, Weight: 1.0, DisplayOrder: 3},
		{Text: "Nearly every day", Value: 3, Weight: 1.0, DisplayOrder: 4},
	}
}

// 五级频率选项（PSS-10）
func stressOptions() []Option {
	return []Option{
		{Text: "Never", Value: 0, Weight: 1.0, DisplayOrder: 1},
		{Text: "Almost never", Value: 1, Weight: 1.0, DisplayOrder: 2},
		{Text: "Sometimes", Value: 2, Weight: 1.0, DisplayOrder: 3},
		{Text: "Fairly often", Value: 3, Weight: 1.0, DisplayOrder: 4},
		{Text: "Very often", Value: 4, Weight: 1.0, DisplayOrder: 5},
	}
}

func questionsFrom(texts []string, options func() []Option, reversed map[int]bool) []Question {
	qs := make([]Question, len(texts))
	for i, text := range texts {
		qs[i] = Question{
			Number:        i + 1,
			Text:          text,
			ReverseScored: reversed[i+1],
			Options:       options(),
		}
	}
	return qs
}

// BuiltinScales 内置的三份标准量表定义，数据库为空时作为种子写入
func BuiltinScales() []Scale {
	return []Scale{phq9(), gad7(), pss10()}
}

func phq9() Scale {
	texts := []string{
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling or staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself - or that you are a failure or have let yourself or your family down",
		"Trouble concentrating on things, such as reading the newspaper or watching television",
		"Moving or speaking slowly enough that other people could have noticed. Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual",
		"Thoughts that you would be better off dead or of hurting yourself in some way",
	}

	return Scale{
		Code:        "phq9",
		Name:        "PHQ-9",
		Category:    "depression",
		Description: "Patient Health Questionnaire-9: A validated tool for assessing depression severity",
		Questions:   questionsFrom(texts, frequencyOptions, nil),
		Bands: []Band{
			{MinScore: 0, MaxScore: 4, Level: "minimal", Label: "Minimal Depression", Interpretation: "No treatment needed", Recommendation: "Continue monitoring mental health", ColorCode: "#10B981", Priority: 1},
			{MinScore: 5, MaxScore: 9, Level: "mild", Label: "Mild Depression", Interpretation: "Watchful waiting; repeat PHQ-9", Recommendation: "Consider counseling or therapy", ColorCode: "#F59E0B", Priority: 2},
			{MinScore: 10, MaxScore: 14, Level: "moderate", Label: "Moderate Depression", Interpretation: "Treatment plan, counseling, follow-up", Recommendation: "Seek professional help", ColorCode: "#EF4444", Priority: 3},
			{MinScore: 15, MaxScore: 19, Level: "moderately_severe", Label: "Moderately Severe Depression", Interpretation: "Active treatment with medication and/or therapy", Recommendation: "Immediate professional consultation", ColorCode: "#DC2626", Priority: 4},
			{MinScore: 20, MaxScore: 27, Level: "severe", Label: "Severe Depression", Interpretation: "Immediate treatment, medication and therapy", Recommendation: "Urgent professional intervention", ColorCode: "#991B1B", Priority: 5},
		},
	}
}

func gad7() Scale {
	texts := []string{
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being so restless that it's hard to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid as if something awful might happen",
	}

	return Scale{
		Code:        "gad7",
		Name:        "GAD-7",
		Category:    "anxiety",
		Description: "Generalized Anxiety Disorder-7: A validated tool for assessing anxiety severity",
		Questions:   questionsFrom(texts, frequencyOptions, nil),
		Bands: []Band{
			{MinScore: 0, MaxScore: 4, Level: "minimal", Label: "Minimal Anxiety", Interpretation: "No treatment needed", Recommendation: "Continue monitoring mental health", ColorCode: "#10B981", Priority: 1},
			{MinScore: 5, MaxScore: 9, Level: "mild", Label: "Mild Anxiety", Interpretation: "Watchful waiting; repeat GAD-7", Recommendation: "Consider stress management techniques", ColorCode: "#F59E0B", Priority: 2},
			{MinScore: 10, MaxScore: 14, Level: "moderate", Label: "Moderate Anxiety", Interpretation: "Treatment plan, counseling, follow-up", Recommendation: "Seek professional help", ColorCode: "#EF4444", Priority: 3},
			{MinScore: 15, MaxScore: 21, Level: "severe", Label: "Severe Anxiety", Interpretation: "Active treatment with medication and/or therapy", Recommendation: "Immediate professional consultation", ColorCode: "#DC2626", Priority: 4},
		},
	}
}

func pss10() Scale {
	texts := []string{
		"In the last month, how often have you been upset because of something that happened unexpectedly?",
		"In the last month, how often have you felt that you were unable to control the important things in your life?",
		"In the last month, how often have you felt nervous and stressed?",
		"In the last month, how often have you felt confident about your ability to handle your personal problems?",
		"In the last month, how often have you felt that things were going your way?",
		"In the last month, how often have you found that you could not cope with all the things that you had to do?",
		"In the last month, how often have you been able to control irritations in your life?",
		"In the last month, how often have you felt that you were on top of things?",
		"In the last month, how often have you been angered because of things that happened that were outside of your control?",
		"In the last month, how often have you felt difficulties were piling up so high that you could not overcome them?",
	}

	return Scale{
		Code:        "pss10",
		Name:        "PSS-10",
		Category:    "stress",
		Description: "Perceived Stress Scale-10: A validated tool for assessing stress levels",
		Questions:   questionsFrom(texts, stressOptions, map[int]bool{4: true, 5: true}),
		Bands: []Band{
			{MinScore: 0, MaxScore: 13, Level: "low", Label: "Low Stress", Interpretation: "Good stress management", Recommendation: "Continue current stress management practices", ColorCode: "#10B981", Priority: 1},
			{MinScore: 14, MaxScore: 26, Level: "moderate", Label: "Moderate Stress", Interpretation: "Consider stress management techniques", Recommendation: "Learn and practice stress management techniques", ColorCode: "#F59E0B", Priority: 2},
			{MinScore: 27, MaxScore: 40, Level: "high", Label: "High Stress", Interpretation: "Consider professional help for stress management", Recommendation: "Seek professional help for stress management", ColorCode: "#EF4444", Priority: 3},
		},
	}
}
