package scoring

type StrengthFactor struct {
	Category    string
	Score       int
	MaxScore    int
	Suggestions []string
}

type StrengthReport struct {
	OverallScore    int
	Factors         []StrengthFactor
	Recommendations []string
}

// ProfileStrength scores profile completeness out of 100 across four
// independently capped categories.
func ProfileStrength(p Profile, resumeCount, portfolioCount int) StrengthReport {
	factors := make([]StrengthFactor, 0, 4)

	// Basic information (30 points).
	basic := 0
	if p.FirstName != "" && p.LastName != "" {
		basic += 5
	}
	if p.Email != "" {
		basic += 5
	}
	if p.University != "" {
		basic += 5
	}
	if p.Major != "" {
		basic += 5
	}
	if p.Bio != "" {
		basic += 10
	}
	basicSuggestions := []string{}
	if basic < 30 {
		basicSuggestions = []string{"Complete your profile information", "Add a professional bio"}
	}
	factors = append(factors, StrengthFactor{
		Category:    "Basic Information",
		Score:       basic,
		MaxScore:    30,
		Suggestions: basicSuggestions,
	})

	// Skills (25 points).
	skillScore := clampInt(len(p.Skills)*3, 0, 25)
	skillSuggestions := []string{}
	if skillScore < 25 {
		skillSuggestions = []string{"Add more relevant skills", "Take skill assessments"}
	}
	factors = append(factors, StrengthFactor{
		Category:    "Skills",
		Score:       skillScore,
		MaxScore:    25,
		Suggestions: skillSuggestions,
	})

	// Resume (20 points).
	resumeScore := 0
	resumeSuggestions := []string{"Upload and analyze your resume"}
	if resumeCount > 0 {
		resumeScore = 20
		resumeSuggestions = []string{}
	}
	factors = append(factors, StrengthFactor{
		Category:    "Resume",
		Score:       resumeScore,
		MaxScore:    20,
		Suggestions: resumeSuggestions,
	})

	// Portfolio (25 points).
	portfolioScore := 0
	portfolioSuggestions := []string{"Create a portfolio", "Add projects to showcase your work"}
	if portfolioCount > 0 {
		portfolioScore = 25
		portfolioSuggestions = []string{}
	}
	factors = append(factors, StrengthFactor{
		Category:    "Portfolio",
		Score:       portfolioScore,
		MaxScore:    25,
		Suggestions: portfolioSuggestions,
	})

	total := clampInt(basic+skillScore+resumeScore+portfolioScore, 0, 100)

	var recommendations []string
	switch {
	case total < 50:
		recommendations = []string{
			"Complete your basic profile information",
			"Upload your resume for analysis",
		}
	case total < 75:
		recommendations = []string{
			"Add more skills and take assessments",
			"Create a portfolio with your projects",
		}
	default:
		recommendations = []string{
			"Apply to relevant internships",
			"Connect with mentors in your field",
		}
	}

	return StrengthReport{
		OverallScore:    total,
		Factors:         factors,
		Recommendations: recommendations,
	}
}
