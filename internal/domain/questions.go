package domain

// Health questionnaire catalog. Points are calibrated so that higher means
// healthier; weight encodes the clinical importance of the question. Labels
// are translation keys resolved by the front end.
var healthQuestions = []Question{
	// Cardiovascular
	{
		ID:       "cardio-1",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.cardio-1.TEXT",
		Type:     QuestionBoolean,
		Options: []Option{
			{Value: BoolValue(false), Label: "HEALTH.QUESTIONS.cardio-1.OPTIONS.no", Points: 10, RiskLevel: RiskLow},
			{Value: BoolValue(true), Label: "HEALTH.QUESTIONS.cardio-1.OPTIONS.yes", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   3,
		Required: true,
	},
	{
		ID:       "cardio-2",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.cardio-2.TEXT",
		Type:     QuestionBoolean,
		Options: []Option{
			{Value: BoolValue(false), Label: "HEALTH.QUESTIONS.cardio-2.OPTIONS.no", Points: 10, RiskLevel: RiskLow},
			{Value: BoolValue(true), Label: "HEALTH.QUESTIONS.cardio-2.OPTIONS.yes", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   3,
		Required: true,
	},
	{
		ID:       "cardio-3",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.cardio-3.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("no"), Label: "HEALTH.QUESTIONS.cardio-3.OPTIONS.no", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("controlled"), Label: "HEALTH.QUESTIONS.cardio-3.OPTIONS.controlled", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("uncontrolled"), Label: "HEALTH.QUESTIONS.cardio-3.OPTIONS.uncontrolled", Points: 0, RiskLevel: RiskHigh},
			{Value: ChoiceValue("unknown"), Label: "HEALTH.QUESTIONS.cardio-3.OPTIONS.unknown", Points: 3, RiskLevel: RiskModerate},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "cardio-4",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.cardio-4.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.cardio-4.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("rarely"), Label: "HEALTH.QUESTIONS.cardio-4.OPTIONS.rarely", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("sometimes"), Label: "HEALTH.QUESTIONS.cardio-4.OPTIONS.sometimes", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("often"), Label: "HEALTH.QUESTIONS.cardio-4.OPTIONS.often", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "cardio-5",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.cardio-5.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.cardio-5.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("rarely"), Label: "HEALTH.QUESTIONS.cardio-5.OPTIONS.rarely", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("sometimes"), Label: "HEALTH.QUESTIONS.cardio-5.OPTIONS.sometimes", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("often"), Label: "HEALTH.QUESTIONS.cardio-5.OPTIONS.often", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   2,
		Required: true,
	},

	// Musculoskeletal
	{
		ID:       "musculo-1",
		Category: CategoryMusculoskeletal,
		Text:     "HEALTH.QUESTIONS.musculo-1.TEXT",
		Type:     QuestionBoolean,
		Options: []Option{
			{Value: BoolValue(false), Label: "HEALTH.QUESTIONS.musculo-1.OPTIONS.no", Points: 10, RiskLevel: RiskLow},
			{Value: BoolValue(true), Label: "HEALTH.QUESTIONS.musculo-1.OPTIONS.yes", Points: 2, RiskLevel: RiskModerate},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "musculo-2",
		Category: CategoryMusculoskeletal,
		Text:     "HEALTH.QUESTIONS.musculo-2.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.musculo-2.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("rarely"), Label: "HEALTH.QUESTIONS.musculo-2.OPTIONS.rarely", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("sometimes"), Label: "HEALTH.QUESTIONS.musculo-2.OPTIONS.sometimes", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("often"), Label: "HEALTH.QUESTIONS.musculo-2.OPTIONS.often", Points: 1, RiskLevel: RiskModerate},
			{Value: ChoiceValue("chronic"), Label: "HEALTH.QUESTIONS.musculo-2.OPTIONS.chronic", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "musculo-3",
		Category: CategoryMusculoskeletal,
		Text:     "HEALTH.QUESTIONS.musculo-3.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.musculo-3.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("rarely"), Label: "HEALTH.QUESTIONS.musculo-3.OPTIONS.rarely", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("sometimes"), Label: "HEALTH.QUESTIONS.musculo-3.OPTIONS.sometimes", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("often"), Label: "HEALTH.QUESTIONS.musculo-3.OPTIONS.often", Points: 1, RiskLevel: RiskModerate},
			{Value: ChoiceValue("chronic"), Label: "HEALTH.QUESTIONS.musculo-3.OPTIONS.chronic", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "musculo-4",
		Category: CategoryMusculoskeletal,
		Text:     "HEALTH.QUESTIONS.musculo-4.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("easily"), Label: "HEALTH.QUESTIONS.musculo-4.OPTIONS.easily", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("difficulty"), Label: "HEALTH.QUESTIONS.musculo-4.OPTIONS.difficulty", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("no"), Label: "HEALTH.QUESTIONS.musculo-4.OPTIONS.no", Points: 2, RiskLevel: RiskModerate},
			{Value: ChoiceValue("not-tried"), Label: "HEALTH.QUESTIONS.musculo-4.OPTIONS.not-tried", Points: 5, RiskLevel: RiskLow},
		},
		Weight:   1,
		Required: true,
	},

	// Metabolic
	{
		ID:       "metabolic-1",
		Category: CategoryMetabolic,
		Text:     "HEALTH.QUESTIONS.metabolic-1.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("no"), Label: "HEALTH.QUESTIONS.metabolic-1.OPTIONS.no", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("prediabetes"), Label: "HEALTH.QUESTIONS.metabolic-1.OPTIONS.prediabetes", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("type2-controlled"), Label: "HEALTH.QUESTIONS.metabolic-1.OPTIONS.type2-controlled", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("type2-uncontrolled"), Label: "HEALTH.QUESTIONS.metabolic-1.OPTIONS.type2-uncontrolled", Points: 1, RiskLevel: RiskHigh},
			{Value: ChoiceValue("type1"), Label: "HEALTH.QUESTIONS.metabolic-1.OPTIONS.type1", Points: 3, RiskLevel: RiskModerate},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "metabolic-2",
		Category: CategoryMetabolic,
		Text:     "HEALTH.QUESTIONS.metabolic-2.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("underweight"), Label: "HEALTH.QUESTIONS.metabolic-2.OPTIONS.underweight", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("normal"), Label: "HEALTH.QUESTIONS.metabolic-2.OPTIONS.normal", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("overweight"), Label: "HEALTH.QUESTIONS.metabolic-2.OPTIONS.overweight", Points: 6, RiskLevel: RiskModerate},
			{Value: ChoiceValue("obese1"), Label: "HEALTH.QUESTIONS.metabolic-2.OPTIONS.obese1", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("obese2"), Label: "HEALTH.QUESTIONS.metabolic-2.OPTIONS.obese2", Points: 1, RiskLevel: RiskHigh},
			{Value: ChoiceValue("unknown"), Label: "HEALTH.QUESTIONS.metabolic-2.OPTIONS.unknown", Points: 5, RiskLevel: RiskLow},
		},
		Weight:   2,
		Required: true,
	},

	// Lifestyle
	{
		ID:       "lifestyle-1",
		Category: CategoryLifestyle,
		Text:     "HEALTH.QUESTIONS.lifestyle-1.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.lifestyle-1.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("former"), Label: "HEALTH.QUESTIONS.lifestyle-1.OPTIONS.former", Points: 8, RiskLevel: RiskLow},
			{Value: ChoiceValue("recent-quit"), Label: "HEALTH.QUESTIONS.lifestyle-1.OPTIONS.recent-quit", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("occasional"), Label: "HEALTH.QUESTIONS.lifestyle-1.OPTIONS.occasional", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("regular"), Label: "HEALTH.QUESTIONS.lifestyle-1.OPTIONS.regular", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "lifestyle-2",
		Category: CategoryLifestyle,
		Text:     "HEALTH.QUESTIONS.lifestyle-2.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("less-5"), Label: "HEALTH.QUESTIONS.lifestyle-2.OPTIONS.less-5", Points: 2, RiskLevel: RiskHigh},
			{Value: ChoiceValue("5-6"), Label: "HEALTH.QUESTIONS.lifestyle-2.OPTIONS.5-6", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("7-8"), Label: "HEALTH.QUESTIONS.lifestyle-2.OPTIONS.7-8", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("9-plus"), Label: "HEALTH.QUESTIONS.lifestyle-2.OPTIONS.9-plus", Points: 7, RiskLevel: RiskLow},
		},
		Weight:   1,
		Required: true,
	},
	{
		ID:       "lifestyle-3",
		Category: CategoryLifestyle,
		Text:     "HEALTH.QUESTIONS.lifestyle-3.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.lifestyle-3.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("occasional"), Label: "HEALTH.QUESTIONS.lifestyle-3.OPTIONS.occasional", Points: 9, RiskLevel: RiskLow},
			{Value: ChoiceValue("moderate"), Label: "HEALTH.QUESTIONS.lifestyle-3.OPTIONS.moderate", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("regular"), Label: "HEALTH.QUESTIONS.lifestyle-3.OPTIONS.regular", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("heavy"), Label: "HEALTH.QUESTIONS.lifestyle-3.OPTIONS.heavy", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   1,
		Required: true,
	},
	{
		ID:       "lifestyle-4",
		Category: CategoryLifestyle,
		Text:     "HEALTH.QUESTIONS.lifestyle-4.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("excellent"), Label: "HEALTH.QUESTIONS.lifestyle-4.OPTIONS.excellent", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("good"), Label: "HEALTH.QUESTIONS.lifestyle-4.OPTIONS.good", Points: 8, RiskLevel: RiskLow},
			{Value: ChoiceValue("average"), Label: "HEALTH.QUESTIONS.lifestyle-4.OPTIONS.average", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("poor"), Label: "HEALTH.QUESTIONS.lifestyle-4.OPTIONS.poor", Points: 2, RiskLevel: RiskModerate},
		},
		Weight:   1,
		Required: true,
	},

	// Physical activity
	{
		ID:       "activity-1",
		Category: CategoryPhysicalActivity,
		Text:     "HEALTH.QUESTIONS.activity-1.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("0"), Label: "HEALTH.QUESTIONS.activity-1.OPTIONS.0", Points: 0, RiskLevel: RiskHigh},
			{Value: ChoiceValue("1-2"), Label: "HEALTH.QUESTIONS.activity-1.OPTIONS.1-2", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("3-4"), Label: "HEALTH.QUESTIONS.activity-1.OPTIONS.3-4", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("5-plus"), Label: "HEALTH.QUESTIONS.activity-1.OPTIONS.5-plus", Points: 10, RiskLevel: RiskLow},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "activity-2",
		Category: CategoryPhysicalActivity,
		Text:     "HEALTH.QUESTIONS.activity-2.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("easily"), Label: "HEALTH.QUESTIONS.activity-2.OPTIONS.easily", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("moderate"), Label: "HEALTH.QUESTIONS.activity-2.OPTIONS.moderate", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("difficulty"), Label: "HEALTH.QUESTIONS.activity-2.OPTIONS.difficulty", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("no"), Label: "HEALTH.QUESTIONS.activity-2.OPTIONS.no", Points: 1, RiskLevel: RiskHigh},
		},
		Weight:   2,
		Required: true,
	},
	{
		ID:       "activity-3",
		Category: CategoryPhysicalActivity,
		Text:     "HEALTH.QUESTIONS.activity-3.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("current"), Label: "HEALTH.QUESTIONS.activity-3.OPTIONS.current", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("less-month"), Label: "HEALTH.QUESTIONS.activity-3.OPTIONS.less-month", Points: 8, RiskLevel: RiskLow},
			{Value: ChoiceValue("1-6-months"), Label: "HEALTH.QUESTIONS.activity-3.OPTIONS.1-6-months", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("6-12-months"), Label: "HEALTH.QUESTIONS.activity-3.OPTIONS.6-12-months", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("more-year"), Label: "HEALTH.QUESTIONS.activity-3.OPTIONS.more-year", Points: 1, RiskLevel: RiskHigh},
		},
		Weight:   1,
		Required: true,
	},
	{
		ID:       "activity-4",
		Category: CategoryPhysicalActivity,
		Text:     "HEALTH.QUESTIONS.activity-4.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("less-4"), Label: "HEALTH.QUESTIONS.activity-4.OPTIONS.less-4", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("4-6"), Label: "HEALTH.QUESTIONS.activity-4.OPTIONS.4-6", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("6-8"), Label: "HEALTH.QUESTIONS.activity-4.OPTIONS.6-8", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("more-8"), Label: "HEALTH.QUESTIONS.activity-4.OPTIONS.more-8", Points: 1, RiskLevel: RiskHigh},
		},
		Weight:   1,
		Required: true,
	},

	// Mental health
	{
		ID:       "mental-1",
		Category: CategoryMentalHealth,
		Text:     "HEALTH.QUESTIONS.mental-1.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("low"), Label: "HEALTH.QUESTIONS.mental-1.OPTIONS.low", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("moderate"), Label: "HEALTH.QUESTIONS.mental-1.OPTIONS.moderate", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("high"), Label: "HEALTH.QUESTIONS.mental-1.OPTIONS.high", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("very-high"), Label: "HEALTH.QUESTIONS.mental-1.OPTIONS.very-high", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   1,
		Required: true,
	},
	{
		ID:       "mental-2",
		Category: CategoryMentalHealth,
		Text:     "HEALTH.QUESTIONS.mental-2.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("never"), Label: "HEALTH.QUESTIONS.mental-2.OPTIONS.never", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("few-days"), Label: "HEALTH.QUESTIONS.mental-2.OPTIONS.few-days", Points: 6, RiskLevel: RiskModerate},
			{Value: ChoiceValue("more-half"), Label: "HEALTH.QUESTIONS.mental-2.OPTIONS.more-half", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("nearly-every"), Label: "HEALTH.QUESTIONS.mental-2.OPTIONS.nearly-every", Points: 0, RiskLevel: RiskHigh},
		},
		Weight:   1,
		Required: true,
	},
	{
		ID:       "mental-3",
		Category: CategoryMentalHealth,
		Text:     "HEALTH.QUESTIONS.mental-3.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("always"), Label: "HEALTH.QUESTIONS.mental-3.OPTIONS.always", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("usually"), Label: "HEALTH.QUESTIONS.mental-3.OPTIONS.usually", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("sometimes"), Label: "HEALTH.QUESTIONS.mental-3.OPTIONS.sometimes", Points: 4, RiskLevel: RiskModerate},
			{Value: ChoiceValue("rarely"), Label: "HEALTH.QUESTIONS.mental-3.OPTIONS.rarely", Points: 1, RiskLevel: RiskHigh},
		},
		Weight:   1,
		Required: true,
	},

	// Baseline info. Age and medication load feed the cardiovascular risk score.
	{
		ID:       "info-age",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.info-age.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("18-29"), Label: "HEALTH.QUESTIONS.info-age.OPTIONS.18-29", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("30-39"), Label: "HEALTH.QUESTIONS.info-age.OPTIONS.30-39", Points: 9, RiskLevel: RiskLow},
			{Value: ChoiceValue("40-49"), Label: "HEALTH.QUESTIONS.info-age.OPTIONS.40-49", Points: 7, RiskLevel: RiskLow},
			{Value: ChoiceValue("50-59"), Label: "HEALTH.QUESTIONS.info-age.OPTIONS.50-59", Points: 5, RiskLevel: RiskModerate},
			{Value: ChoiceValue("60-69"), Label: "HEALTH.QUESTIONS.info-age.OPTIONS.60-69", Points: 3, RiskLevel: RiskModerate},
			{Value: ChoiceValue("70-plus"), Label: "HEALTH.QUESTIONS.info-age.OPTIONS.70-plus", Points: 2, RiskLevel: RiskModerate},
		},
		Weight:   1,
		Required: true,
	},
	{
		ID:       "info-medications",
		Category: CategoryCardiovascular,
		Text:     "HEALTH.QUESTIONS.info-medications.TEXT",
		Type:     QuestionSingleChoice,
		Options: []Option{
			{Value: ChoiceValue("none"), Label: "HEALTH.QUESTIONS.info-medications.OPTIONS.none", Points: 10, RiskLevel: RiskLow},
			{Value: ChoiceValue("vitamins"), Label: "HEALTH.QUESTIONS.info-medications.OPTIONS.vitamins", Points: 9, RiskLevel: RiskLow},
			{Value: ChoiceValue("one"), Label: "HEALTH.QUESTIONS.info-medications.OPTIONS.one", Points: 6, RiskLevel: RiskModerate},
			{Value: ChoiceValue("multiple"), Label: "HEALTH.QUESTIONS.info-medications.OPTIONS.multiple", Points: 3, RiskLevel: RiskModerate},
		},
		Weight:   1,
		Required: true,
	},
}

var defaultCatalog = MustNewCatalog(healthQuestions)

// DefaultCatalog returns the production questionnaire catalog. The
// returned value is shared and immutable.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
