// Package questionnaire defines the recommendation questionnaire and
// the linear flow state machine that collects answers.
package questionnaire

import "github.com/haikapp/haik/internal/models"

// MaxPriorities is how many priorities the user must select.
const MaxPriorities = 2

// DefaultQuestions returns the ordered question set for one
// recommendation run. Immutable; built once at flow start.
func DefaultQuestions() []models.Question {
	return []models.Question{
		{
			ID:    models.QuestionLifestyle,
			Title: "أي نمط حياة تفضل؟",
			Options: []models.Option{
				{ID: string(models.LifestyleQuiet), Title: "حي هادئ", Icon: "calm"},
				{ID: string(models.LifestyleActive), Title: "حي نشط وحيوي", Icon: "active"},
				{ID: string(models.LifestyleFullServices), Title: "حي متكامل الخدمات", Icon: "full_services"},
			},
			Mode: models.SingleSelect(),
		},
		{
			ID:    models.QuestionPriorities,
			Title: "ما الأولوية الأهم لك عند اختيار الحي؟",
			Options: []models.Option{
				{ID: string(models.PriorityNearWork), Title: "القرب من مقر العمل", Icon: "briefcase", NeedsNeighborhoodPick: true},
				{ID: string(models.PriorityNearFamily), Title: "القرب من منزل العائلة أو الأقارب", Icon: "house", NeedsNeighborhoodPick: true},
				{ID: string(models.PriorityServices), Title: "توفر الخدمات", Icon: "cart"},
				{ID: string(models.PrioritySchools), Title: "توفر المدارس", Icon: "schools"},
				{ID: string(models.PriorityMalls), Title: "توفر مراكز تجارية", Icon: "mall"},
				{ID: string(models.PriorityEntertainment), Title: "توفر المرافق الترفيهية", Icon: "entertainment"},
			},
			Mode: models.MultiSelect(MaxPriorities),
		},
		{
			ID:    models.QuestionTransport,
			Title: "كيف تفضل نمط تنقلك اليومي؟",
			Options: []models.Option{
				{ID: string(models.TransportMetroPrimary), Title: "أعتمد على المترو بشكل أساسي", Icon: "metro"},
				{ID: string(models.TransportMetroSometimes), Title: "أستخدم المترو أحيانًا", Icon: "metro"},
				{ID: string(models.TransportCar), Title: "أعتمد على السيارة", Icon: "car"},
			},
			Mode: models.SingleSelect(),
		},
		{
			ID:    models.QuestionBudget,
			Title: "ما الميزانية المناسبة لك؟",
			Options: []models.Option{
				{ID: string(models.BudgetLow), Title: "ميزانية اقتصادية", Icon: "price_low"},
				{ID: string(models.BudgetMid), Title: "ميزانية متوسطة", Icon: "price_mid"},
				{ID: string(models.BudgetHigh), Title: "ميزانية مرتفعة", Icon: "price_high"},
			},
			Mode: models.SingleSelect(),
		},
	}
}
