package services

import (
	"context"
	"math"
	"time"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/storage"
	"github.com/Yukirp/NutriEmp/utils"
)

// Display labels are fixed pt-BR strings, same as the web client.
var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// DailySummary is the elementwise sum of a day's meals. Sums are left
// unrounded: meal fields already carry whatever rounding they were stored
// with.
type DailySummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyReport is a DailySummary plus the goal comparison, when the user
// has set a daily calorie goal.
type DailyReport struct {
	Date string `json:"date"`
	DailySummary
	Goal    *int `json:"goal,omitempty"`
	Deficit *int `json:"deficit,omitempty"`
}

// WeeklyData is one day of the trailing-7-day report.
type WeeklyData struct {
	Date string `json:"date"`
	Day  string `json:"day"`
	DailySummary
}

type ReportService struct {
	store storage.Storage
}

func NewReportService(store storage.Storage) *ReportService {
	return &ReportService{store: store}
}

// Daily sums the user's meals for one date. The deficit is signed:
// negative means under goal.
func (s *ReportService) Daily(ctx context.Context, user *models.User, date string) (*DailyReport, error) {
	meals, err := s.store.GetMealsByUserAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{Date: date, DailySummary: summarize(meals)}
	if user.DailyCalorieGoal != nil {
		deficit := utils.CalorieDeficit(int(math.Round(report.Calories)), *user.DailyCalorieGoal)
		report.Goal = user.DailyCalorieGoal
		report.Deficit = &deficit
	}
	return report, nil
}

// Weekly builds one entry per calendar day for the 7-day window ending at
// end, oldest first. Days without meals come back zeroed, not omitted.
func (s *ReportService) Weekly(ctx context.Context, userID int, end time.Time) ([]WeeklyData, error) {
	start := end.AddDate(0, 0, -6)
	meals, err := s.store.GetMealsByUserAndDateRange(
		ctx, userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	byDate := map[string][]models.Meal{}
	for _, m := range meals {
		byDate[m.Date] = append(byDate[m.Date], m)
	}

	week := make([]WeeklyData, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		week = append(week, WeeklyData{
			Date:         date,
			Day:          weekdayLabels[day.Weekday()],
			DailySummary: summarize(byDate[date]),
		})
	}
	return week, nil
}

func summarize(meals []models.Meal) DailySummary {
	var sum DailySummary
	for _, m := range meals {
		sum.Calories += m.Calories
		sum.Protein += m.Protein
		sum.Carbs += m.Carbs
		sum.Fat += m.Fat
	}
	return sum
}
