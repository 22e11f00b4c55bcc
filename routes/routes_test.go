package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/storage"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(storage.NewMemoryStorage(), zap.NewNop(), []string{"*"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateAndGetUser(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"name": "Ana", "age": 28, "weight": 62.5, "height": 165,
		"gender": "female", "activityLevel": "light", "dailyCalorieGoal": 2000,
	})
	require.Equal(t, 201, w.Code)
	created := decode[models.User](t, w)
	assert.Equal(t, 3, created.ID) // after the two seeded users
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = doJSON(t, r, http.MethodGet, "/api/users/3", nil)
	require.Equal(t, 200, w.Code)
	got := decode[models.User](t, w)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, 62.5, *got.Weight)
}

func TestUserErrors(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"age": 30})
	assert.Equal(t, 400, w.Code) // name missing

	w = doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "X", "gender": "robot"})
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, 400, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, 404, w.Code)
}

func TestPatchUserMerges(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPatch, "/api/users/1", gin.H{"name": "Renomeado"})
	require.Equal(t, 200, w.Code)
	got := decode[models.User](t, w)
	assert.Equal(t, "Renomeado", got.Name)
	assert.Equal(t, 30, *got.Age) // untouched
	assert.Equal(t, 2500, *got.DailyCalorieGoal)

	w = doJSON(t, r, http.MethodPatch, "/api/users/999", gin.H{"name": "X"})
	assert.Equal(t, 404, w.Code)
}

func TestMealLifecycle(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/meals", gin.H{
		"userId": 1, "name": "Almoço", "time": "12:30", "date": "2024-06-01",
		"foods": []gin.H{
			{"name": "Frango Grelhado", "quantity": 100, "unit": "g", "protein": 20, "carbs": 30, "fat": 5},
			{"name": "Arroz Branco", "quantity": 50, "unit": "g", "protein": 10, "carbs": 5, "fat": 2},
		},
		"protein": 30, "carbs": 35, "fat": 7,
	})
	require.Equal(t, 201, w.Code)
	meal := decode[models.Meal](t, w)
	// Server-side derivation: round(245 + 78) = 323.
	assert.Equal(t, float64(323), meal.Calories)

	w = doJSON(t, r, http.MethodGet, "/api/users/1/meals?date=2024-06-01", nil)
	require.Equal(t, 200, w.Code)
	meals := decode[[]models.Meal](t, w)
	require.Len(t, meals, 1)
	assert.Equal(t, meal.ID, meals[0].ID)
	assert.Equal(t, float64(323), meals[0].Calories)
	assert.Len(t, meals[0].Foods, 2)

	w = doJSON(t, r, http.MethodPatch, "/api/meals/1", gin.H{"name": "Almoço tardio"})
	require.Equal(t, 200, w.Code)
	patched := decode[models.Meal](t, w)
	assert.Equal(t, "Almoço tardio", patched.Name)
	assert.Equal(t, float64(323), patched.Calories)

	w = doJSON(t, r, http.MethodDelete, "/api/meals/1", nil)
	assert.Equal(t, 204, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodDelete, "/api/meals/1", nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/meals/1", nil)
	assert.Equal(t, 404, w.Code)
}

func TestMealValidation(t *testing.T) {
	r := newTestRouter()

	// no foods
	w := doJSON(t, r, http.MethodPost, "/api/meals", gin.H{
		"userId": 1, "name": "Almoço", "time": "12:30", "date": "2024-06-01",
	})
	assert.Equal(t, 400, w.Code)

	// bad date
	w = doJSON(t, r, http.MethodPost, "/api/meals", gin.H{
		"userId": 1, "name": "Almoço", "time": "12:30", "date": "01/06/2024",
		"foods": []gin.H{{"name": "Ovo", "quantity": 1, "unit": "unidade", "protein": 6, "carbs": 0.6, "fat": 5}},
	})
	assert.Equal(t, 400, w.Code)
}

func TestMealsByDateRange(t *testing.T) {
	r := newTestRouter()

	for _, date := range []string{"2024-01-01", "2024-01-07", "2024-01-08"} {
		w := doJSON(t, r, http.MethodPost, "/api/meals", gin.H{
			"userId": 1, "name": "Refeição", "time": "12:00", "date": date,
			"foods": []gin.H{{"name": "Ovo", "quantity": 1, "unit": "unidade", "protein": 6, "carbs": 0.6, "fat": 5}},
		})
		require.Equal(t, 201, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/users/1/meals?startDate=2024-01-01&endDate=2024-01-07", nil)
	require.Equal(t, 200, w.Code)
	meals := decode[[]models.Meal](t, w)
	require.Len(t, meals, 2) // the 2024-01-08 meal is excluded
	assert.Equal(t, "2024-01-01", meals[0].Date)
	assert.Equal(t, "2024-01-07", meals[1].Date)

	// No filter returns everything the user logged.
	w = doJSON(t, r, http.MethodGet, "/api/users/1/meals", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decode[[]models.Meal](t, w), 3)

	w = doJSON(t, r, http.MethodGet, "/api/users/999/meals", nil)
	assert.Equal(t, 404, w.Code)
}

func TestFoods(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/foods", nil)
	require.Equal(t, 200, w.Code)
	foods := decode[[]models.Food](t, w)
	assert.Len(t, foods, 9) // seeded catalog

	w = doJSON(t, r, http.MethodPost, "/api/foods", gin.H{
		"name": "Aveia", "quantity": 30, "unit": "g", "protein": 4.2, "carbs": 16.9, "fat": 2.1,
	})
	require.Equal(t, 201, w.Code)
	created := decode[models.Food](t, w)
	assert.InDelta(t, 103.3, created.Calories, 1e-9) // unrounded catalog rule

	w = doJSON(t, r, http.MethodGet, "/api/foods?name=aveia", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Aveia", decode[models.Food](t, w).Name)

	w = doJSON(t, r, http.MethodGet, "/api/foods?name=Pizza", nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/foods", gin.H{"name": "Sem macros", "unit": "g"})
	assert.Equal(t, 400, w.Code)
}

func TestContact(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name": "João", "email": "joao@example.com",
		"subject": "Dúvida", "message": "Olá",
	})
	require.Equal(t, 201, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "Message sent successfully", resp["message"])
	assert.Equal(t, float64(1), resp["id"])

	w = doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name": "João", "email": "not-an-email", "subject": "x", "message": "y",
	})
	assert.Equal(t, 400, w.Code)
}

func TestDailySummary(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/meals", gin.H{
		"userId": 1, "name": "Almoço", "time": "12:30", "date": "2024-06-01",
		"foods": []gin.H{{"name": "Frango Grelhado", "quantity": 100, "unit": "g", "protein": 31, "carbs": 0, "fat": 3.6}},
		"protein": 31, "carbs": 0, "fat": 3.6,
	})
	require.Equal(t, 201, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/1/summary?date=2024-06-01", nil)
	require.Equal(t, 200, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, float64(156), resp["calories"]) // round(124 + 32.4)
	assert.Equal(t, float64(2500), resp["goal"])    // seeded goal
	assert.Equal(t, float64(-2344), resp["deficit"])

	w = doJSON(t, r, http.MethodGet, "/api/users/1/summary?date=01-06-2024", nil)
	assert.Equal(t, 400, w.Code)
}

func TestWeeklyReport(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/users/1/reports/weekly", nil)
	require.Equal(t, 200, w.Code)

	var week []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &week))
	require.Len(t, week, 7)
	for _, day := range week {
		assert.NotEmpty(t, day["day"])
		assert.NotEmpty(t, day["date"])
	}
}

func TestUserMetrics(t *testing.T) {
	r := newTestRouter()

	// Seeded user 1: male, 30y, 75kg, 175cm, moderate.
	w := doJSON(t, r, http.MethodGet, "/api/users/1/metrics", nil)
	require.Equal(t, 200, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, 24.5, resp["bmi"]) // 75 / 1.75^2 = 24.49 -> 24.5
	assert.Equal(t, "Peso normal", resp["bmiCategory"])
	// Harris-Benedict: 1762.652 * 1.55 -> 2732.
	assert.Equal(t, float64(2732), resp["recommendedCalories"])

	w = doJSON(t, r, http.MethodGet, "/api/users/999/metrics", nil)
	assert.Equal(t, 404, w.Code)
}
