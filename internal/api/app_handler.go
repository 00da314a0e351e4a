package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/nav"
)

// AppHandler serves the app shell endpoints: screen routing metadata and
// the subscription plan catalog.
type AppHandler struct{}

// NewAppHandler creates a new AppHandler.
func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// SubscriptionPlan is one entry of the static plan catalog.
type SubscriptionPlan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"priceMonthly"` // BRL
	MaxStudents  int      `json:"maxStudents"`  // 0 means unlimited
	Features     []string `json:"features"`
}

// subscriptionPlans is the fixed catalog shown on the subscription
// screen. Billing itself is out of scope; the app only displays plans.
var subscriptionPlans = []SubscriptionPlan{
	{
		ID:           "starter",
		Name:         "Starter",
		PriceMonthly: 49.90,
		MaxStudents:  5,
		Features:     []string{"Até 5 alunos", "Biblioteca de exercícios", "Treinos personalizados"},
	},
	{
		ID:           "pro",
		Name:         "Pro",
		PriceMonthly: 99.90,
		MaxStudents:  20,
		Features:     []string{"Até 20 alunos", "Avaliações físicas", "Chat com alunos", "Desafios"},
	},
	{
		ID:           "unlimited",
		Name:         "Unlimited",
		PriceMonthly: 179.90,
		MaxStudents:  0,
		Features:     []string{"Alunos ilimitados", "Todos os recursos", "Suporte prioritário"},
	},
}

// Routes returns the screen route table.
func (h *AppHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, nav.Routes)
}

// ResolvePath maps a concrete path to a screen. Unknown paths resolve
// to the not-found screen with a link back to the dashboard.
func (h *AppHandler) ResolvePath(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		abortWithError(c, http.StatusBadRequest, "path query parameter is required")
		return
	}

	screen := nav.Resolve(path)
	resp := gin.H{"path": path, "screen": screen}
	if screen == nav.ScreenNotFound {
		resp["back"] = "/"
	}
	c.JSON(http.StatusOK, resp)
}

// Plans returns the subscription plan catalog.
func (h *AppHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, subscriptionPlans)
}

// NotFound is the catch-all for unknown API paths.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":  "Route not found",
		"screen": nav.ScreenNotFound,
		"back":   "/",
	})
}
