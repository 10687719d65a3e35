package plansapi

import (
	"net/http"

	"clipgenie/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type PlanDTO struct {
	Key      plans.Plan       `json:"key"`
	Name     string           `json:"name"`
	Features plans.FeatureSet `json:"features"`
}

func buildPlanDTO(p plans.Plan, f plans.FeatureSet) PlanDTO {
	return PlanDTO{Key: p, Name: p.DisplayName(), Features: f}
}

// GET /plans
func ListPlans(c *gin.Context) {
	out := make([]PlanDTO, 0, len(plans.All))
	for _, p := range plans.All {
		out = append(out, buildPlanDTO(p, plans.MustFeatures(p)))
	}
	c.JSON(http.StatusOK, out)
}

// GET /plans/:plan
func GetPlan(c *gin.Context) {
	p, err := plans.Parse(c.Param("plan"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	features, err := plans.GetPlanFeatures(p)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	c.JSON(http.StatusOK, buildPlanDTO(p, features))
}
