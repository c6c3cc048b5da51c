package controller

import (
	"answer_board_backend/internal/util"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary Health check
// @Description Reports service and datastore status
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx, util.UpstreamMessage(err))
		return
	}

	if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, util.KindUpstream, "Database unavailable: "+err.Error())
		return
	}

	util.Success(ctx, gin.H{
		"components": gin.H{
			"database": "up",
		},
	})
}

// ListRoutes reports every registered "METHOD path".
func (c *HealthController) ListRoutes(engine *gin.Engine) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		routes := engine.Routes()
		out := make([]string, 0, len(routes))
		for _, r := range routes {
			out = append(out, r.Method+" "+r.Path)
		}
		sort.Strings(out)
		ctx.JSON(http.StatusOK, out)
	}
}
