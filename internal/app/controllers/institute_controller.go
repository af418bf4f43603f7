package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
)

// InstituteController exposes the institute profile
type InstituteController struct {
	instituteService services.InstituteService
	courseCount      int
}

// NewInstituteController creates a new InstituteController
func NewInstituteController(instituteService services.InstituteService, courseCount int) *InstituteController {
	return &InstituteController{
		instituteService: instituteService,
		courseCount:      courseCount,
	}
}

// GetInstitute returns the institute profile
// @Summary Institute profile
// @Description Contact details of the institute and the options of the enquiry form
// @Tags institute
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.InstituteResponse} "Institute profile"
// @Router /institute [get]
func (c *InstituteController) GetInstitute(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.instituteService.GetInstitute(ctx.Request.Context())))
}

// Health reports liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service is up"
// @Router /health [get]
func (c *InstituteController) Health(ctx *gin.Context) {
	inst := c.instituteService.GetInstitute(ctx.Request.Context()).Institute
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:    "ok",
		Institute: inst.Name,
		Courses:   c.courseCount,
	}))
}
