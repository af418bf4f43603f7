package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// EnquiryController handles admission enquiries
type EnquiryController struct {
	enquiryService services.EnquiryService
}

// NewEnquiryController creates a new EnquiryController
func NewEnquiryController(enquiryService services.EnquiryService) *EnquiryController {
	return &EnquiryController{
		enquiryService: enquiryService,
	}
}

// CreateEnquiry builds the WhatsApp link for an enquiry
// @Summary Submit an admission enquiry
// @Description Validates the enquiry and returns the WhatsApp message and click-to-chat link that carries it
// @Tags enquiries
// @Accept json
// @Produce json
// @Param request body dto.EnquiryRequest true "Enquiry"
// @Success 201 {object} dto.APIResponse{data=dto.EnquiryResponse} "Enquiry link created"
// @Failure 400 {object} dto.ErrorResponse "Invalid enquiry"
// @Router /enquiries [post]
func (c *EnquiryController) CreateEnquiry(ctx *gin.Context) {
	req, ok := ctx.MustGet(middleware.ValidatedBodyKey).(*dto.EnquiryRequest)
	if !ok {
		middleware.HandleAPIError(ctx, errInvalidBody)
		return
	}

	resp, err := c.enquiryService.Submit(ctx.Request.Context(), *req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}
