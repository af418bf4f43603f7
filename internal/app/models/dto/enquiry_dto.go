package dto

import "github.com/yigit/coursecatalog/internal/app/models"

// EnquiryRequest is an admission enquiry submitted by a visitor
type EnquiryRequest struct {
	Name          string `json:"name" form:"name" validate:"required,min=2,max=100" example:"Riya Sharma"`
	Phone         string `json:"phone" form:"phone" validate:"required,phone" example:"+91-9876543210"`
	Email         string `json:"email,omitempty" form:"email" validate:"omitempty,email,max=254" example:"riya@example.com"`
	ClassInterest string `json:"classInterest,omitempty" form:"class" validate:"required_without=CourseID,max=100" example:"Class 11 Commerce"`
	CourseID      string `json:"courseId,omitempty" form:"course" validate:"max=100" example:"11-accounts"`
	Message       string `json:"message,omitempty" form:"message" validate:"max=1000" example:"Evening batch preferred"`
}

// EnquiryResponse carries the composed message and its chat link
type EnquiryResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl" example:"https://wa.me/919289071052?text=Hello%21"`
}

// InstituteResponse is the institute profile with its enquiry form options
type InstituteResponse struct {
	Institute      models.Institute            `json:"institute"`
	EnquiryOptions []models.EnquiryOptionGroup `json:"enquiryOptions"`
}
