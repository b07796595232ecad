package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolpay/internal/models/request_models"
	"schoolpay/internal/services"
	"schoolpay/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

func (p *PaymentController) CreatePayment(c *gin.Context) {
	var request request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := p.paymentService.CreatePayment(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, resp, "Payment order created successfully")
}

func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := p.paymentService.VerifyPayment(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "Payment verified successfully")
}

// HandleWebhook has no auth; the gateway pushes here. The payload shape
// is the only trust check on this route.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	var request request_models.WebhookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	status, err := p.paymentService.HandleWebhook(
		c.Request.Context(), &request, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Error processing webhook")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"order_status": status}, "Webhook processed successfully")
}

func (p *PaymentController) GetPaymentDetails(c *gin.Context) {
	orderCode := c.Param("order_id")

	resp, err := p.paymentService.GetPaymentDetails(c.Request.Context(), orderCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "")
}
