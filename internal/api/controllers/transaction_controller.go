package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolpay/internal/models/request_models"
	"schoolpay/internal/services"
	"schoolpay/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionService
}

func NewTransactionController(transactionService services.TransactionService) *TransactionController {
	return &TransactionController{transactionService: transactionService}
}

func (t *TransactionController) ListTransactions(c *gin.Context) {
	var query request_models.TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := t.transactionService.List(c.Request.Context(), &query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "")
}

func (t *TransactionController) ListTransactionsBySchool(c *gin.Context) {
	var query request_models.TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := t.transactionService.ListBySchool(c.Request.Context(), c.Param("schoolId"), &query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "")
}

func (t *TransactionController) TransactionStatus(c *gin.Context) {
	resp, err := t.transactionService.Status(c.Request.Context(), c.Param("custom_order_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "")
}

func (t *TransactionController) TransactionStats(c *gin.Context) {
	var query request_models.TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := t.transactionService.Stats(c.Request.Context(), &query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, resp, "")
}
