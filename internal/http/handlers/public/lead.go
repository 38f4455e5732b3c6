package public

import (
	"github.com/wabi-shop/internal/http/response"
	"github.com/wabi-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscribeRequest 订阅邮件列表请求
type SubscribeRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// ContactUsRequest 联系我们请求
type ContactUsRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// Subscribe 订阅邮件列表
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if _, err := h.LeadService.Subscribe(req.Username, req.Email); err != nil {
		respondWithMappedError(c, err, leadErrorRules, response.CodeInternal, "error.subscribe_failed")
		return
	}
	response.Success(c, gin.H{"subscribed": true})
}

// SubmitContactUs 提交联系我们留言
func (h *Handler) SubmitContactUs(c *gin.Context) {
	var req ContactUsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if _, err := h.LeadService.SubmitContactUs(service.ContactUsInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	}); err != nil {
		respondWithMappedError(c, err, leadErrorRules, response.CodeInternal, "error.contact_failed")
		return
	}
	response.Success(c, gin.H{"submitted": true})
}
