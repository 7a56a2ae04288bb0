package api

import (
	"io"
	"net/http"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps what the payment webhook reads.
const maxWebhookBody = 64 << 10

type CheckoutHandler struct {
	service checkout.CheckoutUseCase
}

func NewCheckoutHandler(service checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

func (h *CheckoutHandler) Register(public, _ *gin.RouterGroup) {
	public.POST("/checkout", h.checkout)
	public.POST("/payments/webhook", h.webhook)
}

func (h *CheckoutHandler) checkout(c *gin.Context) {
	var input checkout.CheckoutInput
	if !bindJSON(c, &input) {
		return
	}
	session, err := h.service.Checkout(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Session created", "url": session.RedirectURL, "session_id": session.ID})
}

func (h *CheckoutHandler) webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		writeError(c, domain.Invalid("unreadable body"))
		return
	}
	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
