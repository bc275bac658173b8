package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shoepay_app_echo/internal/models"
	"shoepay_app_echo/internal/services"
	"shoepay_app_echo/internal/yagout"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// InitiatePayment handles POST /payments/api/initiate. On success the
// gateway's own JSON body is passed through verbatim; a 200 only means the
// call succeeded, not that the payment did.
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req models.PaymentInitiateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, FailedResponse{
			Status:  "Failed",
			Message: "Missing required fields",
		})
	}
	if !req.HasRequiredFields() {
		return c.JSON(http.StatusBadRequest, FailedResponse{
			Status:  "Failed",
			Message: "Missing required fields",
		})
	}

	data, err := h.service.InitiatePayment(c.Request().Context(), req)
	if err != nil {
		var ge *services.GatewayError
		if errors.As(err, &ge) {
			msg := ge.Message()
			if msg == "" {
				msg = "Payment processing failed"
			}
			return c.JSON(http.StatusInternalServerError, FailedResponse{
				Status:  "Failed",
				Message: msg,
				Error:   ge.Body,
			})
		}
		return c.JSON(http.StatusInternalServerError, FailedResponse{
			Status:  "Failed",
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, data)
}

// CreatePaymentLink handles POST /payments/link/create.
func (h *PaymentHandler) CreatePaymentLink(c echo.Context) error {
	return h.createLink(c, yagout.PaymentLink)
}

// CreateStaticLink handles POST /payments/static-link/create.
func (h *PaymentHandler) CreateStaticLink(c echo.Context) error {
	return h.createLink(c, yagout.StaticLink)
}

func (h *PaymentHandler) createLink(c echo.Context, kind yagout.LinkKind) error {
	var req models.LinkCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, FailedResponse{
			Status:  "Failed",
			Message: "Missing required fields: req_user_id, me_id, amount, mobile_no",
		})
	}
	if !req.HasRequiredFields() {
		return c.JSON(http.StatusBadRequest, FailedResponse{
			Status:  "Failed",
			Message: "Missing required fields: req_user_id, me_id, amount, mobile_no",
		})
	}

	result, orderID, err := h.service.CreateLink(c.Request().Context(), req, kind)
	if err != nil {
		if errors.Is(err, yagout.ErrInvalidOrderID) {
			return c.JSON(http.StatusBadRequest, FailedResponse{
				Status:  "Failed",
				Message: "Failed to generate valid order ID: " + err.Error(),
			})
		}
		var ge *services.GatewayError
		if errors.As(err, &ge) {
			return c.JSON(http.StatusInternalServerError, LinkErrorResponse{
				Status:  yagout.StatusError,
				Message: fmt.Sprintf("API Error: %d", ge.StatusCode),
				Error:   ge.Body,
				OrderID: orderID,
			})
		}
		return c.JSON(http.StatusInternalServerError, LinkErrorResponse{
			Status:  yagout.StatusError,
			Message: "Network Error: " + err.Error(),
			OrderID: orderID,
		})
	}
	return c.JSON(http.StatusOK, result)
}

// HostedInitiate handles POST /payments/hosted/initiate: returns the
// auto-submit form material for the WebView checkout.
func (h *PaymentHandler) HostedInitiate(c echo.Context) error {
	var req models.HostedInitiateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, FailedResponse{
			Status:  "Failed",
			Message: "Missing required fields",
		})
	}
	if !req.HasRequiredFields() {
		return c.JSON(http.StatusBadRequest, FailedResponse{
			Status:  "Failed",
			Message: "Missing required fields",
		})
	}

	prepared, err := h.service.PrepareHostedPayment(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, FailedResponse{
			Status:  "Failed",
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, prepared)
}

// TestDecrypt handles POST /test/decrypt, a diagnostic endpoint that decrypts
// a blob with the configured merchant key and shows the parser's view of it.
func (h *PaymentHandler) TestDecrypt(c echo.Context) error {
	var req DecryptTestRequest
	if err := c.Bind(&req); err != nil || req.EncryptedData == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing encryptedData in request body",
		})
	}

	decrypted, parseResult, err := h.service.DecryptProbe(req.EncryptedData)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, DecryptTestError{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, DecryptTestResponse{
		Success:       true,
		EncryptedData: req.EncryptedData,
		DecryptedData: decrypted,
		ParseResult:   parseResult,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /.
func (h *PaymentHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Message:   "YagoutPay relay server is running!",
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
