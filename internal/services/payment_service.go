package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"shoepay_app_echo/internal/config"
	"shoepay_app_echo/internal/models"
	"shoepay_app_echo/internal/yagout"
)

// PaymentService sequences the relay pipeline: validate → transform →
// encrypt → call gateway → interpret → normalized result. It holds no mutable
// state; every call is independent.
type PaymentService struct {
	cfg         config.Config
	gateway     *YagoutService
	codec       yagout.Codec
	hostedCodec yagout.Codec
}

func NewPaymentService(cfg config.Config, gateway *YagoutService) *PaymentService {
	return &PaymentService{
		cfg:         cfg,
		gateway:     gateway,
		codec:       yagout.NewCodec(cfg.EncryptionKey),
		hostedCodec: yagout.NewCodec(cfg.EncryptionKeyHosted),
	}
}

func (s *PaymentService) merchantContext() yagout.MerchantContext {
	return yagout.MerchantContext{
		AggregatorID: s.cfg.AggregatorID,
		MerchantID:   s.cfg.MerchantID,
	}
}

// InitiatePayment runs the direct-API flow and returns the gateway's decoded
// response verbatim; the mobile client interprets payment outcome itself on
// this path.
func (s *PaymentService) InitiatePayment(ctx context.Context, req models.PaymentInitiateRequest) (any, error) {
	payload := yagout.BuildTransactionPayload(req, s.merchantContext())
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal transaction payload: %w", err)
	}
	encrypted, err := s.codec.EncryptB64(string(data))
	if err != nil {
		return nil, fmt.Errorf("encrypt merchant request: %w", err)
	}

	env := yagout.APIEnvelope{
		MerchantID:      s.cfg.MerchantID,
		MerchantRequest: encrypted,
	}
	log.Printf("initiating direct API payment order_no=%s", req.OrderNo)
	body, err := s.gateway.PostAPIIntegration(ctx, env)
	if err != nil {
		return nil, err
	}
	return yagout.DecodeGatewayBody(body), nil
}

// LinkCreateResult is the response shape for both link endpoints.
type LinkCreateResult struct {
	Success         bool               `json:"success"`
	Status          string             `json:"status"`
	Data            any                `json:"data"`
	DecryptedData   map[string]any     `json:"decrypted_data"`
	PaymentLink     string             `json:"payment_link"`
	OrderID         string             `json:"order_id"`
	OriginalPayload yagout.LinkPayload `json:"originalPayload"`
	Timestamp       string             `json:"timestamp"`
}

// CreateLink runs the payment-link flow. The order id is always generated
// fresh, never taken from the caller, and is returned even on failure so the
// client can correlate a manual retry.
func (s *PaymentService) CreateLink(ctx context.Context, req models.LinkCreateRequest, kind yagout.LinkKind) (*LinkCreateResult, string, error) {
	orderID := yagout.GenerateOrderID()
	if err := yagout.ValidateOrderID(orderID); err != nil {
		return nil, orderID, err
	}
	log.Printf("generated order id %s", orderID)

	payload := yagout.BuildLinkPayload(req, orderID, kind, time.Now())
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, orderID, fmt.Errorf("marshal link payload: %w", err)
	}
	encrypted, err := s.codec.EncryptB64(string(data))
	if err != nil {
		return nil, orderID, fmt.Errorf("encrypt link payload: %w", err)
	}

	url := s.cfg.PaymentLinkURL
	if kind == yagout.StaticLink {
		url = s.cfg.StaticLinkURL
	}
	body, err := s.gateway.PostPaymentLink(ctx, url, yagout.LinkEnvelope{Request: encrypted})
	if err != nil {
		return nil, orderID, err
	}

	interp := yagout.InterpretResponse(body, s.codec)
	log.Printf("link response order_id=%s status=%s link=%q", orderID, interp.Status, interp.PaymentLink)

	return &LinkCreateResult{
		Success:         true,
		Status:          interp.Status,
		Data:            yagout.DecodeGatewayBody(body),
		DecryptedData:   interp.Decrypted,
		PaymentLink:     interp.PaymentLink,
		OrderID:         orderID,
		OriginalPayload: payload,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}, orderID, nil
}

// DecryptProbe decrypts a blob with the merchant key and runs the response
// parser over it. Diagnostic use only.
func (s *PaymentService) DecryptProbe(encrypted string) (string, yagout.ParseResult, error) {
	plain, err := s.codec.DecryptB64(encrypted)
	if err != nil {
		return "", yagout.ParseResult{}, err
	}
	return plain, yagout.ParseDecrypted(plain), nil
}

// PrepareHostedPayment builds the form-post material for the hosted checkout
// flow. A missing order number is generated here.
func (s *PaymentService) PrepareHostedPayment(req models.HostedInitiateRequest) (*yagout.HostedRequest, error) {
	if req.OrderNo == "" {
		req.OrderNo = yagout.GenerateOrderNo()
	}
	mc := yagout.MerchantContext{
		AggregatorID: s.cfg.AggregatorID,
		MerchantID:   s.cfg.MerchantIDHosted,
	}
	return yagout.BuildHostedRequest(req, mc, s.hostedCodec, s.cfg.HostedPostURL)
}
