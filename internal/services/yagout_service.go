package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"

	"shoepay_app_echo/internal/config"
	"shoepay_app_echo/internal/yagout"
)

// GatewayError is a non-2xx reply from the gateway. The decoded upstream body
// is kept so handlers can embed it in the error envelope for diagnosis.
type GatewayError struct {
	StatusCode int
	Body       any
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// Message pulls the gateway's own message out of the upstream body when it has
// one.
func (e *GatewayError) Message() string {
	if m, ok := e.Body.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}

// YagoutService is the outbound HTTP client for the YagoutPay gateway.
type YagoutService struct {
	cfg    config.Config
	client *resty.Client
}

func NewYagoutService(cfg config.Config) *YagoutService {
	client := resty.New().
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.InsecureTLS {
		// UAT gateway certificates do not always validate. Gated by config
		// and off by default; never enable in production.
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
		log.Println("Warning: gateway TLS verification disabled (UAT mode)")
	}
	return &YagoutService{cfg: cfg, client: client}
}

// PostAPIIntegration sends the direct-API envelope and returns the raw
// response body. Requests are never retried here; retry is a caller decision.
func (s *YagoutService) PostAPIIntegration(ctx context.Context, env yagout.APIEnvelope) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(env).
		Post(s.cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("call apiIntegration: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: yagout.DecodeGatewayBody(resp.Body())}
	}
	return resp.Body(), nil
}

// PostPaymentLink sends a link envelope to url. The merchant id travels in the
// me_id header on this endpoint family rather than in the body.
func (s *YagoutService) PostPaymentLink(ctx context.Context, url string, env yagout.LinkEnvelope) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("me_id", s.cfg.MerchantID).
		SetBody(env).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("call paymentByLinkResponse: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: yagout.DecodeGatewayBody(resp.Body())}
	}
	return resp.Body(), nil
}
