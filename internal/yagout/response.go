package yagout

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Normalized statuses surfaced to the mobile client.
const (
	StatusSuccess          = "SUCCESS"
	StatusFailed           = "FAILED"
	StatusAPIError         = "API_ERROR"
	StatusDecryptionFailed = "DECRYPTION_FAILED"
	StatusError            = "ERROR"
)

// clickToWishMarker opens the gateway's semi-structured text response format:
// the marker token, then "key = value" pairs separated by commas, with an
// embedded JSON blob under data.
const clickToWishMarker = "clicktowishResponse"

var (
	reCTWStatus  = regexp.MustCompile(`status = (\w+)`)
	reCTWMessage = regexp.MustCompile(`message = ([^,]+)`)
	reCTWData    = regexp.MustCompile(`data = ({.*?}), hasErrors`)
)

// paymentLinkAliases lists the candidate field names a payment link may hide
// under, checked first-match-wins. The upstream response schema is unstable
// per endpoint, so this list tracks what UAT has been observed to return.
var paymentLinkAliases = []string{
	"PaymentLink", "payment_link", "pay_link", "link", "url", "redirectUrl", "payment_url",
}

var (
	orderIDAliases = []string{"orderId", "order_id"}
	linkIDAliases  = []string{"LinkId", "link_id"}
)

// ParseResult is the outcome of parsing one decrypted gateway response.
type ParseResult struct {
	Success       bool           `json:"success"`
	Status        string         `json:"status"`
	Message       string         `json:"message"`
	PaymentLink   string         `json:"payment_link,omitempty"`
	OrderID       string         `json:"order_id,omitempty"`
	LinkID        string         `json:"link_id,omitempty"`
	DecryptedData map[string]any `json:"decrypted_data,omitempty"`
	APIStatus     string         `json:"api_status,omitempty"`
	Error         string         `json:"error,omitempty"`
	RawData       string         `json:"raw_data,omitempty"`
	RawResponse   string         `json:"raw_response,omitempty"`
}

// Format tags the two known decrypted response shapes.
type Format int

const (
	FormatClickToWish Format = iota
	FormatJSON
)

// DetectFormat classifies decrypted text by its leading marker.
func DetectFormat(text string) Format {
	if strings.HasPrefix(text, clickToWishMarker) {
		return FormatClickToWish
	}
	return FormatJSON
}

// ParseDecrypted parses decrypted gateway text in either known format.
// Missing optional fields are left empty rather than treated as errors; only
// structurally unparsable input yields an error status, and nothing panics.
func ParseDecrypted(text string) ParseResult {
	switch DetectFormat(text) {
	case FormatClickToWish:
		return parseClickToWish(text)
	default:
		return parsePlainJSON(text)
	}
}

func parseClickToWish(text string) ParseResult {
	status := "unknown"
	if m := reCTWStatus.FindStringSubmatch(text); m != nil {
		status = m[1]
	}
	message := "No message"
	if m := reCTWMessage.FindStringSubmatch(text); m != nil {
		message = strings.TrimSpace(m[1])
	}
	dataStr := "null"
	if m := reCTWData.FindStringSubmatch(text); m != nil {
		dataStr = strings.TrimSpace(m[1])
	}

	if !strings.EqualFold(status, "success") || dataStr == "null" {
		return ParseResult{
			Success:   false,
			Status:    StatusAPIError,
			Message:   fmt.Sprintf("API Error: %s", message),
			Error:     message,
			APIStatus: status,
		}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(dataStr), &data); err != nil {
		return ParseResult{
			Success: false,
			Status:  StatusError,
			Message: "Failed to parse data JSON",
			Error:   err.Error(),
			RawData: dataStr,
		}
	}
	return ParseResult{
		Success:       true,
		Status:        StatusSuccess,
		Message:       "Payment link created successfully",
		PaymentLink:   firstString(data, paymentLinkAliases),
		OrderID:       firstString(data, orderIDAliases),
		LinkID:        firstString(data, linkIDAliases),
		DecryptedData: data,
	}
}

func parsePlainJSON(text string) ParseResult {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return ParseResult{
			Success:     false,
			Status:      StatusError,
			Message:     "Invalid response format",
			Error:       err.Error(),
			RawResponse: text,
		}
	}
	return ParseResult{
		Success:       true,
		Status:        StatusSuccess,
		Message:       "Payment link created successfully",
		PaymentLink:   firstString(data, paymentLinkAliases),
		DecryptedData: data,
	}
}

// firstString returns the first present alias as a string. Non-string scalars
// are stringified; ids in particular arrive as numbers on some endpoints.
func firstString(m map[string]any, aliases []string) string {
	for _, k := range aliases {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64, json.Number, bool:
			return fmt.Sprint(t)
		}
	}
	return ""
}

// Interpretation is the result of classifying and parsing a raw gateway
// response body.
type Interpretation struct {
	PaymentLink string
	Status      string
	Decrypted   map[string]any
	Parse       *ParseResult
}

// InterpretResponse runs the three-shape classification over a raw gateway
// body: a bare string is ciphertext; an object with a response string field is
// either a direct URL or ciphertext; anything else passes through as
// already-structured data.
func InterpretResponse(body []byte, codec Codec) Interpretation {
	out := Interpretation{Status: StatusSuccess}

	var ciphertext string
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		// Not JSON at all: the body is the raw ciphertext text.
		ciphertext = strings.TrimSpace(string(body))
	} else {
		switch t := v.(type) {
		case string:
			ciphertext = strings.TrimSpace(t)
		case map[string]any:
			respStr, ok := t["response"].(string)
			if !ok {
				return out // structured data, pass through unmodified
			}
			respStr = strings.TrimSpace(respStr)
			if strings.HasPrefix(respStr, "http") {
				out.PaymentLink = respStr
				return out
			}
			ciphertext = respStr
		default:
			return out
		}
	}

	plain, err := codec.DecryptB64(ciphertext)
	if err != nil {
		out.Status = StatusDecryptionFailed
		return out
	}
	pr := ParseDecrypted(plain)
	out.Parse = &pr
	out.Status = pr.Status
	if pr.Success {
		out.PaymentLink = pr.PaymentLink
		out.Decrypted = pr.DecryptedData
	}
	return out
}

// DecodeGatewayBody decodes a gateway body for verbatim passthrough, falling
// back to the raw text when it is not JSON.
func DecodeGatewayBody(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
