package yagout

import (
	"encoding/json"
	"testing"
)

const (
	ctwSuccessText = `clicktowishResponse status = success , message = OK , data = {"PaymentLink":"https://pay.example/x"}, hasErrors = false`
	ctwFailedText  = `clicktowishResponse status = failed , message = insufficient funds , data = null, hasErrors = true`
)

func TestDetectFormat(t *testing.T) {
	if got := DetectFormat(ctwSuccessText); got != FormatClickToWish {
		t.Errorf("DetectFormat(ctw) = %v; want FormatClickToWish", got)
	}
	if got := DetectFormat(`{"url":"x"}`); got != FormatJSON {
		t.Errorf("DetectFormat(json) = %v; want FormatJSON", got)
	}
	// marker must lead; an embedded mention does not switch format
	if got := DetectFormat(`{"note":"clicktowishResponse"}`); got != FormatJSON {
		t.Errorf("DetectFormat(embedded marker) = %v; want FormatJSON", got)
	}
}

func TestParseDecryptedClickToWishSuccess(t *testing.T) {
	pr := ParseDecrypted(ctwSuccessText)
	if !pr.Success || pr.Status != StatusSuccess {
		t.Fatalf("parse = %+v; want success", pr)
	}
	if pr.Message != "Payment link created successfully" {
		t.Errorf("message = %q", pr.Message)
	}
	if pr.PaymentLink != "https://pay.example/x" {
		t.Errorf("payment link = %q; want https://pay.example/x", pr.PaymentLink)
	}
	if pr.DecryptedData["PaymentLink"] != "https://pay.example/x" {
		t.Errorf("decrypted data = %v", pr.DecryptedData)
	}
}

func TestParseDecryptedClickToWishFailure(t *testing.T) {
	pr := ParseDecrypted(ctwFailedText)
	if pr.Success || pr.Status != StatusAPIError {
		t.Fatalf("parse = %+v; want API_ERROR", pr)
	}
	if pr.Message != "API Error: insufficient funds" {
		t.Errorf("message = %q", pr.Message)
	}
	if pr.Error != "insufficient funds" || pr.APIStatus != "failed" {
		t.Errorf("error = %q api_status = %q", pr.Error, pr.APIStatus)
	}
}

func TestParseDecryptedClickToWishMissingFields(t *testing.T) {
	pr := ParseDecrypted("clicktowishResponse nothing useful here")
	if pr.Success || pr.Status != StatusAPIError {
		t.Fatalf("parse = %+v; want API_ERROR", pr)
	}
	if pr.APIStatus != "unknown" || pr.Error != "No message" {
		t.Errorf("defaults not applied: api_status = %q error = %q", pr.APIStatus, pr.Error)
	}
}

func TestParseDecryptedClickToWishBadDataJSON(t *testing.T) {
	text := `clicktowishResponse status = success , message = OK , data = {broken, hasErrors = false`
	// the data regex requires a closing brace before ", hasErrors"; without one
	// the capture stays null and the parse degrades to an API error
	pr := ParseDecrypted(text)
	if pr.Status != StatusAPIError {
		t.Fatalf("parse = %+v; want API_ERROR on uncapturable data", pr)
	}

	text = `clicktowishResponse status = success , message = OK , data = {"a":}, hasErrors = false`
	pr = ParseDecrypted(text)
	if pr.Success || pr.Status != StatusError {
		t.Fatalf("parse = %+v; want ERROR", pr)
	}
	if pr.Message != "Failed to parse data JSON" {
		t.Errorf("message = %q", pr.Message)
	}
	if pr.RawData != `{"a":}` {
		t.Errorf("raw data = %q", pr.RawData)
	}
}

func TestParseDecryptedPlainJSON(t *testing.T) {
	pr := ParseDecrypted(`{"url":"https://pay.example/y"}`)
	if !pr.Success || pr.Status != StatusSuccess {
		t.Fatalf("parse = %+v; want success", pr)
	}
	if pr.PaymentLink != "https://pay.example/y" {
		t.Errorf("payment link = %q; want https://pay.example/y", pr.PaymentLink)
	}
}

func TestParseDecryptedNotJSON(t *testing.T) {
	pr := ParseDecrypted("not json and no marker")
	if pr.Success || pr.Status != StatusError {
		t.Fatalf("parse = %+v; want ERROR", pr)
	}
	if pr.Message != "Invalid response format" {
		t.Errorf("message = %q", pr.Message)
	}
	if pr.RawResponse != "not json and no marker" {
		t.Errorf("raw response = %q", pr.RawResponse)
	}
}

func TestPaymentLinkAliasPrecedence(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"PaymentLink wins over url", `{"url":"https://b","PaymentLink":"https://a"}`, "https://a"},
		{"payment_link second", `{"payment_link":"https://c","link":"https://d"}`, "https://c"},
		{"redirectUrl", `{"redirectUrl":"https://e"}`, "https://e"},
		{"empty string skipped", `{"PaymentLink":"","url":"https://f"}`, "https://f"},
		{"null skipped", `{"PaymentLink":null,"pay_link":"https://g"}`, "https://g"},
		{"no alias present", `{"something":"https://h"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := ParseDecrypted(tt.data)
			if pr.PaymentLink != tt.want {
				t.Errorf("link = %q; want %q", pr.PaymentLink, tt.want)
			}
		})
	}
}

func TestCTWIdentifierAliases(t *testing.T) {
	text := `clicktowishResponse status = success , message = OK , data = {"pay_link":"https://a","order_id":"OR-DOIT-4242","LinkId":9071}, hasErrors = false`
	pr := ParseDecrypted(text)
	if !pr.Success {
		t.Fatalf("parse = %+v; want success", pr)
	}
	if pr.OrderID != "OR-DOIT-4242" {
		t.Errorf("order id = %q", pr.OrderID)
	}
	// numeric ids are stringified
	if pr.LinkID != "9071" {
		t.Errorf("link id = %q; want 9071", pr.LinkID)
	}
}

func encryptForTest(t *testing.T, plaintext string) string {
	t.Helper()
	ct, err := NewCodec(testKey).EncryptB64(plaintext)
	if err != nil {
		t.Fatalf("EncryptB64(%q) failed: %v", plaintext, err)
	}
	return ct
}

func TestInterpretResponseStringCiphertext(t *testing.T) {
	codec := NewCodec(testKey)
	body, _ := json.Marshal(encryptForTest(t, ctwSuccessText))

	out := InterpretResponse(body, codec)
	if out.Status != StatusSuccess {
		t.Fatalf("status = %q; want SUCCESS", out.Status)
	}
	if out.PaymentLink != "https://pay.example/x" {
		t.Errorf("payment link = %q", out.PaymentLink)
	}
	if out.Parse == nil || !out.Parse.Success {
		t.Errorf("parse result missing: %+v", out.Parse)
	}
	if out.Decrypted["PaymentLink"] != "https://pay.example/x" {
		t.Errorf("decrypted = %v", out.Decrypted)
	}
}

func TestInterpretResponseRawCiphertextBody(t *testing.T) {
	// some gateway endpoints return the ciphertext bare, without JSON quoting
	codec := NewCodec(testKey)
	body := []byte(encryptForTest(t, `{"url":"https://pay.example/y"}`))

	out := InterpretResponse(body, codec)
	if out.Status != StatusSuccess || out.PaymentLink != "https://pay.example/y" {
		t.Errorf("got status=%q link=%q; want SUCCESS / https://pay.example/y", out.Status, out.PaymentLink)
	}
}

func TestInterpretResponseDirectLink(t *testing.T) {
	codec := NewCodec(testKey)
	out := InterpretResponse([]byte(`{"response":"https://pay.example/direct"}`), codec)
	if out.Status != StatusSuccess {
		t.Fatalf("status = %q; want SUCCESS", out.Status)
	}
	if out.PaymentLink != "https://pay.example/direct" {
		t.Errorf("payment link = %q", out.PaymentLink)
	}
	if out.Parse != nil {
		t.Errorf("direct link must not be parsed: %+v", out.Parse)
	}
}

func TestInterpretResponseEncryptedResponseField(t *testing.T) {
	codec := NewCodec(testKey)
	body, _ := json.Marshal(map[string]string{
		"response": encryptForTest(t, `{"url":"https://pay.example/y"}`),
	})

	out := InterpretResponse(body, codec)
	if out.Status != StatusSuccess || out.PaymentLink != "https://pay.example/y" {
		t.Errorf("got status=%q link=%q; want SUCCESS / https://pay.example/y", out.Status, out.PaymentLink)
	}
}

func TestInterpretResponseStructuredPassthrough(t *testing.T) {
	codec := NewCodec(testKey)
	out := InterpretResponse([]byte(`{"status":"ok","data":{"id":1}}`), codec)
	if out.Status != StatusSuccess {
		t.Errorf("status = %q; want SUCCESS", out.Status)
	}
	if out.PaymentLink != "" || out.Parse != nil {
		t.Errorf("passthrough must not decrypt or parse: %+v", out)
	}
}

func TestInterpretResponseDecryptionFailure(t *testing.T) {
	codec := NewCodec(testKey)
	out := InterpretResponse([]byte(`"!!!not-base64!!!"`), codec)
	if out.Status != StatusDecryptionFailed {
		t.Errorf("status = %q; want DECRYPTION_FAILED", out.Status)
	}
	if out.PaymentLink != "" {
		t.Errorf("payment link = %q; want empty", out.PaymentLink)
	}
}

func TestInterpretResponseAPIError(t *testing.T) {
	codec := NewCodec(testKey)
	body, _ := json.Marshal(encryptForTest(t, ctwFailedText))

	out := InterpretResponse(body, codec)
	if out.Status != StatusAPIError {
		t.Fatalf("status = %q; want API_ERROR", out.Status)
	}
	if out.PaymentLink != "" || out.Decrypted != nil {
		t.Errorf("failed parse must not surface link/data: %+v", out)
	}
	if out.Parse == nil || out.Parse.Message != "API Error: insufficient funds" {
		t.Errorf("parse = %+v", out.Parse)
	}
}

func TestDecodeGatewayBody(t *testing.T) {
	if v := DecodeGatewayBody([]byte(`{"a":1}`)); v.(map[string]any)["a"] != float64(1) {
		t.Errorf("decoded = %v", v)
	}
	if v := DecodeGatewayBody([]byte("plain text")); v != "plain text" {
		t.Errorf("decoded = %v; want raw string", v)
	}
}
