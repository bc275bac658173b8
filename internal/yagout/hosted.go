package yagout

import (
	"crypto/sha256"
	"fmt"
	"html/template"
	"strings"

	"shoepay_app_echo/internal/models"
)

// HostedRequest is the prepared form-post material for the aggregator-hosted
// (WebView) flow: the merchant id, the encrypted section string, the
// encrypted checksum, and an auto-submitting HTML page wrapping all three.
type HostedRequest struct {
	MeID            string `json:"me_id"`
	MerchantRequest string `json:"merchant_request"`
	Hash            string `json:"hash"`
	PostURL         string `json:"post_url"`
	HTML            string `json:"html"`
}

// buildHostedSections assembles the pipe/tilde section string the hosted
// checksum page expects. Section and field order are fixed by the gateway;
// pg and card sections stay blank for the hosted flow.
func buildHostedSections(req models.HostedInitiateRequest, mc MerchantContext) string {
	txn := strings.Join([]string{
		mc.AggregatorID,
		mc.MerchantID,
		req.OrderNo,
		req.Amount.String(),
		DefaultCountry,
		DefaultCurrency,
		TxnTypeSale,
		req.SuccessURL,
		req.FailureURL,
		ChannelWeb,
	}, "|")
	pg := strings.Join(make([]string, 4), "|")
	card := strings.Join(make([]string, 5), "|")
	cust := strings.Join([]string{
		req.CustomerName,
		req.EmailID,
		req.MobileNo,
		"",
		"Y",
	}, "|")
	bill := strings.Join([]string{
		req.BillAddress,
		req.BillCity,
		req.BillState,
		req.BillCountry,
		req.BillZip,
	}, "|")
	ship := strings.Join(make([]string, 7), "|")
	item := strings.Join([]string{
		req.ItemCount,
		req.ItemValue,
		req.ItemCategory,
	}, "|")
	upi := ""
	other := strings.Join(make([]string, 5), "|")

	return strings.Join([]string{txn, pg, card, cust, bill, ship, item, upi, other}, "~")
}

// BuildHostedRequest encrypts the hosted section string and its checksum. The
// checksum input is me_id~order_no~amount~country~currency, SHA-256 hex,
// itself encrypted with the same key.
func BuildHostedRequest(req models.HostedInitiateRequest, mc MerchantContext, codec Codec, postURL string) (*HostedRequest, error) {
	sections := buildHostedSections(req, mc)
	merchantRequest, err := codec.EncryptB64(sections)
	if err != nil {
		return nil, fmt.Errorf("encrypt merchant_request: %w", err)
	}

	hashInput := strings.Join([]string{
		mc.MerchantID,
		req.OrderNo,
		req.Amount.String(),
		DefaultCountry,
		DefaultCurrency,
	}, "~")
	sum := sha256.Sum256([]byte(hashInput))
	encryptedHash, err := codec.EncryptB64(fmt.Sprintf("%x", sum[:]))
	if err != nil {
		return nil, fmt.Errorf("encrypt hash: %w", err)
	}

	out := &HostedRequest{
		MeID:            mc.MerchantID,
		MerchantRequest: merchantRequest,
		Hash:            encryptedHash,
		PostURL:         postURL,
	}
	html, err := renderAutoSubmitHTML(out)
	if err != nil {
		return nil, fmt.Errorf("render checkout page: %w", err)
	}
	out.HTML = html
	return out, nil
}

var autoSubmitTmpl = template.Must(template.New("hosted").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Redirecting</title></head>
<body>
  <form id="paymentForm" name="paymentForm" method="POST" enctype="application/x-www-form-urlencoded" action="{{.PostURL}}">
    <input type="hidden" name="me_id" value="{{.MeID}}">
    <input type="hidden" name="merchant_request" value="{{.MerchantRequest}}">
    <input type="hidden" name="hash" value="{{.Hash}}">
    <noscript><p>JavaScript disabled. Click continue to proceed.</p><button type="submit">Continue</button></noscript>
  </form>
  <script>document.getElementById('paymentForm').submit();</script>
</body></html>`))

func renderAutoSubmitHTML(r *HostedRequest) (string, error) {
	var b strings.Builder
	if err := autoSubmitTmpl.Execute(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}
