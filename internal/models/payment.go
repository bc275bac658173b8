package models

import (
	"encoding/json"
	"strings"
)

// StringOrNumber coerces a JSON string or number into a string at the
// boundary. The mobile client is loose about amount typing; the gateway
// schema is string-only, so everything downstream works with the coerced
// value.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = StringOrNumber(num.String())
	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}

// PaymentInitiateRequest is the body of POST /payments/api/initiate.
type PaymentInitiateRequest struct {
	OrderNo      string         `json:"order_no"`
	Amount       StringOrNumber `json:"amount"`
	CustomerName string         `json:"customer_name"`
	EmailID      string         `json:"email_id"`
	MobileNo     string         `json:"mobile_no"`
	BillAddress  string         `json:"bill_address"`
	BillCity     string         `json:"bill_city"`
	BillState    string         `json:"bill_state"`
	BillCountry  string         `json:"bill_country"`
	BillZip      string         `json:"bill_zip"`
	PgID         string         `json:"pg_id"`
	Paymode      string         `json:"paymode"`
	SchemeID     string         `json:"scheme_id"`
	WalletType   string         `json:"wallet_type"`
}

// HasRequiredFields reports whether the fields the gateway insists on are all
// present.
func (r PaymentInitiateRequest) HasRequiredFields() bool {
	return r.OrderNo != "" && r.Amount != "" && r.CustomerName != "" &&
		r.EmailID != "" && r.MobileNo != ""
}

// LinkCreateRequest is the body of POST /payments/link/create and
// POST /payments/static-link/create. order_id is intentionally absent: link
// endpoints always regenerate it server-side.
type LinkCreateRequest struct {
	ReqUserID     string         `json:"req_user_id"`
	MeID          string         `json:"me_id"`
	Amount        StringOrNumber `json:"amount"`
	CustomerEmail string         `json:"customer_email"`
	MobileNo      string         `json:"mobile_no"`
	ExpiryDate    string         `json:"expiry_date"`
	MediaType     []string       `json:"media_type"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Product       string         `json:"product"`
	DialCode      string         `json:"dial_code"`
	FailureURL    string         `json:"failure_url"`
	SuccessURL    string         `json:"success_url"`
	Country       string         `json:"country"`
	Currency      string         `json:"currency"`
}

func (r LinkCreateRequest) HasRequiredFields() bool {
	return r.ReqUserID != "" && r.MeID != "" && r.Amount != "" && r.MobileNo != ""
}

// HostedInitiateRequest is the body of POST /payments/hosted/initiate, the
// aggregator-hosted (WebView form post) flow.
type HostedInitiateRequest struct {
	OrderNo      string         `json:"order_no"`
	Amount       StringOrNumber `json:"amount"`
	CustomerName string         `json:"customer_name"`
	EmailID      string         `json:"email_id"`
	MobileNo     string         `json:"mobile_no"`
	SuccessURL   string         `json:"success_url"`
	FailureURL   string         `json:"failure_url"`
	BillAddress  string         `json:"bill_address"`
	BillCity     string         `json:"bill_city"`
	BillState    string         `json:"bill_state"`
	BillCountry  string         `json:"bill_country"`
	BillZip      string         `json:"bill_zip"`
	ItemCount    string         `json:"item_count"`
	ItemValue    string         `json:"item_value"`
	ItemCategory string         `json:"item_category"`
}

func (r HostedInitiateRequest) HasRequiredFields() bool {
	return r.Amount != "" && r.EmailID != "" && r.MobileNo != "" &&
		r.SuccessURL != "" && r.FailureURL != ""
}
