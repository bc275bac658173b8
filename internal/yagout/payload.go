package yagout

import (
	"time"

	"shoepay_app_echo/internal/models"
)

// Protocol constants shared with the gateway. Country/currency are fixed for
// this merchant; the transaction is always a sale.
const (
	DefaultCountry  = "ETH"
	DefaultCurrency = "ETB"
	TxnTypeSale     = "SALE"
	ChannelAPI      = "API"
	ChannelWeb      = "WEB"

	defaultPgID         = "67ee846571e740418d688c3f"
	defaultPaymode      = "WA"
	defaultSchemeID     = "7"
	defaultWalletType   = "telebirr"
	defaultItemCategory = "Shoes"

	defaultLinkFirstName = "YagoutPay"
	defaultDialCode      = "+251"
	defaultFailureURL    = "http://localhost:3000/failure"
	defaultSuccessURL    = "http://localhost:3000/success"

	linkExpiryDays = 30
)

// MerchantContext carries the per-environment identity injected into payload
// building. No package-level merchant state exists.
type MerchantContext struct {
	AggregatorID string
	MerchantID   string
}

// TransactionPayload is the nested JSON structure the direct-API endpoint
// expects. Field names reproduce the gateway contract exactly, including the
// sucessUrl spelling.
type TransactionPayload struct {
	CardDetails  CardDetails  `json:"card_details"`
	OtherDetails OtherDetails `json:"other_details"`
	ShipDetails  ShipDetails  `json:"ship_details"`
	TxnDetails   TxnDetails   `json:"txn_details"`
	ItemDetails  ItemDetails  `json:"item_details"`
	CustDetails  CustDetails  `json:"cust_details"`
	PgDetails    PgDetails    `json:"pg_details"`
	BillDetails  BillDetails  `json:"bill_details"`
}

type CardDetails struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
	CardName    string `json:"cardName"`
}

type OtherDetails struct {
	UDF1 string `json:"udf1"`
	UDF2 string `json:"udf2"`
	UDF3 string `json:"udf3"`
	UDF4 string `json:"udf4"`
	UDF5 string `json:"udf5"`
	UDF6 string `json:"udf6"`
	UDF7 string `json:"udf7"`
}

type ShipDetails struct {
	ShipAddress  string `json:"shipAddress"`
	ShipCity     string `json:"shipCity"`
	ShipState    string `json:"shipState"`
	ShipCountry  string `json:"shipCountry"`
	ShipZip      string `json:"shipZip"`
	ShipDays     string `json:"shipDays"`
	AddressCount string `json:"addressCount"`
}

type TxnDetails struct {
	AgID            string `json:"agId"`
	MeID            string `json:"meId"`
	OrderNo         string `json:"orderNo"`
	Amount          string `json:"amount"`
	Country         string `json:"country"`
	Currency        string `json:"currency"`
	TransactionType string `json:"transactionType"`
	SucessURL       string `json:"sucessUrl"`
	FailureURL      string `json:"failureUrl"`
	Channel         string `json:"channel"`
}

type ItemDetails struct {
	ItemCount    string `json:"itemCount"`
	ItemValue    string `json:"itemValue"`
	ItemCategory string `json:"itemCategory"`
}

type CustDetails struct {
	CustomerName string `json:"customerName"`
	EmailID      string `json:"emailId"`
	MobileNumber string `json:"mobileNumber"`
	UniqueID     string `json:"uniqueId"`
	IsLoggedIn   string `json:"isLoggedIn"`
}

type PgDetails struct {
	PgID       string `json:"pg_Id"`
	Paymode    string `json:"paymode"`
	SchemeID   string `json:"scheme_Id"`
	WalletType string `json:"wallet_type"`
}

type BillDetails struct {
	BillAddress string `json:"billAddress"`
	BillCity    string `json:"billCity"`
	BillState   string `json:"billState"`
	BillCountry string `json:"billCountry"`
	BillZip     string `json:"billZip"`
}

// BuildTransactionPayload maps a flat initiate request into the gateway's
// seven-section schema. The card section is always blank (card data never
// flows through this path) and the success/failure URLs are forced empty:
// non-empty URLs make the gateway redirect instead of completing in-band,
// which breaks the in-app direct flow.
func BuildTransactionPayload(req models.PaymentInitiateRequest, mc MerchantContext) TransactionPayload {
	return TransactionPayload{
		CardDetails: CardDetails{},
		OtherDetails: OtherDetails{},
		ShipDetails: ShipDetails{
			ShipCountry: DefaultCountry,
		},
		TxnDetails: TxnDetails{
			AgID:            mc.AggregatorID,
			MeID:            mc.MerchantID,
			OrderNo:         req.OrderNo,
			Amount:          req.Amount.String(),
			Country:         DefaultCountry,
			Currency:        DefaultCurrency,
			TransactionType: TxnTypeSale,
			SucessURL:       "",
			FailureURL:      "",
			Channel:         ChannelAPI,
		},
		ItemDetails: ItemDetails{
			ItemCount:    "1",
			ItemValue:    req.Amount.String(),
			ItemCategory: defaultItemCategory,
		},
		CustDetails: CustDetails{
			CustomerName: req.CustomerName,
			EmailID:      req.EmailID,
			MobileNumber: req.MobileNo,
			UniqueID:     "",
			IsLoggedIn:   "Y",
		},
		PgDetails: PgDetails{
			PgID:       orDefault(req.PgID, defaultPgID),
			Paymode:    orDefault(req.Paymode, defaultPaymode),
			SchemeID:   orDefault(req.SchemeID, defaultSchemeID),
			WalletType: orDefault(req.WalletType, defaultWalletType),
		},
		BillDetails: BillDetails{
			BillAddress: req.BillAddress,
			BillCity:    req.BillCity,
			BillState:   req.BillState,
			BillCountry: orDefault(req.BillCountry, DefaultCountry),
			BillZip:     req.BillZip,
		},
	}
}

// LinkKind selects the defaults for the two payment-link endpoint flavours.
type LinkKind int

const (
	PaymentLink LinkKind = iota
	StaticLink
)

func (k LinkKind) lastName() string {
	if k == StaticLink {
		return "StaticLink"
	}
	return "PaymentLink"
}

func (k LinkKind) product() string {
	if k == StaticLink {
		return "Premium Subscription"
	}
	return "Payment Link Test"
}

// LinkPayload is the flatter structure the paymentByLinkResponse endpoints
// expect.
type LinkPayload struct {
	ReqUserID     string   `json:"req_user_id"`
	MeID          string   `json:"me_id"`
	Amount        string   `json:"amount"`
	CustomerEmail string   `json:"customer_email"`
	MobileNo      string   `json:"mobile_no"`
	ExpiryDate    string   `json:"expiry_date"`
	MediaType     []string `json:"media_type"`
	OrderID       string   `json:"order_id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Product       string   `json:"product"`
	DialCode      string   `json:"dial_code"`
	FailureURL    string   `json:"failure_url"`
	SuccessURL    string   `json:"success_url"`
	Country       string   `json:"country"`
	Currency      string   `json:"currency"`
}

// BuildLinkPayload fills the link payload with defaults for absent optional
// fields. orderID must be a freshly generated id: link endpoints are prone to
// "Order Id already exists" rejections, so caller-supplied ids are never
// trusted here. Expiry defaults to 30 days from now, formatted YYYY-MM-DD.
func BuildLinkPayload(req models.LinkCreateRequest, orderID string, kind LinkKind, now time.Time) LinkPayload {
	mediaType := req.MediaType
	if len(mediaType) == 0 {
		mediaType = []string{"API"}
	}
	return LinkPayload{
		ReqUserID:     req.ReqUserID,
		MeID:          req.MeID,
		Amount:        req.Amount.String(),
		CustomerEmail: req.CustomerEmail,
		MobileNo:      req.MobileNo,
		ExpiryDate:    orDefault(req.ExpiryDate, now.AddDate(0, 0, linkExpiryDays).Format("2006-01-02")),
		MediaType:     mediaType,
		OrderID:       orderID,
		FirstName:     orDefault(req.FirstName, defaultLinkFirstName),
		LastName:      orDefault(req.LastName, kind.lastName()),
		Product:       orDefault(req.Product, kind.product()),
		DialCode:      orDefault(req.DialCode, defaultDialCode),
		FailureURL:    orDefault(req.FailureURL, defaultFailureURL),
		SuccessURL:    orDefault(req.SuccessURL, defaultSuccessURL),
		Country:       orDefault(req.Country, DefaultCountry),
		Currency:      orDefault(req.Currency, DefaultCurrency),
	}
}

// APIEnvelope wraps the encrypted direct-API payload.
type APIEnvelope struct {
	MerchantID      string `json:"merchantId"`
	MerchantRequest string `json:"merchantRequest"`
}

// LinkEnvelope wraps the encrypted link payload; the merchant id travels in
// the me_id header instead.
type LinkEnvelope struct {
	Request string `json:"request"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
