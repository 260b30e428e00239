package domain

// RequestTypeCaptureWallet is the only request type this service issues.
const RequestTypeCaptureWallet = "captureWallet"

// GatewayRequest is the full serialized body of one create-payment call.
// Field order in JSON does not matter to the gateway; the signature is
// computed over the canonical signing string, not over this body.
type GatewayRequest struct {
	PartnerCode string `json:"partnerCode"`
	AccessKey   string `json:"accessKey"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IpnURL      string `json:"ipnUrl"`
	ExtraData   string `json:"extraData"`
	RequestType string `json:"requestType"`
	Signature   string `json:"signature"`
	Lang        string `json:"lang"`
}

// GatewayResponse is the gateway's answer, passed through to the caller
// verbatim. ResultCode and Message are the gateway's own fields and are
// not reinterpreted here.
type GatewayResponse struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	ResponseTime int64  `json:"responseTime"`
	Message      string `json:"message"`
	ResultCode   int    `json:"resultCode"`
	PayURL       string `json:"payUrl"`
	Deeplink     string `json:"deeplink,omitempty"`
	QRCodeURL    string `json:"qrCodeUrl,omitempty"`
}
