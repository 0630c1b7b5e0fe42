package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hguir/sellio/config"
)

// CinetPayService wraps the hosted CinetPay checkout API. It forwards the
// gateway's responses unmodified; interpreting the verification status is the
// caller's concern.
type CinetPayService struct {
	apiKey    string
	siteID    string
	baseURL   string
	notifyURL string
	returnURL string
	client    *http.Client
}

func NewCinetPayService(cfg config.CinetPayConfig) *CinetPayService {
	return &CinetPayService{
		apiKey:    cfg.APIKey,
		siteID:    cfg.SiteID,
		baseURL:   cfg.BaseURL,
		notifyURL: cfg.NotifyURL,
		returnURL: cfg.ReturnURL,
		client:    &http.Client{},
	}
}

type PaymentData struct {
	Amount        float64
	Currency      string
	TransID       string
	Designation   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// InitiatePayment asks the gateway for a checkout session. The raw decoded
// response is returned as-is; it is expected to carry a redirect URL.
func (s *CinetPayService) InitiatePayment(data PaymentData) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"apikey":         s.apiKey,
		"site_id":        s.siteID,
		"transaction_id": data.TransID,
		"amount":         data.Amount,
		"currency":       data.Currency,
		"designation":    data.Designation,
		"channels":       "ALL",
		"lang":           "fr",
		"metadata": map[string]string{
			"customer_name":  data.CustomerName,
			"customer_email": data.CustomerEmail,
			"customer_phone": data.CustomerPhone,
		},
		"notify_url": s.notifyURL,
		"return_url": s.returnURL,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/payment", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return s.do(req)
}

// VerifyPayment checks a transaction by id and returns the raw payload.
func (s *CinetPayService) VerifyPayment(transactionID string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("apikey", s.apiKey)
	params.Set("site_id", s.siteID)
	params.Set("transaction_id", transactionID)

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/payment/check?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return s.do(req)
}

func (s *CinetPayService) do(req *http.Request) (map[string]interface{}, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach CinetPay: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cinetpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse CinetPay response: %w", err)
	}
	return decoded, nil
}
