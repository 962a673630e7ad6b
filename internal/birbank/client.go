package birbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"
)

const (
	liveBaseURL = "https://my.birbank.business/api/b2b"
	testBaseURL = "https://pre-my.birbank.business/api/b2b"

	loginTimeout    = 30 * time.Second
	accountsTimeout = 30 * time.Second
	// Statement listings can be large; give them a wider window.
	statementTimeout = 45 * time.Second

	// Date format the statement endpoint expects for range parameters.
	paramDateLayout = "02-01-2006"
	// Date format the statement endpoint uses in transaction rows.
	transactionDateLayout = "Jan 2, 2006"
)

// Client talks to the Birbank Business REST API.
type Client struct {
	httpClient *http.Client
	baseURLs   map[Environment]string
}

// New creates a Client. liveURL and testURL override the built-in
// endpoints when non-empty; tests use this to point at a stub server.
func New(liveURL, testURL string) *Client {
	if liveURL == "" {
		liveURL = liveBaseURL
	}

	if testURL == "" {
		testURL = testBaseURL
	}

	return &Client{
		httpClient: &http.Client{},
		baseURLs: map[Environment]string{
			EnvLive: liveURL,
			EnvTest: testURL,
		},
	}
}

func (c *Client) baseURL(env Environment) string {
	if u, ok := c.baseURLs[env]; ok {
		return u
	}

	return c.baseURLs[EnvLive]
}

// headers returns the fixed browser-like header set the provider expects,
// plus bearer auth when a token is given.
func headers(token string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36")
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Connection", "keep-alive")

	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}

	return h
}

type loginResponse struct {
	ResponseData struct {
		JWTToken string `json:"jwttoken"`
	} `json:"responseData"`
}

// Login authenticates with username/password and returns a bearer token.
func (c *Client) Login(ctx context.Context, env Environment, username, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", &AuthError{Reason: "encoding login payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL(env)+"/login", bytes.NewReader(payload))
	if err != nil {
		return "", &AuthError{Reason: "creating login request", Err: err}
	}

	req.Header = headers("")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Reason: "login request failed", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		logAPIError("login", resp.StatusCode, body)
		return "", &AuthError{Status: resp.StatusCode}
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &AuthError{Reason: "decoding login response", Err: err}
	}

	if parsed.ResponseData.JWTToken == "" {
		return "", &AuthError{Reason: "no token returned"}
	}

	return parsed.ResponseData.JWTToken, nil
}

type accountsResponse struct {
	ResponseData struct {
		AccountsList []struct {
			IbanAcNo string      `json:"ibanAcNo"`
			AcDesc   string      `json:"acDesc"`
			CurrAmt  json.Number `json:"currAmt"`
			Ccy      string      `json:"ccy"`
		} `json:"accountsList"`
	} `json:"responseData"`
}

// ListAccounts returns the accounts visible to the authenticated user.
func (c *Client) ListAccounts(ctx context.Context, env Environment, token string) ([]AccountData, error) {
	ctx, cancel := context.WithTimeout(ctx, accountsTimeout)
	defer cancel()

	body, err := c.get(ctx, env, token, "/accounts", nil)
	if err != nil {
		return nil, err
	}

	var parsed accountsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &FetchError{Reason: "decoding accounts response", Err: err}
	}

	accounts := make([]AccountData, 0, len(parsed.ResponseData.AccountsList))

	for _, acc := range parsed.ResponseData.AccountsList {
		accounts = append(accounts, AccountData{
			ExternalID:   acc.IbanAcNo,
			Name:         fmt.Sprintf("%s (%s) - %s", acc.AcDesc, acc.IbanAcNo, acc.Ccy),
			Balance:      toCents(acc.CurrAmt),
			CurrencyCode: acc.Ccy,
		})
	}

	return accounts, nil
}

type statementResponse struct {
	ResponseData struct {
		Operations struct {
			StatementList []struct {
				TrnRefNo     string      `json:"trnRefNo"`
				TrnDt        string      `json:"trnDt"`
				Purpose      string      `json:"purpose"`
				LcyAmount    json.Number `json:"lcyAmount"`
				ContrAccount string      `json:"contrAccount"`
			} `json:"statementList"`
		} `json:"operations"`
	} `json:"responseData"`
}

// ListTransactions returns statement entries for one account within [from, to].
// Failures are logged and swallowed to an empty list so that a broken account
// cannot abort a multi-account fetch loop upstream.
func (c *Client) ListTransactions(ctx context.Context, env Environment, token, accountNumber string, from, to time.Time) ([]TransactionData, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("accountNumber", accountNumber)
	params.Set("fromDate", from.Format(paramDateLayout))
	params.Set("toDate", to.Format(paramDateLayout))

	body, err := c.get(ctx, env, token, "/v2/statement/account", params)
	if err != nil {
		slog.Error("birbank statement fetch failed", "account", accountNumber, "error", err)
		return nil, nil
	}

	var parsed statementResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		slog.Error("birbank statement decode failed", "account", accountNumber, "error", err)
		return nil, nil
	}

	list := parsed.ResponseData.Operations.StatementList
	transactions := make([]TransactionData, 0, len(list))

	for _, st := range list {
		// A single malformed date must not lose the rest of the batch.
		date, err := time.Parse(transactionDateLayout, st.TrnDt)
		if err != nil {
			slog.Warn("birbank transaction date unparsable, using today", "account", accountNumber, "raw", st.TrnDt)
			date = time.Now().UTC().Truncate(24 * time.Hour)
		}

		paymentRef := st.Purpose
		if paymentRef == "" {
			paymentRef = st.TrnRefNo
		}

		transactions = append(transactions, TransactionData{
			ExternalID:  st.TrnRefNo,
			Date:        date,
			Amount:      toCents(st.LcyAmount),
			PaymentRef:  paymentRef,
			PartnerName: st.ContrAccount,
		})
	}

	return transactions, nil
}

func (c *Client) get(ctx context.Context, env Environment, token, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL(env) + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{Reason: "creating request", Err: err}
	}

	req.Header = headers(token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Reason: "reading response", Err: err}
	}

	if resp.StatusCode >= 400 {
		logAPIError(path, resp.StatusCode, body)
		return nil, &FetchError{Status: resp.StatusCode}
	}

	return body, nil
}

// logAPIError records the raw response for diagnostics; the raw body is
// never propagated across the API boundary.
func logAPIError(op string, status int, body []byte) {
	slog.Error("birbank api error", "op", op, "status", status, "body", string(body))
}

func toCents(n json.Number) int64 {
	v, err := n.Float64()
	if err != nil {
		return 0
	}

	return int64(math.Round(v * 100))
}
