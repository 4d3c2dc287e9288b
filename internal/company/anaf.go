package company

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"normalro/internal/platform/tracing"
)

// maxResponseBytes bounds the ANAF response body we are willing to read.
const maxResponseBytes = 1 << 20

// ANAFClient calls the ANAF VAT-payer web service. One POST per lookup, no retries.
type ANAFClient struct {
	url        string
	httpClient *http.Client
}

// NewANAFClient builds a client with the given per-request timeout.
func NewANAFClient(url string, timeout time.Duration) *ANAFClient {
	return &ANAFClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type anafRequestItem struct {
	CUI  int64  `json:"cui"`
	Date string `json:"data"`
}

type anafResponse struct {
	Found []anafRecord `json:"found"`
}

type anafRecord struct {
	General struct {
		CUI        flexString `json:"cui"`
		Name       string     `json:"denumire"`
		Address    string     `json:"adresa"`
		TradeRegNo string     `json:"nrRegCom"`
		Phone      string     `json:"telefon"`
		PostalCode flexString `json:"codPostal"`
	} `json:"date_generale"`
	VAT struct {
		Registered bool `json:"scpTVA"`
	} `json:"inregistrare_scop_Tva"`
	Office struct {
		Street   string `json:"sdenumire_Strada"`
		Number   string `json:"snumar_Strada"`
		Locality string `json:"sdenumire_Localitate"`
		County   string `json:"sdenumire_Judet"`
	} `json:"adresa_sediu_social"`
}

// flexString accepts a JSON string, number or null.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Lookup fetches the company registered under cui on date.
// Errors are *ProviderError values.
func (c *ANAFClient) Lookup(ctx context.Context, cui, date string) (*Company, error) {
	ctx, span := tracing.Tracer().Start(ctx, "anaf.lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("anaf.date", date)),
	)
	defer span.End()

	company, err := c.lookup(ctx, cui, date)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("anaf.error_category", string(GetCategory(err))))
		if GetCategory(err) != ErrorNotFound {
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return company, nil
}

func (c *ANAFClient) lookup(ctx context.Context, cui, date string) (*Company, error) {
	numeric, err := strconv.ParseInt(cui, 10, 64)
	if err != nil {
		return nil, NewProviderError(ErrorInternal, "cui is not numeric", err)
	}
	body, err := json.Marshal([]anafRequestItem{{CUI: numeric, Date: date}})
	if err != nil {
		return nil, NewProviderError(ErrorInternal, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, NewProviderError(ErrorInternal, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, NewProviderError(ErrorTimeout, "request timed out", err)
		}
		return nil, NewProviderError(ErrorConnection, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, NewProviderError(ErrorProviderOutage, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var decoded anafResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		if isTimeout(err) {
			return nil, NewProviderError(ErrorTimeout, "reading response timed out", err)
		}
		return nil, NewProviderError(ErrorBadData, "decode response", err)
	}
	if len(decoded.Found) == 0 {
		return nil, NewProviderError(ErrorNotFound, "cui not registered", nil)
	}
	return decoded.Found[0].toCompany(cui), nil
}

func (r anafRecord) toCompany(requestedCUI string) *Company {
	var parts []string
	if r.Office.Street != "" {
		parts = append(parts, r.Office.Street)
	}
	if r.Office.Number != "" {
		parts = append(parts, "Nr. "+r.Office.Number)
	}
	if r.Office.Locality != "" {
		parts = append(parts, r.Office.Locality)
	}
	if r.Office.County != "" {
		parts = append(parts, r.Office.County)
	}
	address := strings.Join(parts, ", ")
	if address == "" {
		address = r.General.Address
	}

	cui := string(r.General.CUI)
	if cui == "" {
		cui = requestedCUI
	}

	return &Company{
		CUI:           cui,
		Name:          r.General.Name,
		TradeRegNo:    r.General.TradeRegNo,
		Address:       address,
		City:          r.Office.Locality,
		County:        r.Office.County,
		Phone:         r.General.Phone,
		PostalCode:    string(r.General.PostalCode),
		VATRegistered: r.VAT.Registered,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
