// Package registry is a client for the national vehicle registry HTTP API.
package registry

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
	"github.com/testbuddy/marketplace_service/internal/core/domain"
)

const apiKeyHeader = "X-API-Key"

type Client struct {
	transport runtime.ClientTransport
	formats   strfmt.Registry
	timeout   time.Duration
}

// New builds a client against host/basePath. An empty apiKey sends no
// credentials.
func New(host, basePath, scheme, apiKey string, timeout time.Duration) *Client {
	if scheme == "" {
		scheme = "https"
	}
	transport := httptransport.New(host, basePath, []string{scheme})
	if apiKey != "" {
		transport.DefaultAuthentication = httptransport.APIKeyAuth(apiKeyHeader, "header", apiKey)
	}
	return NewWithTransport(transport, timeout)
}

func NewWithTransport(transport runtime.ClientTransport, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		transport: transport,
		formats:   strfmt.Default,
		timeout:   timeout,
	}
}

// vehiclePayload is the registry's wire model.
type vehiclePayload struct {
	Registration *string `json:"registration"`
	Make         *string `json:"make"`
	Model        string  `json:"model,omitempty"`
	Year         *int64  `json:"year"`
	Type         string  `json:"type,omitempty"`
}

func (m *vehiclePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("registration", "body", m.Registration); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("make", "body", m.Make); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("year", "body", m.Year); err != nil {
		res = append(res, err)
	} else if err := validate.MinimumInt("year", "body", *m.Year, 1886, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *vehiclePayload) toDomain() *domain.VehicleRecord {
	vehicleType := domain.VehicleType(m.Type)
	if !vehicleType.Known() {
		vehicleType = domain.Standard
	}
	return &domain.VehicleRecord{
		Registration: swag.StringValue(m.Registration),
		Make:         swag.StringValue(m.Make),
		Model:        m.Model,
		Year:         int(swag.Int64Value(m.Year)),
		Type:         vehicleType,
	}
}

type lookupParams struct {
	registration string
	timeout      time.Duration
}

func (o *lookupParams) WriteToRequest(r runtime.ClientRequest, reg strfmt.Registry) error {
	if err := r.SetTimeout(o.timeout); err != nil {
		return err
	}
	return r.SetPathParam("registration", o.registration)
}

type lookupReader struct {
	formats strfmt.Registry
}

func (o *lookupReader) ReadResponse(response runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
	switch response.Code() {
	case http.StatusOK:
		payload := new(vehiclePayload)
		if err := consumer.Consume(response.Body(), payload); err != nil && err != io.EOF {
			return nil, err
		}
		if err := payload.Validate(o.formats); err != nil {
			return nil, err
		}
		return payload, nil
	case http.StatusNotFound:
		return nil, domain.ErrLookupNotFound
	default:
		return nil, runtime.NewAPIError("lookupVehicle", response.Message(), response.Code())
	}
}

// Lookup fetches make, model, year and type for a normalised registration.
func (c *Client) Lookup(ctx context.Context, registration string) (*domain.VehicleRecord, error) {
	const op = "registry.Lookup"

	result, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 "lookupVehicle",
		Method:             http.MethodGet,
		PathPattern:        "/vehicles/{registration}",
		ProducesMediaTypes: []string{"application/json"},
		ConsumesMediaTypes: []string{"application/json"},
		Schemes:            []string{"https", "http"},
		Params:             &lookupParams{registration: registration, timeout: c.timeout},
		Reader:             &lookupReader{formats: c.formats},
		Context:            ctx,
	})
	if err != nil {
		if stderrors.Is(err, domain.ErrLookupNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, domain.NewNetworkError(op, err)
	}

	payload, ok := result.(*vehiclePayload)
	if !ok {
		return nil, domain.NewNetworkError(op, fmt.Errorf("unexpected response type %T", result))
	}
	return payload.toDomain(), nil
}
