package acta

import (
	"context"

	"github.com/acta-build/acta-go/pkg/acta/models"
	"github.com/acta-build/acta-go/pkg/acta/network"
	"github.com/acta-build/acta-go/pkg/acta/transport"
	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
	"github.com/acta-build/acta-go/pkg/platform/tracer"
)

// CreateCredential commits a credential through POST /credentials. The
// request is sent exactly as given; the backend decides whether it is well
// formed. A nil request is rejected without a call.
func (c *Client) CreateCredential(ctx context.Context, req models.CreateCredentialRequest) (res *models.CreateCredentialResult, err error) {
	if models.IsNilCredential(req) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "acta: credential request is nil")
	}

	ctx, span := c.tracer.Start(ctx, tracer.SpanCreateCredential,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVariant, string(req.Variant())),
		tracer.String(tracer.AttrVcID, models.CredentialID(req).String()),
	)
	defer func() { span.End(err) }()

	return transport.Post[models.CreateCredentialResult](ctx, c.transport, transport.Call{
		Operation: OpCreateCredential,
		Path:      routeCredentials,
		Body:      req,
		Span:      span,
	})
}

// GetConfig fetches GET /config and fills missing contract IDs from the
// compiled-in defaults of the client's network.
func (c *Client) GetConfig(ctx context.Context) (cfg *models.NetworkConfig, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanGetConfig, tracer.String(tracer.AttrNetwork, c.network.String()))
	defer func() { span.End(err) }()

	server, err := transport.Get[models.ServerConfig](ctx, c.transport, transport.Call{
		Operation: OpGetConfig,
		Path:      routeConfig,
		Span:      span,
	})
	if err != nil {
		return nil, err
	}

	merged := network.Merge(c.network, *server)
	return &merged, nil
}
