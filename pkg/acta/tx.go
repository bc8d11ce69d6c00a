package acta

import (
	"context"

	"github.com/acta-build/acta-go/pkg/acta/models"
	"github.com/acta-build/acta-go/pkg/acta/transport"
	"github.com/acta-build/acta-go/pkg/platform/tracer"
)

// PrepareStoreTx asks the backend for an unsigned Vault store transaction.
// It has no on-chain effect; sign the returned XDR and submit it with
// VaultStore.
func (c *Client) PrepareStoreTx(ctx context.Context, req models.PrepareStoreRequest) (tx *models.UnsignedTransaction, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanPrepareStoreTx,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVcID, req.VcID.String()),
	)
	defer func() { span.End(err) }()

	return transport.Post[models.UnsignedTransaction](ctx, c.transport, transport.Call{
		Operation: OpPrepareStoreTx,
		Path:      routePrepareStore,
		Body:      req,
		Span:      span,
	})
}

// PrepareIssueTx asks the backend for an unsigned Issuance transaction.
func (c *Client) PrepareIssueTx(ctx context.Context, req models.PrepareIssueRequest) (tx *models.UnsignedTransaction, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanPrepareIssueTx,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVcID, req.VcID.String()),
	)
	defer func() { span.End(err) }()

	return transport.Post[models.UnsignedTransaction](ctx, c.transport, transport.Call{
		Operation: OpPrepareIssueTx,
		Path:      routePrepareIssue,
		Body:      req,
		Span:      span,
	})
}
