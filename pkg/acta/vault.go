package acta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/acta-build/acta-go/pkg/acta/models"
	"github.com/acta-build/acta-go/pkg/acta/transport"
	"github.com/acta-build/acta-go/pkg/platform/tracer"
)

// VaultStore submits a signed store transaction. The result may carry a
// verification snapshot taken right after submission; poll VaultVerify or
// VerifyStatus when freshness matters.
func (c *Client) VaultStore(ctx context.Context, sub models.SignedSubmission) (res *models.StoreResult, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanVaultStore,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVcID, sub.VcID.String()),
	)
	defer func() { span.End(err) }()

	return transport.Post[models.StoreResult](ctx, c.transport, transport.Call{
		Operation: OpVaultStore,
		Path:      routeVaultStore,
		Body:      sub,
		Span:      span,
	})
}

// VaultVerify reads the credential status held by the Vault contract.
func (c *Client) VaultVerify(ctx context.Context, q models.VaultQuery) (snap *models.VerificationSnapshot, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanVaultVerify,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVcID, q.VcID.String()),
	)
	defer func() { span.End(err) }()

	return transport.Post[models.VerificationSnapshot](ctx, c.transport, transport.Call{
		Operation: OpVaultVerify,
		Path:      routeVaultVerify,
		Body:      q,
		Span:      span,
	})
}

// VerifyStatus reads the credential status from the Issuance registry. It is
// a separate source of truth from VaultVerify and the two may disagree.
func (c *Client) VerifyStatus(ctx context.Context, vcID models.VcID) (snap *models.VerificationSnapshot, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanVerifyStatus,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVcID, vcID.String()),
	)
	defer func() { span.End(err) }()

	return transport.Get[models.VerificationSnapshot](ctx, c.transport, transport.Call{
		Operation: OpVerifyStatus,
		Path:      routeVerifyPrefix + url.PathEscape(vcID.String()),
		Span:      span,
	})
}

// VaultListVcIDsDirect lists an owner's credential IDs straight from the
// Vault contract. The list is read from "vc_ids", falling back to "result";
// an unusable body yields an empty slice rather than an error.
func (c *Client) VaultListVcIDsDirect(ctx context.Context, q models.VaultOwnerQuery) (ids []models.VcID, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanVaultListDirect, tracer.String(tracer.AttrNetwork, c.network.String()))
	defer func() { span.End(err) }()

	call := transport.Call{
		Operation: OpVaultListDirect,
		Method:    http.MethodPost,
		Path:      routeVaultListIDs,
		Body:      q,
		Span:      span,
	}
	resp, err := c.transport.Do(ctx, call)
	if err != nil {
		return nil, err
	}

	ids, field := models.NormalizeVcIDList(resp.Body)
	c.recordNormalization(span, OpVaultListDirect, field)
	span.SetAttributes(tracer.Int(tracer.AttrResultCount, len(ids)))
	return ids, nil
}

// VaultGetVcDirect reads one credential straight from the Vault contract.
// The content is read from "vc", falling back to "result"; nil means the
// backend returned neither.
func (c *Client) VaultGetVcDirect(ctx context.Context, q models.VaultQuery) (vc json.RawMessage, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanVaultGetDirect,
		tracer.String(tracer.AttrNetwork, c.network.String()),
		tracer.String(tracer.AttrVcID, q.VcID.String()),
	)
	defer func() { span.End(err) }()

	call := transport.Call{
		Operation: OpVaultGetDirect,
		Method:    http.MethodPost,
		Path:      routeVaultGetDirect,
		Body:      q,
		Span:      span,
	}
	resp, err := c.transport.Do(ctx, call)
	if err != nil {
		return nil, err
	}

	vc, field := models.NormalizeVC(resp.Body)
	c.recordNormalization(span, OpVaultGetDirect, field)
	return vc, nil
}

func (c *Client) recordNormalization(span tracer.Span, operation, field string) {
	fallback := field == models.FieldResult
	span.AddEvent(tracer.EventResponseNormalized,
		tracer.String("field", field),
		tracer.Bool(tracer.AttrFallback, fallback),
	)
	if fallback && c.metrics != nil {
		c.metrics.IncrementFallback(operation)
	}
	if field == "" {
		c.logger.Debug("direct read returned no recognized field", "operation", operation)
	}
}
