package port

import "context"

// GatewayRequest carries one instruction for the model provider.
type GatewayRequest struct {
	Prompt         string
	DocumentTypeID string
}

// ModelGateway abstracts "send instruction, get text back". It owns the
// provider timeout and maps provider failures onto the domain error
// taxonomy; it knows nothing about document semantics. The reply is an
// untrusted string until it has been through the response parser.
type ModelGateway interface {
	Process(ctx context.Context, req GatewayRequest) (string, error)
}
