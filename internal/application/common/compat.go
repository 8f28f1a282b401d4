package common

import (
	"github.com/andrescamacho/galaxy-routing-go/internal/application/mediator"
)

// Mediator types re-exported so handlers only import common
type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

// NewMediator is re-exported for wiring code
var NewMediator = mediator.NewMediator
