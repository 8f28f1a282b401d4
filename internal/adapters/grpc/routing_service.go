package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// RoutingServiceName is the fully-qualified gRPC service name
const RoutingServiceName = "galaxyrouting.v1.RoutingService"

// Full method names, as used by clients and interceptors
const (
	PlanRouteMethod      = "/" + RoutingServiceName + "/PlanRoute"
	CarrierETAMethod     = "/" + RoutingServiceName + "/CarrierETA"
	ReachableStarsMethod = "/" + RoutingServiceName + "/ReachableStars"
)

// RoutingServiceServer is the server API of the routing service. Requests and
// responses travel as google.protobuf.Struct.
type RoutingServiceServer interface {
	PlanRoute(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CarrierETA(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReachableStars(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterRoutingServiceServer registers the service implementation
func RegisterRoutingServiceServer(s grpc.ServiceRegistrar, srv RoutingServiceServer) {
	s.RegisterService(&RoutingServiceDesc, srv)
}

// RoutingServiceDesc describes the routing service for grpc.Server
var RoutingServiceDesc = grpc.ServiceDesc{
	ServiceName: RoutingServiceName,
	HandlerType: (*RoutingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PlanRoute", Handler: unaryHandler(PlanRouteMethod, RoutingServiceServer.PlanRoute)},
		{MethodName: "CarrierETA", Handler: unaryHandler(CarrierETAMethod, RoutingServiceServer.CarrierETA)},
		{MethodName: "ReachableStars", Handler: unaryHandler(ReachableStarsMethod, RoutingServiceServer.ReachableStars)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "galaxyrouting/v1/routing.proto",
}

type structMethod func(RoutingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a Struct-in/Struct-out method to grpc's method handler shape
func unaryHandler(fullMethod string, method structMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(RoutingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(RoutingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
