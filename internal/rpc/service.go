package rpc

import (
	"context"
	"errors"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"os-scheduler/internal/metrics"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

const (
	serviceName    = "scheduler.v1.Simulator"
	simulateMethod = "/" + serviceName + "/Simulate"
)

type SimulatorServer interface {
	Simulate(ctx context.Context, request *requests.ScheduleRequests) (*responses.ScheduleResponse, error)
}

var simulatorServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SimulatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Simulate",
			Handler:    simulateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scheduler/v1/simulator",
}

func simulateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(requests.ScheduleRequests)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).Simulate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: simulateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).Simulate(ctx, req.(*requests.ScheduleRequests))
	}
	return interceptor(ctx, in, info, handler)
}

func RegisterSimulatorServer(registrar grpc.ServiceRegistrar, srv SimulatorServer) {
	registrar.RegisterService(&simulatorServiceDesc, srv)
}

// NewGrpcServer returns a gRPC server that speaks the JSON codec.
func NewGrpcServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ForceServerCodec(jsonCodec{}))
	return grpc.NewServer(opts...)
}

// Server implements SimulatorServer on top of the scheduling engine.
type Server struct {
	scheduler *schedulers.Scheduler
	metrics   *metrics.Collector
}

// NewServer creates a Server. collector may be nil.
func NewServer(scheduler *schedulers.Scheduler, collector *metrics.Collector) *Server {
	return &Server{scheduler: scheduler, metrics: collector}
}

func (s *Server) Simulate(ctx context.Context, request *requests.ScheduleRequests) (*responses.ScheduleResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	request.Normalize(s.scheduler.DefaultTimeQuantum)
	if request.Algorithm == "" {
		request.Algorithm = string(schedulers.FirstComeFirstServe)
	}

	start := time.Now()
	err := request.Validate()
	var response responses.ScheduleResponse
	if err == nil {
		response, err = s.scheduler.Schedule(request)
	}
	if err != nil {
		log.Println("rpc: can not process", request.Algorithm, "request:", err)
		if s.metrics != nil {
			s.metrics.RecordFailure(request.Algorithm, err)
		}
		return nil, toStatus(err)
	}

	if s.metrics != nil {
		s.metrics.RecordSimulation(response, time.Since(start).Seconds())
	}
	return &response, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, requests.ErrInvalidRequest),
		errors.Is(err, schedulers.ErrInvalidInput),
		errors.Is(err, schedulers.ErrEmptyProcessSet),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
