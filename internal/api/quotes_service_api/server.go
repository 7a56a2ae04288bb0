package quotes_service_api

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/Domenick1991/altera/internal/service/quote"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "altera.quotes.v1.QuoteService"

// QuoteServiceServer exchanges google.protobuf.Struct messages so the
// service needs no generated code. Requests carry flight_id, fare_class and
// an optional meal_id.
type QuoteServiceServer interface {
	GetFareDetails(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Quote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// Server implements QuoteServiceServer on top of the quote use case.
type Server struct {
	quotes quote.QuoteUseCase
}

func NewServer(quotes quote.QuoteUseCase) *Server {
	return &Server{quotes: quotes}
}

func Register(s grpc.ServiceRegistrar, srv QuoteServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func (s *Server) GetFareDetails(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flightID, class, _, err := parseRequest(req)
	if err != nil {
		return nil, toStatus(err)
	}
	details, err := s.quotes.GetFareDetails(ctx, flightID, class)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(details)
}

func (s *Server) Quote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flightID, class, mealID, err := parseRequest(req)
	if err != nil {
		return nil, toStatus(err)
	}
	q, err := s.quotes.Quote(ctx, flightID, class, mealID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(q)
}

func parseRequest(req *structpb.Struct) (int64, domain.FareClass, *int64, error) {
	fields := req.GetFields()
	flightID, ok := intField(fields["flight_id"])
	if !ok || flightID <= 0 {
		return 0, "", nil, domain.Invalid("flight_id must be a positive integer")
	}
	class, err := domain.ParseFareClass(fields["fare_class"].GetStringValue())
	if err != nil {
		return 0, "", nil, err
	}
	var mealID *int64
	if v, present := fields["meal_id"]; present {
		if _, isNull := v.GetKind().(*structpb.Value_NullValue); !isNull {
			id, ok := intField(v)
			if !ok {
				return 0, "", nil, domain.Invalid("meal_id must be an integer")
			}
			mealID = &id
		}
	}
	return flightID, class, mealID, nil
}

// maxExactInt is the largest integer a float64 holds without rounding.
const maxExactInt = 1 << 53

func intField(v *structpb.Value) (int64, bool) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > maxExactInt {
		return 0, false
	}
	return int64(n.NumberValue), true
}

// toStruct reuses the JSON shape served over HTTP, money included.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode response")
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Error(codes.Internal, "encode response")
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode response")
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrExternalTimeout):
		return status.Error(codes.DeadlineExceeded, "upstream timed out")
	}
	logrus.WithError(err).Error("quote rpc failed")
	return status.Error(codes.Internal, "internal error")
}

func getFareDetailsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuoteServiceServer).GetFareDetails(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetFareDetails"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuoteServiceServer).GetFareDetails(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func quoteHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuoteServiceServer).Quote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Quote"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuoteServiceServer).Quote(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*QuoteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetFareDetails", Handler: getFareDetailsHandler},
		{MethodName: "Quote", Handler: quoteHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "altera/quotes/v1/quotes.proto",
}

var _ QuoteServiceServer = (*Server)(nil)
