package server

import (
	"context"
	"net/http"

	"github.com/go-sod/clsdemo/internal/httputil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported for the classifier.
const ServiceName = "clsdemo.Classifier"

// HandleHealth reports ok while ctx is alive and unavailable after it is
// done.
func HandleHealth(ctx context.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx.Err() != nil {
			httputil.RespJSON(r.Context(), w, http.StatusServiceUnavailable, map[string]string{"status": "shutting down"})
			return
		}
		httputil.RespJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// NewGRPCHealth builds a gRPC server exposing the standard health service.
// Both the overall and the classifier service report SERVING until
// Shutdown is called on the returned health server.
func NewGRPCHealth(opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(opts...)
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}
