package middleware

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/skvindia/app-portal/internal/logger"
)

// NewRecovery returns a unary interceptor that converts handler panics into
// codes.Internal and logs them.
func NewRecovery(logger *logger.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(
		recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.Error("gRPC: panic recovered",
				"panic", fmt.Sprint(p))
			return status.Error(codes.Internal, "internal server error")
		}),
	)
}
