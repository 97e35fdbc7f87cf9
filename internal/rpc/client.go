package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// Client calls a remote Simulator service.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial connects to addr without transport security.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return conn, nil
}

func (c *Client) Simulate(ctx context.Context, request *requests.ScheduleRequests) (*responses.ScheduleResponse, error) {
	out := new(responses.ScheduleResponse)
	if err := c.conn.Invoke(ctx, simulateMethod, request, out, grpc.ForceCodec(jsonCodec{})); err != nil {
		return nil, fmt.Errorf("rpc simulate failed: %w", err)
	}
	return out, nil
}
