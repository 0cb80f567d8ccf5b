package mcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"missing store", &Ports{}, ErrMissingStore},
		{"store only", &Ports{Store: newTestStore(t)}, nil},
		{"store and assistant", &Ports{Store: newTestStore(t), Assistant: &mockAssistant{}, Version: "1.0.0"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewServer(tt.ports)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, server)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, server)
		})
	}
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingStore)
	assert.NoError(t, (&Ports{Store: newTestStore(t)}).Validate(), "assistant is optional")
}

func TestServer_RunHTTP_StopsWithContext(t *testing.T) {
	server, err := NewServer(&Ports{Store: newTestStore(t)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}

func TestServer_RunHTTP_AddressInUse(t *testing.T) {
	server, err := NewServer(&Ports{Store: newTestStore(t)})
	require.NoError(t, err)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	// The context never ends, so RunHTTP returns only if it stops its
	// own shutdown goroutine after the failed listen.
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(context.Background(), busy.Addr().String()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunHTTP did not return after the listen failed")
	}
}
