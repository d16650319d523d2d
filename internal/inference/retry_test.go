package inference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/document"
)

var testPayload = document.Payload{MediaType: document.MediaTypePDF, Data: "JVBERi0="}

func TestWithRetryZeroAttemptsReturnsClientUnchanged(t *testing.T) {
	m := new(MockClient)
	assert.Same(t, Client(m), WithRetry(m, 0, time.Millisecond))
}

func TestWithRetryEventualSuccess(t *testing.T) {
	m := new(MockClient)
	m.On("Generate", mock.Anything, "p", testPayload, (*Schema)(nil)).
		Return("", errors.New("transient")).Twice()
	m.On("Generate", mock.Anything, "p", testPayload, (*Schema)(nil)).
		Return("ok", nil).Once()

	c := WithRetry(m, 3, time.Millisecond)
	out, err := c.Generate(context.Background(), "p", testPayload, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	m.AssertExpectations(t)
}

func TestWithRetryExhausted(t *testing.T) {
	remoteErr := errors.New("boom")
	m := new(MockClient)
	m.On("Generate", mock.Anything, "p", testPayload, (*Schema)(nil)).
		Return("", remoteErr).Times(3)

	c := WithRetry(m, 2, time.Millisecond)
	_, err := c.Generate(context.Background(), "p", testPayload, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, remoteErr))
	m.AssertExpectations(t)
}

func TestWithRetryDoesNotRetryNotInitialized(t *testing.T) {
	m := new(MockClient)
	m.On("Generate", mock.Anything, "p", testPayload, (*Schema)(nil)).
		Return("", ErrNotInitialized).Once()

	c := WithRetry(m, 5, time.Millisecond)
	_, err := c.Generate(context.Background(), "p", testPayload, nil)
	assert.True(t, errors.Is(err, ErrNotInitialized))
	m.AssertExpectations(t)
}

func TestWithRetryHonorsCancellation(t *testing.T) {
	m := new(MockClient)
	m.On("Generate", mock.Anything, "p", testPayload, (*Schema)(nil)).
		Return("", errors.New("transient")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	c := WithRetry(m, 3, time.Hour)

	done := make(chan error, 1)
	go func() {
		_, err := c.Generate(ctx, "p", testPayload, nil)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not observe cancellation")
	}
	m.AssertExpectations(t)
}
