package retry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRetry_NoStrategies(t *testing.T) {
	called := 0
	attempts, err := Retry(func() error {
		called++
		return nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, attempts)
	assert.Equal(t, 1, called)
}

func TestRetry_Limit(t *testing.T) {
	errTest := errors.New("test")

	called := 0
	attempts, err := Retry(func() error {
		called++
		return errTest
	}, Limit(3))

	assert.Equal(t, errTest, err)
	assert.EqualValues(t, 3, attempts)
	assert.Equal(t, 3, called)
}

func TestRetry_RetriableErrors(t *testing.T) {
	errRetriable := errors.New("retriable")
	errFatal := errors.New("fatal")

	called := 0
	_, err := Retry(func() error {
		called++
		if called < 3 {
			return errRetriable
		}
		return errFatal
	}, RetriableErrors(errRetriable))

	assert.Equal(t, errFatal, err)
	assert.Equal(t, 3, called)
}

func TestRetry_NonRetriableErrors(t *testing.T) {
	errFatal := errors.New("fatal")

	called := 0
	_, err := Retry(func() error {
		called++
		return errFatal
	}, NonRetriableErrors(errFatal))

	assert.Equal(t, errFatal, err)
	assert.Equal(t, 1, called)
}
