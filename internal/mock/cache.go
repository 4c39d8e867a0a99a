package mock

import (
	"context"
	"time"
)

// Cache implements the cache interface for tests.
type Cache struct {
	// stored values
	GetOut       string
	GetExpiresAt time.Time

	// captured inputs
	ObjectKey string
	SetURL    string
	ExpiresAt time.Time

	// errors
	GetErr    error
	DeleteErr error

	// call flags
	GetCalled    bool
	SetCalled    bool
	DeleteCalled bool
}

func (m *Cache) GetDownloadURL(ctx context.Context, objectKey string) (string, time.Time, error) {
	m.GetCalled = true
	m.ObjectKey = objectKey
	if m.GetErr != nil {
		return "", time.Time{}, m.GetErr
	}
	return m.GetOut, m.GetExpiresAt, nil
}

func (m *Cache) SetDownloadURL(ctx context.Context, objectKey, url string, expiresAt time.Time) {
	m.SetCalled = true
	m.ObjectKey = objectKey
	m.SetURL = url
	m.ExpiresAt = expiresAt
}

func (m *Cache) DeleteDownloadURL(ctx context.Context, objectKey string) error {
	m.DeleteCalled = true
	m.ObjectKey = objectKey
	return m.DeleteErr
}
