package service_test

import (
	"context"
	"errors"
	"time"

	"fytai-health-api/internal/domain"
)

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return errors.New("PingFunc not set")
}

// ManualMockArchive for domain.ResultArchive interface
type ManualMockArchive struct {
	SaveFunc      func(ctx context.Context, record *domain.ArchivedResult) error
	ListFunc      func(ctx context.Context, sessionID string) ([]*domain.ArchivedResult, error)
	GetByIDFunc   func(ctx context.Context, sessionID, id string) (*domain.ArchivedResult, error)
	DeleteFunc    func(ctx context.Context, sessionID, id string) error
	DeleteAllFunc func(ctx context.Context, sessionID string) error
	CountFunc     func(ctx context.Context, sessionID string) (int, error)
}

func (m *ManualMockArchive) Save(ctx context.Context, record *domain.ArchivedResult) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *ManualMockArchive) List(ctx context.Context, sessionID string) ([]*domain.ArchivedResult, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *ManualMockArchive) GetByID(ctx context.Context, sessionID, id string) (*domain.ArchivedResult, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, sessionID, id)
	}
	return nil, nil
}

func (m *ManualMockArchive) Delete(ctx context.Context, sessionID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID, id)
	}
	return nil
}

func (m *ManualMockArchive) DeleteAll(ctx context.Context, sessionID string) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, sessionID)
	}
	return nil
}

func (m *ManualMockArchive) Count(ctx context.Context, sessionID string) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, sessionID)
	}
	return 0, nil
}

// ManualMockAdvisor for domain.HealthAdvisor interface
type ManualMockAdvisor struct {
	AdviseFunc func(ctx context.Context, req *domain.AdviceContext) (string, error)
}

func (m *ManualMockAdvisor) Advise(ctx context.Context, req *domain.AdviceContext) (string, error) {
	if m.AdviseFunc != nil {
		return m.AdviseFunc(ctx, req)
	}
	return "", errors.New("AdviseFunc not set")
}
