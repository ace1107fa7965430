// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// function field falls back to the mock's default return values, so tests
// only override the calls they care about.
//
//	svc := &mocks.MockTaskService{
//	    GetTaskFn: func(ctx context.Context, id string) (*domain.Task, error) {
//	        return nil, service.ErrTaskNotFound
//	    },
//	}
package mocks
