package core

import (
	"context"
	"fmt"
	"log"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry manages all services
type Registry struct {
	services []Interface
	started  int
}

// NewRegistry creates a new core registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

// Register adds a service to the registry. Services start in registration order.
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// StartAll starts all registered services. When one fails, the services
// started before it are stopped again and the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			log.Printf("Registry: %T failed to start: %v", service, err)
			sr.stopFirst(i)
			return fmt.Errorf("failed to start %T: %w", service, err)
		}
		sr.started = i + 1
	}
	return nil
}

// StopAll stops all registered services in reverse order
func (sr *Registry) StopAll() {
	sr.stopFirst(len(sr.services))
}

func (sr *Registry) stopFirst(n int) {
	for i := n - 1; i >= 0; i-- {
		sr.services[i].Stop()
	}
	sr.started = 0
}

// Started returns the number of running services
func (sr *Registry) Started() int {
	return sr.started
}
