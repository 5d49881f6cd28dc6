package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Service is a long-running component managed by a Group.
type Service interface {
	Name() string
	Run(context.Context) error
}

// Group runs its services concurrently and stops them together: the
// first failure cancels the shared context, and every failure is
// aggregated into the error Run returns.
type Group []Service

func (g Group) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	failures := make(chan error, len(g))

	var wg sync.WaitGroup
	wg.Add(len(g))
	for _, svc := range g {
		go func(svc Service) {
			defer wg.Done()
			slog.Info("Service started", "service", svc.Name())
			if err := svc.Run(runCtx); err != nil {
				failures <- fmt.Errorf("%s: %w", svc.Name(), err)
				cancelFn()
			}
			slog.Info("Service stopped", "service", svc.Name())
		}(svc)
	}

	<-runCtx.Done()
	wg.Wait()
	close(failures)

	var err error
	for failure := range failures {
		err = multierror.Append(err, failure)
	}
	return err
}
