package main

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/saylorsolutions/serialevents/assert"
	"github.com/saylorsolutions/serialevents/config"
	"github.com/saylorsolutions/serialevents/dispatch"
	"io"
	"log/slog"
	"strings"
)

var (
	errListenerFailed = errors.New("listener failed")
	errDispatchFailed = errors.New("dispatch failed")
)

// trace is the event value for scenario dispatches, and records the listeners that were called.
type trace struct {
	id    uuid.UUID
	fired []string
}

type runner struct {
	scenario *config.Scenario
	log      *slog.Logger
	out      io.Writer
}

func newRunner(scenario *config.Scenario, log *slog.Logger, out io.Writer) *runner {
	return &runner{
		scenario: scenario,
		log:      log.With("scenario", scenario.Name),
		out:      out,
	}
}

func (r *runner) methods() dispatch.Methods[*trace] {
	return lo.SliceToMap(r.scenario.Listeners, func(l config.Listener) (string, dispatch.Listener[*trace]) {
		name, fail := l.Name, l.Fail
		return name, func(tr *trace) error {
			tr.fired = append(tr.fired, name)
			if fail {
				return fmt.Errorf("%w: %s", errListenerFailed, name)
			}
			return nil
		}
	})
}

// Run registers the scenario's listeners, and runs each dispatch in order.
// A failed dispatch doesn't stop the remaining dispatches, but an error is returned at the end.
func (r *runner) Run() error {
	reg := dispatch.NewRegistry[*trace](dispatch.WithLogger(r.log))
	descriptors := lo.Map(r.scenario.Listeners, func(l config.Listener, _ int) dispatch.Descriptor {
		return l.Descriptor()
	})
	if err := reg.RegisterBatch(r.methods(), descriptors...); err != nil {
		return err
	}
	r.log.Info("Registered listeners", "count", len(descriptors), "events", len(reg.Events()))

	errs := assert.CollectErrors("; ")
	for _, d := range r.scenario.Dispatches {
		tr := &trace{id: uuid.New()}
		log := r.log.With("trace", tr.id.String(), "event", d.Event, "class", d.Class, "format", d.Format)
		if !reg.HasListeners(d.Event, d.Class, d.Format) {
			log.Debug("No listeners resolved")
		}
		err := reg.Dispatch(d.Event, d.Class, d.Format, tr)
		line := fmt.Sprintf("trace=%s event=%s class=%s format=%s fired=[%s]", tr.id, d.Event, d.Class, d.Format, strings.Join(tr.fired, " "))
		if err != nil {
			errs.AddString("trace %s: %w", tr.id, err)
			log.Error("Dispatch failed", "error", err)
			line += fmt.Sprintf(" error=%q", err.Error())
		}
		_, _ = fmt.Fprintln(r.out, line)
	}
	if err := errs.Result(); err != nil {
		return fmt.Errorf("%w: %d of %d dispatches: %w", errDispatchFailed, errs.Len(), len(r.scenario.Dispatches), err)
	}
	return nil
}
