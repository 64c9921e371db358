package kvstore

import (
	"context"
	"time"

	"github.com/BruksfildServices01/manicure-agenda/internal/metrics"
)

// instrumented decora um Store contando operações e latência
type instrumented struct {
	next    Store
	metrics *metrics.StoreMetrics
}

func Instrument(s Store, m *metrics.StoreMetrics) Store {
	if m == nil {
		return s
	}
	return &instrumented{next: s, metrics: m}
}

func (i *instrumented) observe(op string, start time.Time, err error, extra string) {
	result := "ok"
	switch {
	case err != nil:
		result = "error"
	case extra != "":
		result = extra
	}
	i.metrics.Observe(string(i.next.Driver()), op, result, time.Since(start))
}

func (i *instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := i.next.Get(ctx, key)

	hit := "hit"
	if !ok {
		hit = "miss"
	}
	i.observe("get", start, err, hit)
	return v, ok, err
}

func (i *instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.next.Set(ctx, key, value)
	i.observe("set", start, err, "")
	return err
}

func (i *instrumented) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := i.next.Remove(ctx, key)
	i.observe("remove", start, err, "")
	return err
}

func (i *instrumented) MultiRemove(ctx context.Context, keys ...string) error {
	start := time.Now()
	err := i.next.MultiRemove(ctx, keys...)
	i.observe("multi_remove", start, err, "")
	return err
}

func (i *instrumented) Ping(ctx context.Context) error {
	start := time.Now()
	err := i.next.Ping(ctx)
	i.observe("ping", start, err, "")
	return err
}

func (i *instrumented) Driver() Driver {
	return i.next.Driver()
}
