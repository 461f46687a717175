package memsnap

import (
	"os"
	"time"
)

// Handler is the interface implemented by consumers of periodic snapshots.
type Handler interface {
	HandleSnapshot(time time.Time, snap *Snapshot)
}

// HandlerFunc makes it possible to use regular functions as snapshot
// handlers.
type HandlerFunc func(time.Time, *Snapshot)

// HandleSnapshot calls f(time, snap).
func (f HandlerFunc) HandleSnapshot(time time.Time, snap *Snapshot) { f(time, snap) }

// Collector is an interface implemented by the periodic snapshot collector.
type Collector interface {
	Stop()
}

// CollectorConfig carries the configuration of a snapshot collector.
type CollectorConfig struct {
	Handler         Handler
	Pid             int
	CollectInterval time.Duration

	// Snapshot overrides how snapshots are taken, defaulting to NewForPid.
	Snapshot func(pid int) (*Snapshot, error)
}

// NewCollector starts a collector reporting snapshots of the current process
// to handler every five seconds.
func NewCollector(handler Handler) Collector {
	return NewCollectorWith(CollectorConfig{Handler: handler})
}

// NewCollectorWith starts a collector configured by config. Snapshots that
// fail to construct are skipped, the loop keeps running until Stop is called.
func NewCollectorWith(config CollectorConfig) Collector {
	config = setCollectorConfigDefault(config)

	collec := &collector{
		handler:  config.Handler,
		snapshot: config.Snapshot,
		tick:     time.NewTicker(config.CollectInterval),
		pid:      config.Pid,
		done:     make(chan struct{}),
		join:     make(chan struct{}),
	}

	go collec.run()
	return collec
}

func setCollectorConfigDefault(config CollectorConfig) CollectorConfig {
	if config.Handler == nil {
		config.Handler = HandlerFunc(func(time.Time, *Snapshot) {})
	}

	if config.Pid == 0 {
		config.Pid = os.Getpid()
	}

	if config.CollectInterval == 0 {
		config.CollectInterval = 5 * time.Second
	}

	if config.Snapshot == nil {
		config.Snapshot = NewForPid
	}

	return config
}

type collector struct {
	handler  Handler
	snapshot func(pid int) (*Snapshot, error)

	tick *time.Ticker
	pid  int
	done chan struct{}
	join chan struct{}
}

func (c *collector) Stop() {
	c.stop()
	c.wait()
}

func (c *collector) stop() {
	defer func() { recover() }()
	c.tick.Stop()
	close(c.done)
}

func (c *collector) wait() {
	<-c.join
}

func (c *collector) run() {
	defer close(c.join)
	for {
		select {
		case <-c.tick.C:
			c.collect()

		case <-c.done:
			return
		}
	}
}

func (c *collector) collect() {
	if snap, err := c.snapshot(c.pid); err == nil {
		c.handler.HandleSnapshot(time.Now(), snap)
	}
}
