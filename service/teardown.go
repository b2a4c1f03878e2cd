package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type TeardownManager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	lock      sync.Mutex
	teardowns []func()
}

var tdm *TeardownManager
var once sync.Once

func GetTeardownManager() *TeardownManager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		tdm = &TeardownManager{
			ctx:    ctx,
			cancel: cancel,
			wg:     &sync.WaitGroup{},
		}
		go tdm.listen()
	})
	return tdm
}

func (m *TeardownManager) listen() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigs:
		m.cancel()
	case <-m.ctx.Done():
	}
}

func (m *TeardownManager) Context() context.Context {
	return m.ctx
}

func (m *TeardownManager) WaitGroup() *sync.WaitGroup {
	return m.wg
}

func (m *TeardownManager) TeardownFunc(f func()) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.teardowns = append(m.teardowns, f)
}

// Wait blocks until shutdown is requested, waits for registered workers, then
// runs teardown functions in reverse registration order.
func (m *TeardownManager) Wait() {
	<-m.ctx.Done()
	m.wg.Wait()

	m.lock.Lock()
	defer m.lock.Unlock()
	for i := len(m.teardowns) - 1; i >= 0; i-- {
		m.teardowns[i]()
	}
}
