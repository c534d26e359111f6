package domain

import "sync"

// View is the minimal surface an orchestrator needs to report outcomes that
// are not part of its own return values.
type View interface {
	Notify(msg string)
	NotifyError(msg string)
}

// MessageView additionally lets the message orchestrator close an open detail
// view when its record is deleted underneath it.
type MessageView interface {
	View
	CloseMessageDetail(id int64)
}

type NopView struct{}

func (NopView) Notify(string)            {}
func (NopView) NotifyError(string)       {}
func (NopView) CloseMessageDetail(int64) {}

// ViewProxy lets services be wired before the real view exists; unbound
// notifications are dropped.
type ViewProxy struct {
	mu     sync.RWMutex
	target MessageView
}

func (p *ViewProxy) Bind(v MessageView) {
	p.mu.Lock()
	p.target = v
	p.mu.Unlock()
}

func (p *ViewProxy) current() MessageView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.target
}

func (p *ViewProxy) Notify(msg string) {
	if v := p.current(); v != nil {
		v.Notify(msg)
	}
}

func (p *ViewProxy) NotifyError(msg string) {
	if v := p.current(); v != nil {
		v.NotifyError(msg)
	}
}

func (p *ViewProxy) CloseMessageDetail(id int64) {
	if v := p.current(); v != nil {
		v.CloseMessageDetail(id)
	}
}
