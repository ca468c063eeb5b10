package services

import (
	"sync"

	"github.com/MotorDesk/policy-extraction-backend/logger"
)

// LockRegistry hands out per-company processing locks so that at most one
// drain loop runs for a given company at any time. Locks are created lazily
// on first use and live for the lifetime of the process.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[string]*companyLock
}

type companyLock struct {
	mu   sync.Mutex
	held bool
}

// LockHandle represents an acquired company lock. Release is idempotent.
type LockHandle struct {
	registry  *LockRegistry
	companyID string
	once      sync.Once
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{
		locks: make(map[string]*companyLock),
	}
}

func (r *LockRegistry) lockFor(companyID string) *companyLock {
	r.mu.Lock()
	defer r.mu.Unlock()
	cl, ok := r.locks[companyID]
	if !ok {
		cl = &companyLock{}
		r.locks[companyID] = cl
	}
	return cl
}

// TryAcquire attempts to take the lock for companyID without blocking.
// It returns a handle on success and nil when the lock is already held.
func (r *LockRegistry) TryAcquire(companyID string) *LockHandle {
	cl := r.lockFor(companyID)

	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.held {
		return nil
	}
	cl.held = true

	logger.GetLogger().Debugw("Processing lock acquired", "company_id", companyID)
	return &LockHandle{registry: r, companyID: companyID}
}

// IsLocked reports whether the lock for companyID is currently held.
// It never creates a lock entry and never blocks on a held lock.
func (r *LockRegistry) IsLocked(companyID string) bool {
	r.mu.Lock()
	cl, ok := r.locks[companyID]
	r.mu.Unlock()
	if !ok {
		return false
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.held
}

// Release returns the lock to the registry. Calling Release more than once
// is safe; only the first call has any effect.
func (h *LockHandle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		cl := h.registry.lockFor(h.companyID)
		cl.mu.Lock()
		cl.held = false
		cl.mu.Unlock()
		logger.GetLogger().Debugw("Processing lock released", "company_id", h.companyID)
	})
}

// CompanyID returns the company the handle belongs to.
func (h *LockHandle) CompanyID() string {
	return h.companyID
}
