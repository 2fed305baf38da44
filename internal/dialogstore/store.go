// Package dialogstore keeps the runtime's live dialog sessions addressable
// by ID, with TTL expiry and LRU bounding so abandoned sessions cannot
// accumulate.
package dialogstore

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTTL = 24 * time.Hour
	defaultMax = 4096
)

type Store[V any] struct {
	mu sync.Mutex

	ttl         time.Duration
	maxSessions int

	lru *list.List               // front=MRU
	m   map[string]*list.Element // id -> element(Value=*item[V])
}

type item[V any] struct {
	id       string
	v        V
	lastUsed time.Time
}

func New[V any]() *Store[V] {
	return &Store[V]{
		ttl:         defaultTTL,
		maxSessions: defaultMax,
		lru:         list.New(),
		m:           map[string]*list.Element{},
	}
}

func (st *Store[V]) SetTTL(ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	st.mu.Lock()
	st.ttl = ttl
	st.evictExpiredLocked(time.Now())
	st.mu.Unlock()
}

func (st *Store[V]) SetMaxSessions(maxSessions int) {
	if maxSessions < 0 {
		maxSessions = 0
	}
	st.mu.Lock()
	st.maxSessions = maxSessions
	st.evictOverLimitLocked()
	st.mu.Unlock()
}

// Put registers v under a fresh UUIDv7 ID and returns the ID.
func (st *Store[V]) Put(v V) string {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpiredLocked(now)
	st.evictOverLimitLocked()

	id := uuid.Must(uuid.NewV7()).String()
	e := st.lru.PushFront(&item[V]{id: id, v: v, lastUsed: now})
	st.m[id] = e

	st.evictOverLimitLocked()
	return id
}

func (st *Store[V]) Get(id string) (V, bool) {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictExpiredLocked(now)

	var zero V
	e := st.m[id]
	if e == nil {
		return zero, false
	}
	it, _ := e.Value.(*item[V])
	if it == nil {
		st.deleteElemLocked(e)
		return zero, false
	}

	it.lastUsed = now
	st.lru.MoveToFront(e)
	return it.v, true
}

func (st *Store[V]) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if e := st.m[id]; e != nil {
		st.deleteElemLocked(e)
	}
}

func (st *Store[V]) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictExpiredLocked(time.Now())
	return st.lru.Len()
}

func (st *Store[V]) evictExpiredLocked(now time.Time) {
	if st.ttl <= 0 {
		return
	}
	for e := st.lru.Back(); e != nil; {
		prev := e.Prev()
		it, ok := e.Value.(*item[V])
		if !ok || it == nil {
			st.deleteElemLocked(e)
			e = prev
			continue
		}
		if now.Sub(it.lastUsed) <= st.ttl {
			break
		}
		st.deleteElemLocked(e)
		e = prev
	}
}

func (st *Store[V]) evictOverLimitLocked() {
	if st.maxSessions <= 0 {
		return
	}
	for st.lru.Len() > st.maxSessions {
		e := st.lru.Back()
		if e == nil {
			return
		}
		st.deleteElemLocked(e)
	}
}

func (st *Store[V]) deleteElemLocked(e *list.Element) {
	if it, _ := e.Value.(*item[V]); it != nil {
		delete(st.m, it.id)
	}
	st.lru.Remove(e)
}
