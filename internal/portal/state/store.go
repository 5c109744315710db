// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package state 客户端的领域状态。
//
// 所有修改都只能通过 Store 上的方法完成。每个方法都是一次请求：
// 发起时清掉对应资源的错误并设置在途标记，服务端返回之后再提交结果，
// 失败时除了错误字段之外不修改任何数据。
//
// 同一种请求并发发起的时候不做串行化，谁最后返回谁生效。
// 打开 WithRequestFencing 之后，过期的响应会被丢弃。
package state

import (
	"errors"
	"sort"
	"sync"

	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrProfileIncomplete = errors.New("公司资料未完善，不能发布职位")
	ErrAlreadyApplied    = errors.New("已经投递过这个职位")
	ErrJobNotAccepting   = errors.New("职位不再接受投递")
)

type Option func(s *Store)

// WithRequestFencing 每种请求维护一个单调递增的序号，只接受最新一次请求的结果
func WithRequestFencing() Option {
	return func(s *Store) {
		s.fencing = true
	}
}

type Store struct {
	gw      Gateway
	logger  *elog.Component
	fencing bool

	mu        sync.Mutex
	st        State
	seq       map[string]uint64
	listeners map[int]func(State)
	nextID    int
	// queue 还没有通知出去的快照，按照修改的顺序排列
	queue     []State
	notifying bool
}

func NewStore(gw Gateway, opts ...Option) *Store {
	s := &Store{
		gw:        gw,
		logger:    elog.DefaultLogger,
		seq:       make(map[string]uint64),
		listeners: make(map[int]func(State)),
		st:        State{Errors: make(map[Resource]error)},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.clone()
}

// Subscribe 每次状态变化之后都会收到新的快照，返回取消订阅的函数。
// 快照按照修改的顺序送达，回调里也可以继续修改 store
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Reset 登出的时候清空所有数据，在途请求晚到的结果依旧会写进来
func (s *Store) Reset() {
	s.update(func(st *State) {
		*st = State{Errors: make(map[Resource]error)}
	})
}

// op 描述一种请求：它属于哪种资源，用哪个在途标记
type op struct {
	name     string
	resource Resource
	flag     func(f *Flags) *bool
}

// pending 请求发起之前调用，返回本次请求的序号
func (s *Store) pending(o op) uint64 {
	var token uint64
	s.update(func(st *State) {
		delete(st.Errors, o.resource)
		*o.flag(&st.Flags) = true
		s.seq[o.name]++
		token = s.seq[o.name]
	})
	return token
}

// settle 请求结束之后调用，apply 只会在成功并且没有过期的时候执行
func (s *Store) settle(o op, token uint64, err error, apply func(st *State)) {
	s.update(func(st *State) {
		if s.fencing && s.seq[o.name] != token {
			s.logger.Debug("丢弃过期的响应", elog.String("op", o.name))
			return
		}
		*o.flag(&st.Flags) = false
		if err != nil {
			s.logger.Debug("请求失败", elog.String("op", o.name), elog.FieldErr(err))
			st.Errors[o.resource] = err
			return
		}
		if apply != nil {
			apply(st)
		}
	})
}

// reject 本地校验没通过，不发请求，只记录错误
func (s *Store) reject(o op, err error) error {
	s.update(func(st *State) {
		st.Errors[o.resource] = err
	})
	return err
}

// update 同一时刻只有一个 goroutine 在通知，其余的修改排队，保证订阅者不会先收到新快照再收到旧快照
func (s *Store) update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.st)
	if len(s.listeners) > 0 {
		s.queue = append(s.queue, s.st.clone())
	}
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	for len(s.queue) > 0 {
		snapshot := s.queue[0]
		s.queue = s.queue[1:]
		listeners := s.sortedListeners()
		s.mu.Unlock()
		for _, l := range listeners {
			l(snapshot.clone())
		}
		s.mu.Lock()
	}
	s.notifying = false
	s.mu.Unlock()
}

func (s *Store) sortedListeners() []func(State) {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]func(State), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	return listeners
}
