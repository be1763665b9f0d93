/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package wmitest provides scripted Session and SessionProvider fakes
// for testing code built on the wmi package without a live service.
package wmitest

import (
	"context"
	"strings"
	"sync"

	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

// Session is a scripted wmi.Session. Rows and Errs are keyed by class
// name; a query for a class with a scripted error returns that error,
// otherwise the scripted rows (nil rows mean an empty result).
type Session struct {
	NamespaceName string
	Rows          map[string][]wmi.Row
	Errs          map[string]error

	mu      sync.Mutex
	queries []string
	closes  int
}

// Query implements wmi.Session.
func (s *Session) Query(ctx context.Context, wql string) ([]wmi.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.queries = append(s.queries, wql)
	s.mu.Unlock()

	class := className(wql)
	if err := s.Errs[class]; err != nil {
		return nil, err
	}
	return s.Rows[class], nil
}

// Namespace implements wmi.Session.
func (s *Session) Namespace() string {
	if s.NamespaceName == "" {
		return wmi.DefaultNamespace
	}
	return s.NamespaceName
}

// Close implements wmi.Session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
	return nil
}

// Queries returns the WQL statements executed so far, in order.
func (s *Session) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// Closes returns how many times Close was called.
func (s *Session) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

func className(wql string) string {
	const from = " FROM "
	idx := strings.LastIndex(strings.ToUpper(wql), from)
	if idx < 0 {
		return wql
	}
	return strings.TrimSpace(wql[idx+len(from):])
}

// Provider is a scripted wmi.SessionProvider handing out a fixed
// session or a fixed error.
type Provider struct {
	Session wmi.Session
	Err     error

	mu       sync.Mutex
	connects int
}

// Connect implements wmi.SessionProvider.
func (p *Provider) Connect(ctx context.Context) (wmi.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.connects++
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	return p.Session, nil
}

// Connects returns how many times Connect was called.
func (p *Provider) Connects() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connects
}
