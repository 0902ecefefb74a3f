// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

type errGroup[T any] struct {
	group   *errgroup.Group
	mu      sync.Mutex
	results []T
}

// ErrGroup limits the amount of goroutines running at the same time to limit.
// WaitAndCollect returns the results of all successful functions and the first error.
func ErrGroup[T any](limit int) *errGroup[T] {
	g := &errgroup.Group{}
	g.SetLimit(limit)
	return &errGroup[T]{
		group: g,
	}
}

func (g *errGroup[T]) Go(fn func() (T, error)) {
	g.group.Go(func() error {
		res, err := fn()
		if err != nil {
			return err
		}
		g.mu.Lock()
		g.results = append(g.results, res)
		g.mu.Unlock()
		return nil
	})
}

func (g *errGroup[T]) WaitAndCollect() ([]T, error) {
	err := g.group.Wait()
	return g.results, err
}

// KeyedMutex hands out one mutex per key.
// Mutexes are never removed, the key space is expected to be small (tenants).
type KeyedMutex struct {
	locks sync.Map
}

func (k *KeyedMutex) Lock(key string) func() {
	m, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
