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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrGroup(t *testing.T) {
	g := ErrGroup[int](2)
	for i := range 10 {
		g.Go(func() (int, error) {
			return i, nil
		})
	}
	res, err := g.WaitAndCollect()
	assert.NoError(t, err)
	assert.Len(t, res, 10)
}

func TestKeyedMutex(t *testing.T) {
	var k KeyedMutex
	counter := 0
	wg := sync.WaitGroup{}
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("tenant")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}
