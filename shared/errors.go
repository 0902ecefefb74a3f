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

package shared

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrStoreUnavailable marks every failure of a record or trend store.
	// Callers may retry, nothing is substituted.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("not found")
)

// WrapStoreError classifies an error returned by a store.
// Cancellations and deadlines keep their identity, everything else becomes ErrStoreUnavailable.
func WrapStoreError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Wrap(err, msg)
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrStoreUnavailable, err)
}
