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

package scoring

import (
	"strings"

	"github.com/pkg/errors"

	gocvss20 "github.com/pandatix/go-cvss/20"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	gocvss40 "github.com/pandatix/go-cvss/40"
)

// BaseScoreFromVector parses a CVSS 2.0, 3.0, 3.1 or 4.0 vector and returns its base score.
func BaseScoreFromVector(vector string) (float64, error) {
	vector = strings.TrimSpace(vector)
	switch {
	case strings.HasPrefix(vector, "CVSS:3.0"):
		cvss, err := gocvss30.ParseVector(vector)
		if err != nil {
			return 0, errors.Wrap(err, "could not parse cvss 3.0 vector")
		}
		return cvss.BaseScore(), nil
	case strings.HasPrefix(vector, "CVSS:3.1"):
		cvss, err := gocvss31.ParseVector(vector)
		if err != nil {
			return 0, errors.Wrap(err, "could not parse cvss 3.1 vector")
		}
		return cvss.BaseScore(), nil
	case strings.HasPrefix(vector, "CVSS:4.0"):
		cvss, err := gocvss40.ParseVector(vector)
		if err != nil {
			return 0, errors.Wrap(err, "could not parse cvss 4.0 vector")
		}
		return cvss.Score(), nil
	default:
		// no prefix: cvss 2.0 or garbage
		cvss, err := gocvss20.ParseVector(vector)
		if err != nil {
			return 0, errors.Wrap(err, "could not parse cvss vector")
		}
		return cvss.BaseScore(), nil
	}
}
