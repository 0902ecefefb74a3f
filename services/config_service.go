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

package services

import (
	"encoding/json"

	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ConfigService stores small json documents in the config table (leader election, daemon state).
type ConfigService struct {
	repository shared.ConfigRepository
}

func NewConfigService(repository shared.ConfigRepository) ConfigService {
	return ConfigService{
		repository: repository,
	}
}

func (service ConfigService) GetJSONConfig(key string, v any) error {
	var config models.Config
	if err := service.repository.GetDB(nil).Where("key = ?", key).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(shared.ErrNotFound, "config %s", key)
		}
		return shared.WrapStoreError(err, "could not read config")
	}

	return json.Unmarshal([]byte(config.Val), v)
}

func (service ConfigService) SetJSONConfig(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	config := models.Config{
		Key: key,
		Val: string(b),
	}

	return shared.WrapStoreError(service.repository.Save(nil, &config), "could not save config")
}
