// Copyright 2025 Savor Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	httpx "github.com/go-savor/savor/pkg/http"
	"github.com/go-savor/savor/pkg/log"
	"github.com/go-savor/savor/pkg/objstore"
	"github.com/go-savor/savor/pkg/rtdb"
	"github.com/google/wire"
)

// ProviderSet is a Wire provider set for configuration
var ProviderSet = wire.NewSet(
	NewConf,
	ProvideHttpConfig,
	ProvideLogConfig,
	ProvideDatabaseConfig,
	ProvideStorageConfig,
)

func ProvideHttpConfig(appConf AppConfig) *httpx.Http {
	return &appConf.Http
}

func ProvideLogConfig(appConf AppConfig) *log.Conf {
	return &appConf.Log
}

func ProvideDatabaseConfig(appConf AppConfig) rtdb.Conf {
	return appConf.Database
}

func ProvideStorageConfig(appConf AppConfig) objstore.Conf {
	return appConf.Storage
}
