//go:build wireinject
// +build wireinject

package main

import (
	"github.com/go-savor/savor/internal/menu/bootstrap"
	"github.com/go-savor/savor/internal/menu/config"
	"github.com/go-savor/savor/internal/menu/repo"
	"github.com/go-savor/savor/internal/menu/router"
	"github.com/go-savor/savor/internal/menu/service"
	"github.com/go-savor/savor/pkg/log"
	"github.com/go-savor/savor/pkg/objstore"
	"github.com/go-savor/savor/pkg/rtdb"
	"github.com/google/wire"
)

func initApp(configFile string) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		log.ProviderSet,
		rtdb.NewClient,
		objstore.New,
		repo.ProviderSet,
		service.ProviderSet,
		router.ProviderSet,
		bootstrap.NewApp,
	))
}
