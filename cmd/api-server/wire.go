//go:build wireinject
// +build wireinject

package main

import (
	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao"
	"github.com/TurboProjects/Notes-App-Challenge/dao/cache"
	"github.com/TurboProjects/Notes-App-Challenge/handler"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/client"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/database"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/server"
	"github.com/TurboProjects/Notes-App-Challenge/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Note), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

func InitCommand(cfg *config.Config) *server.CommandProvider {
	wire.Build(
		database.NewDB,
		dao.NewCategoryDAO,
		wire.Struct(new(service.CategoryService), "*"),
		wire.Bind(new(service.ICategoryService), new(*service.CategoryService)),
		wire.Struct(new(server.CommandProvider), "*"),
	)
	return nil
}
