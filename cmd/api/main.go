package main

import (
	"github.com/yigit/coursecatalog/internal/cli"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

// @title Course Catalog API
// @version 1.0
// @description Course catalog, results, blog and admission enquiries of a coaching institute

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	if err := cli.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Command failed")
	}
}
