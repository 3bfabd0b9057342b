package main

import (
	"embed"

	"github.com/justtrackio/crudgen/pkg/application"
)

var (
	//go:embed config.dist.yml
	configDist []byte

	//go:embed migrations/*.sql
	migrations embed.FS
)

func main() {
	application.RunHttpDefaultServer(Define, application.WithConfigBytes(configDist, "yml"))
}
