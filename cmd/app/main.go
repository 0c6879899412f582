package main

import (
	"go.uber.org/fx"

	"student-control/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
