package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/fremyrosso/site/internal/cli"
)

func main() {
	cli.Execute()
}
