// Newswire is a news publishing API: moderated article submissions, likes,
// comments, view counting, and a derived popularity score.
//
// @title Newswire API
// @version 1.0
// @description REST API for submitting, moderating, and reading news articles.
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/user/newswire-go/cmd"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
