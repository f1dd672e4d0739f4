package main

// General API documentation for swaggo. Run `swag init -g cmd/priced/docs.go` to regenerate ./docs.
//
// @title           priced API
// @version         1.0
// @description     HTTP API for single-model price prediction.
//
// @contact.name   priced maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
