// Package config resolves runtime settings from the environment with
// optional .env file seeding. Each service binary loads one Config and
// passes the relevant pieces down.
package config
