package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrRepositoryNotFound = goerr.New("repository not found")
)
