package wpmock

// ResetBootstrap lets the external tests unlock strict mode between cases.
var ResetBootstrap = resetBootstrap
