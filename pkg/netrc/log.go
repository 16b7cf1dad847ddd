package netrc

import "github.com/credcat-ai/credcat/internal/logger"

var log = logger.ForModule("netrc")
