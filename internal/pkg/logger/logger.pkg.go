package logger

import (
	"io"
	"log"
	"os"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	HTTP  *log.Logger
)

// Setup initializes the package loggers. Debug output is discarded in
// production. Must be called before any other package in the process logs.
func Setup() {
	Info = log.New(os.Stdout, "[INFO] ", log.Ldate|log.Ltime)
	Error = log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime)
	Debug = log.New(os.Stdout, "[DEBUG] ", log.Ldate|log.Ltime)
	HTTP = log.New(os.Stdout, "[HTTP] ", log.Ldate|log.Ltime)

	if os.Getenv("APP_ENV") == "production" {
		Debug.SetOutput(io.Discard)
	}
}
