package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	BIND_ADDRESS = "0.0.0.0:4000"
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	SESSION_KEY  = "change me in production"
	DEBUG_MODE   = true

	// Store calls are given this long before the request is failed
	DB_TIMEOUT_SECONDS = 15

	GOOGLE_CLIENT_ID = ""

	// External media store (S3 or S3-compatible)
	MEDIA_S3_BUCKET   = ""
	MEDIA_S3_REGION   = "us-east-1"
	MEDIA_S3_ENDPOINT = "" // leave empty for AWS, set for S3-compatible services
	MEDIA_S3_KEY      = ""
	MEDIA_S3_SECRET   = ""
	MEDIA_BASE_URL    = "" // public URL prefix for uploaded objects
	MEDIA_FOLDER      = "assets-manager"
)

func init() {
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("DB_TIMEOUT_SECONDS", &DB_TIMEOUT_SECONDS)
	readEnvString("GOOGLE_CLIENT_ID", &GOOGLE_CLIENT_ID)
	readEnvString("MEDIA_S3_BUCKET", &MEDIA_S3_BUCKET)
	readEnvString("MEDIA_S3_REGION", &MEDIA_S3_REGION)
	readEnvString("MEDIA_S3_ENDPOINT", &MEDIA_S3_ENDPOINT)
	readEnvString("MEDIA_S3_KEY", &MEDIA_S3_KEY)
	readEnvString("MEDIA_S3_SECRET", &MEDIA_S3_SECRET)
	readEnvString("MEDIA_BASE_URL", &MEDIA_BASE_URL)
	readEnvString("MEDIA_FOLDER", &MEDIA_FOLDER)
}

func DBTimeout() time.Duration {
	return time.Duration(DB_TIMEOUT_SECONDS) * time.Second
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
