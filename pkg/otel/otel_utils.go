package otel

import (
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

// protocol returns the configured OTLP protocol of a signal, with the
// signal-specific variable taking precedence over the general one.
func protocol(signal string) string {
	if v := os.Getenv("OTEL_EXPORTER_OTLP_" + signal + "_PROTOCOL"); v != "" {
		return strings.ToLower(v)
	}

	return strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"))
}
