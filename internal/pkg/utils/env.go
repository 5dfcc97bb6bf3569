package utils

import (
	"log"
	"os"
	"strconv"
)

// lookupEnv reads key and converts it with parse. Unset keys and values parse
// rejects both yield fallback.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v, using %v", key, raw, err, fallback)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) { return raw, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}
