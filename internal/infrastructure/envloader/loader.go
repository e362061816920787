package envloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Well-known keys read by the marketplace tables.
const (
	ReservoirAPIKey = "RESERVOIR_API_KEY"
	AlchemyAPIKey   = "ALCHEMY_API_KEY"
	ConfigPath      = "CONFIG_PATH"
)

// Snapshot is an immutable view of the environment taken once at startup.
// It implements port.EnvSource.
type Snapshot struct {
	values map[string]string
}

// FromMap builds a snapshot from explicit values.
func FromMap(values map[string]string) Snapshot {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Snapshot{values: copied}
}

// Load reads the given dotenv files (missing files are skipped) and overlays the
// process environment on top, so values exported in the shell always win.
func Load(files ...string) (Snapshot, error) {
	values := make(map[string]string)

	for _, file := range files {
		fileValues, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Snapshot{}, fmt.Errorf("failed to read env file %s: %w", file, err)
		}
		for k, v := range fileValues {
			if _, seen := values[k]; !seen {
				values[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		values[key] = value
	}

	return Snapshot{values: values}, nil
}

// Lookup returns the value and true if the key is set and non-empty.
func (s Snapshot) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Get returns the value or fallback when the key is absent.
func (s Snapshot) Get(key, fallback string) string {
	if value, ok := s.Lookup(key); ok {
		return value
	}
	return fallback
}

// CollectionSetIDKey is the env key holding a chain's collection set filter.
func CollectionSetIDKey(prefix string) string {
	return "NEXT_PUBLIC_" + prefix + "_COLLECTION_SET_ID"
}

// CommunityKey is the env key holding a chain's community filter.
func CommunityKey(prefix string) string {
	return "NEXT_PUBLIC_" + prefix + "_COMMUNITY"
}
