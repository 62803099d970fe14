package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// ReadDotEnv reads KEY=VALUE pairs from .env files without touching the
// process environment. Missing files are skipped. Later files override
// earlier ones.
func ReadDotEnv(paths ...string) (map[string]string, error) {
	out := make(map[string]string)
	for _, path := range paths {
		vals, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for k, v := range vals {
			out[k] = v
		}
	}
	return out, nil
}

// Environ merges dotenv values under the process environment.
// Variables already set in the process win, as with godotenv.Load.
func Environ(dotenv map[string]string) func() []string {
	return func() []string {
		env := os.Environ()
		for k, v := range dotenv {
			if _, ok := os.LookupEnv(k); ok {
				continue
			}
			env = append(env, k+"="+v)
		}
		return env
	}
}
