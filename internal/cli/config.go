package cli

import (
	"os"

	"github.com/AriellAlcantara/Gamebackend/internal/client"
)

// Config holds CLI configuration. The password lives only for the
// duration of one invocation; it is never written anywhere.
type Config struct {
	ServerURL  string
	Handle     string
	Password   string
	Output     string
	MirrorPath string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("GAMECLI_SERVER", "http://localhost:8080"),
		Handle:     os.Getenv("GAMECLI_HANDLE"),
		Password:   os.Getenv("GAMECLI_PASSWORD"),
		Output:     "text",
		MirrorPath: getEnvOrDefault("GAMECLI_MIRROR", defaultMirrorPath()),
	}
}

// ResolveHandle fills the handle from the local mirror when it was not
// given via flag or environment
func (c *Config) ResolveHandle(mirror *client.Mirror) error {
	if c.Handle != "" {
		return nil
	}

	state, err := mirror.Load()
	if err != nil {
		return err
	}
	c.Handle = state.Handle
	return nil
}

func defaultMirrorPath() string {
	path, err := client.DefaultMirrorPath()
	if err != nil {
		return ".gamecli/mirror.json"
	}
	return path
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
